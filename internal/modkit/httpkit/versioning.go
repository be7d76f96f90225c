package httpkit

import (
	"strings"
)

// MountAPI mounts a subrouter under /api/{version}, applies any per-scope middleware,
// then invokes mount to register routes on that scoped router
//
// example:
//
//	httpkit.MountAPI(r, "v1", stack, func(api httpkit.Router) {
//	  analyze.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []Middleware, mount func(Router)) {
	ver := strings.TrimPrefix(version, "/")
	prefix := "/api/" + ver
	r.Route(prefix, func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 is a convenience for MountAPI with version v1
func MountAPIV1(r Router, mw []Middleware, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
