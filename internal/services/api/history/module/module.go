// Package module wires history into the API using modkit
package module

import (
	"net/http"

	modkit "botscan/internal/modkit"
	"botscan/internal/modkit/httpkit"
	"botscan/internal/modkit/repokit"
	str "botscan/internal/platform/strings"
	"botscan/internal/services/api/history/domain"
	historyhttp "botscan/internal/services/api/history/http"
	historyrepo "botscan/internal/services/api/history/repo"
	historysvc "botscan/internal/services/api/history/service"
)

// Ports exposed by the history module
type Ports struct {
	Reader domain.ReaderPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *historysvc.Service
}

// New constructs a history module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("history"),
		modkit.WithPrefix("/history"),
	}, opts...)...)

	mo := FromConfig(deps.Cfg)
	svc := historysvc.New(repokit.TxRunner(deps.PG), historyrepo.NewPG(), historysvc.Config{
		DefaultLimit: mo.DefaultLimit,
		MaxLimit:     mo.MaxLimit,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Reader: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		historyhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports returns the module ports for cross-module lookups
func (m *Module) Ports() any { return m.ports }
