// Package api provides the HTTP API for the application
package api

import (
	"context"
	"time"

	"botscan/internal/platform/config"
	"botscan/internal/platform/logger"
	phttp "botscan/internal/platform/net/http"
	"botscan/internal/platform/net/middleware"
	"botscan/internal/platform/store"

	"botscan/internal/adapters/llm"
	"botscan/internal/modkit"
	"botscan/internal/modkit/httpkit"
	"botscan/internal/modkit/module"

	analyzemod "botscan/internal/services/analyze/module"
	historymod "botscan/internal/services/api/history/module"
	metahttp "botscan/internal/services/api/meta/http"
	metamod "botscan/internal/services/api/meta/module"
)

// Options are the API options. Config is the root Conf; modules carve out
// their own prefixes from it
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// Judge is nil in heuristics-only mode
	Judge  llm.Judge
	APIKey string
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	provider, model := "none", ""
	if opt.Judge != nil {
		provider, model = opt.Judge.Name(), opt.Judge.Model()
	}

	// protected modules require X-Api-Key when a key is configured;
	// health stays open
	guard := modkit.WithMiddlewares(httpkit.APIKey(opt.APIKey))

	mods := []module.Module{
		metamod.New(deps, metahttp.Deps{
			ServiceName: "botscan-api",
			StartedAt:   time.Now(),
			Provider:    provider,
			Model:       model,
			PG:          pinger(opt.Store),
		}),
		analyzemod.New(deps, opt.Judge, guard),
		historymod.New(deps, guard),
	}

	timeout := opt.Config.Prefix("CORE_API_").MayDuration("TIMEOUT", 60*time.Second)

	httpkit.MountAPIV1(r, httpkit.CommonStack(middleware.CORSOptions{}, timeout), func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}

// pinger exposes the store's connectivity check when the backing adapter
// supports it
func pinger(st *store.Store) metahttp.Pinger {
	if p, ok := st.PG.(interface{ Ping(context.Context) error }); ok {
		return p
	}
	return nil
}
