// Package module wires the analyze service into the API using modkit
package module

import (
	"net/http"

	"botscan/internal/adapters/llm"
	modkit "botscan/internal/modkit"
	"botscan/internal/modkit/httpkit"
	"botscan/internal/modkit/repokit"
	str "botscan/internal/platform/strings"
	"botscan/internal/services/analyze/domain"
	analyzehttp "botscan/internal/services/analyze/http"
	analyzerepo "botscan/internal/services/analyze/repo"
	analyzesvc "botscan/internal/services/analyze/service"
)

// Ports exposed by the analyze module
type Ports struct {
	Analyzer domain.AnalyzerPort
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

	svc *analyzesvc.Service
}

// New constructs an analyze module. judge may be nil for heuristics-only mode
func New(deps modkit.Deps, judge llm.Judge, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analyze"),
		modkit.WithPrefix("/analyze"),
	}, opts...)...)

	mo := FromConfig(deps.Cfg)
	svc := analyzesvc.New(repokit.TxRunner(deps.PG), analyzerepo.NewPG(), judge, analyzesvc.Config{
		MaxContentChars: mo.MaxContentChars,
		JudgeTimeout:    mo.JudgeTimeout,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Analyzer: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		analyzehttp.Register(r, m.svc)
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
