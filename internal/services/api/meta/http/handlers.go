// Package http provides service health endpoints
package http

import (
	stdctx "context"
	stdhttp "net/http"
	"time"

	"botscan/internal/modkit/httpkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies. Provider and Model describe the
// configured judge so health output always matches the fusion mode
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Provider    string
	Model       string
	PG          Pinger
}

type handlers struct {
	deps Deps
}

// Register mounts the health route
func Register(r httpkit.Router, d Deps) {
	if d.Provider == "" {
		d.Provider = "none"
	}
	h := &handlers{deps: d}
	httpkit.Get(r, "/", h.healthz)
}

// HealthResponse is the health payload
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
	Started  string `json:"started"`
	Now      string `json:"now"`
	DB       string `json:"db"`
}

func (h *handlers) healthz(r *stdhttp.Request) (any, error) {
	db := "ok"
	if h.deps.PG != nil {
		ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.deps.PG.Ping(ctx); err != nil {
			db = "fail"
		}
	}
	return HealthResponse{
		Status:   "ok",
		Service:  h.deps.ServiceName,
		Provider: h.deps.Provider,
		Model:    h.deps.Model,
		Started:  h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:      time.Now().UTC().Format(time.RFC3339),
		DB:       db,
	}, nil
}
