// Package http provides http transport for analysis requests
package http

import (
	stdhttp "net/http"

	"botscan/internal/modkit/httpkit"
	"botscan/internal/services/analyze/domain"
)

// Register mounts the analyze endpoint on the given router
func Register(r httpkit.Router, svc domain.AnalyzerPort) {
	h := &handlers{svc: svc}
	httpkit.PostJSON[domain.AnalyzeInput](r, "/", h.analyze)
}

type handlers struct{ svc domain.AnalyzerPort }

func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}
