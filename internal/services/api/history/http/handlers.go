// Package http provides http transport for analysis history
package http

import (
	stdhttp "net/http"

	"botscan/internal/modkit/httpkit"
	"botscan/internal/services/api/history/domain"
)

// Register mounts history endpoints on the given router
func Register(r httpkit.Router, svc domain.ReaderPort) {
	h := &handlers{svc: svc}
	r.Post("/list", httpkit.Handle(h.list))
	httpkit.Post(r, "/authors", h.authors)
}

type handlers struct{ svc domain.ReaderPort }

func (h *handlers) list(r *stdhttp.Request) httpkit.Response {
	in, err := httpkit.Bind[domain.ListInput](r)
	if err != nil {
		return httpkit.Error(err)
	}
	items, total, err := h.svc.List(r.Context(), in)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.List(items, total, in.Offset, len(items))
}

func (h *handlers) authors(r *stdhttp.Request) (any, error) {
	return h.svc.Authors(r.Context())
}
