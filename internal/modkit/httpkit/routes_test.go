package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "botscan/internal/platform/net/http"
)

func TestMountUnder(t *testing.T) {
	t.Parallel()

	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Scoped", "1")
			next.ServeHTTP(w, r)
		})
	}

	m := chi.NewRouter()
	MountUnder(phttp.AdaptChi(m), "/history", []Middleware{mw}, func(sub Router) {
		sub.Get("/authors", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	// middleware is scoped to the prefix
	m.Get("/open", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history/authors", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("mounted route status = %d", rec.Code)
	}
	if rec.Header().Get("X-Scoped") != "1" {
		t.Fatalf("module middleware should run on mounted routes")
	}

	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/open", nil))
	if rec.Header().Get("X-Scoped") != "" {
		t.Fatalf("module middleware leaked outside its prefix")
	}
}
