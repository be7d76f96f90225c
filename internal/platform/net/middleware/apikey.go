package middleware

import (
	"crypto/subtle"
	"net/http"

	perr "botscan/internal/platform/errors"
	pnet "botscan/internal/platform/net"
)

// APIKey guards routes with a static X-Api-Key header check.
// An empty configured key disables the check entirely (open dev mode)
func APIKey(key string, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			got := r.Header.Get("X-Api-Key")
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				status, body := pnet.Error(perr.Unauthorizedf("invalid api key"), pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
