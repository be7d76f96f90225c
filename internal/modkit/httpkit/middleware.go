package httpkit

import (
	"time"

	phttp "botscan/internal/platform/net/http"
	"botscan/internal/platform/net/middleware"
)

// CommonStack is the baseline middleware chain for mounted APIs.
// Order matters: request ID first so the logger and panic recovery can tag
// entries, CORS before any auth rejection so preflights succeed
func CommonStack(cfg middleware.CORSOptions, timeout time.Duration) []Middleware {
	return []Middleware{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.Logger(),
		middleware.CORS(cfg),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	}
}

// APIKey guards a subtree with a shared-key check on X-Api-Key.
// An empty key disables the guard
func APIKey(key string) Middleware {
	return middleware.APIKey(key, phttp.JSON)
}
