package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Config holds middleware configuration.
type Config struct {
	Logger *zap.Logger

	CORS *CORSConfig

	RequestTimeout time.Duration
	// NoTimeoutPaths are served without RequestTimeout, e.g. the webhook,
	// which must answer 200 however long processing takes.
	NoTimeoutPaths []string
}

// Chain creates a middleware chain with all configured middleware.
func Chain(config *Config) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		// Apply middleware in order (outer to inner)
		h := handler

		if config.RequestTimeout > 0 {
			h = Except(Timeout(config.RequestTimeout), config.NoTimeoutPaths...)(h)
		}

		if config.CORS != nil {
			h = CORS(config.CORS)(h)
		}

		h = Recovery(config.Logger)(h)

		h = Logger(config.Logger)(h)

		h = RequestID(h)

		return h
	}
}

// Except applies mw to every request whose path is not listed.
func Except(mw func(http.Handler) http.Handler, paths ...string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		wrapped := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}
			wrapped.ServeHTTP(w, r)
		})
	}
}
