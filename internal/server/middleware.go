package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// requestLogger attaches a request-scoped logger to the context and logs
// each request with its duration.
func requestLogger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()

			reqLogger := logger.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", req.RemoteAddr).
				Logger()

			ctx := reqLogger.WithContext(req.Context())
			next.ServeHTTP(w, req.WithContext(ctx))

			reqLogger.Debug().Dur("duration", time.Since(start)).Msg("request handled")
		})
	}
}
