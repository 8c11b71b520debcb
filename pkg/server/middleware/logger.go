package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Logger installs a request-scoped zerolog logger into the context and emits
// one line per completed request. Discovery runs are slow (one admin API walk
// per request), so the duration field matters here.
func Logger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			reqLogger := logger.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			ctx := reqLogger.WithContext(req.Context())
			started := time.Now()

			next.ServeHTTP(w, req.WithContext(ctx))

			reqLogger.Info().
				Dur("duration", time.Since(started)).
				Msg("request served")
		})
	}
}
