package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	pkgctx "github.com/carelink/portal-gateway/internal/pkg/context"
)

// RequestLogger returns a middleware that logs HTTP requests on completion.
func RequestLogger(l zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			latency := time.Since(start)
			reqID := pkgctx.GetRequestID(r.Context())

			event := l.Info()
			if ww.Status() >= 500 {
				event = l.Error()
			} else if ww.Status() >= 400 {
				event = l.Warn()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("latency", latency).
				Str("request_id", reqID).
				Str("ip", r.RemoteAddr).
				Msg("http_request")
		})
	}
}
