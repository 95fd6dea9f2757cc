package middleware

import (
	"net/http"

	"github.com/google/uuid"

	pkgctx "github.com/carelink/portal-gateway/internal/pkg/context"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID establishes the request ID in context, minting one when the
// caller didn't send it. The gateway propagates it downstream.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(HeaderXRequestID, reqID)

		ctx := pkgctx.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
