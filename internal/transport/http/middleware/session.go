package middleware

import (
	"net/http"

	"github.com/google/uuid"

	pkgctx "github.com/carelink/portal-gateway/internal/pkg/context"
	"github.com/carelink/portal-gateway/internal/security"
	"github.com/carelink/portal-gateway/internal/transport/http/nav"
)

// Session binds the request to a browser session: it reads the signed cookie,
// mints a fresh session ID when there is none (or the cookie was tampered
// with), and installs the forced-navigation slot. Every request downstream of
// this middleware has a session ID in context.
func Session(codec *security.CookieCodec) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := codec.Read(r)
			if sid == "" {
				sid = uuid.NewString()
				// Best-effort: a failed Set leaves this request anonymous
				// with an unsaved sid, which is harmless.
				_ = codec.Set(w, sid)
			}

			ctx := pkgctx.WithSessionID(r.Context(), sid)
			ctx = nav.Install(ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
