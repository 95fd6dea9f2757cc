// Package nav carries forced-navigation targets through the request context.
// Services decide where the browser must go; the handler writes the redirect
// once, at the end.
package nav

import (
	"context"
	"sync"

	"github.com/carelink/portal-gateway/internal/domain"
)

type ctxKey struct{}

// holder is mutable on purpose: services deep in a call chain set the target
// and the handler reads it afterwards, on the same request.
type holder struct {
	mu     sync.Mutex
	target string
}

// Install returns a context with an empty navigation slot.
func Install(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, &holder{})
}

// Target returns the forced destination, or "" when none was set.
func Target(ctx context.Context) string {
	h, ok := ctx.Value(ctxKey{}).(*holder)
	if !ok {
		return ""
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.target
}

func set(ctx context.Context, target string) {
	h, ok := ctx.Value(ctxKey{}).(*holder)
	if !ok {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.target = target
}

// Redirector satisfies the navigation ports of the session, auth and
// registration flows.
type Redirector struct{}

func (Redirector) ToLogin(ctx context.Context)     { set(ctx, domain.PathLogin) }
func (Redirector) ToDashboard(ctx context.Context) { set(ctx, domain.PathDashboard) }
func (Redirector) ToLanding(ctx context.Context)   { set(ctx, domain.PathLanding) }
