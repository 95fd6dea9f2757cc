package handlers

import (
	"net/http"

	"github.com/carelink/portal-gateway/internal/authflow"
	"github.com/carelink/portal-gateway/internal/domain"
	pkgctx "github.com/carelink/portal-gateway/internal/pkg/context"
	"github.com/carelink/portal-gateway/internal/transport/http/dto"
	"github.com/carelink/portal-gateway/internal/transport/http/response"
)

// Pages resolves page routes for the client shell: either the page to render
// or a redirect, decided by the route guard.
type Pages struct {
	Flow *authflow.Service
}

func NewPages(flow *authflow.Service) *Pages {
	return &Pages{Flow: flow}
}

func (h *Pages) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := pkgctx.GetSessionID(ctx)

	identity, authenticated := h.Flow.Current(ctx, sid)
	decision := domain.Guard(authenticated, r.URL.Path)

	if decision.Action == domain.ActionRedirect {
		http.Redirect(w, r, decision.Location, http.StatusSeeOther)
		return
	}

	state := dto.PageState{
		Page:          decision.Page,
		Path:          r.URL.Path,
		Authenticated: authenticated,
		Chrome:        domain.ChromeVisible(authenticated, r.URL.Path),
	}
	if authenticated {
		state.User = dto.UserFromIdentity(identity)
	}
	response.OK(w, state)
}
