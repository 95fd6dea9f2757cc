package handlers

import (
	"net/http"

	"github.com/carelink/portal-gateway/internal/authflow"
	"github.com/carelink/portal-gateway/internal/domain"
	pkgctx "github.com/carelink/portal-gateway/internal/pkg/context"
	"github.com/carelink/portal-gateway/internal/transport/http/dto"
	"github.com/carelink/portal-gateway/internal/transport/http/response"
)

type Auth struct {
	Flow *authflow.Service
}

func NewAuth(flow *authflow.Service) *Auth {
	return &Auth{Flow: flow}
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	ctx := r.Context()
	sid := pkgctx.GetSessionID(ctx)
	if err := h.Flow.Login(ctx, sid, domain.Role(req.Role), req.Email, req.Password); err != nil {
		response.WriteError(w, r, err)
		return
	}

	redirectOr(w, r, domain.PathDashboard)
}

func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := pkgctx.GetSessionID(ctx)
	if err := h.Flow.Logout(ctx, sid); err != nil {
		response.WriteError(w, r, err)
		return
	}

	redirectOr(w, r, domain.PathLanding)
}

// Session reports the current authentication state for the client shell.
func (h *Auth) Session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := pkgctx.GetSessionID(ctx)

	identity, authenticated := h.Flow.Current(ctx, sid)
	state := dto.SessionState{Authenticated: authenticated}
	if authenticated {
		state.User = dto.UserFromIdentity(identity)
	}
	response.OK(w, state)
}
