package handlers

import (
	"net/http"
	"strconv"

	"github.com/carelink/portal-gateway/internal/domain"
	pkgctx "github.com/carelink/portal-gateway/internal/pkg/context"
	"github.com/carelink/portal-gateway/internal/registration"
	"github.com/carelink/portal-gateway/internal/transport/http/dto"
	"github.com/carelink/portal-gateway/internal/transport/http/response"
)

type Register struct {
	Flows     *registration.Workflows
	Verifiers *registration.Verifiers
}

func NewRegister(flows *registration.Workflows, verifiers *registration.Verifiers) *Register {
	return &Register{Flows: flows, Verifiers: verifiers}
}

func (h *Register) workflow(r *http.Request) *registration.Workflow {
	return h.Flows.Get(pkgctx.GetSessionID(r.Context()))
}

// State returns the current step and draft so a reloaded form can resume.
func (h *Register) State(w http.ResponseWriter, r *http.Request) {
	response.OK(w, dto.RegistrationStateFrom(h.workflow(r)))
}

// Step merges the submitted fields and advances when the step's gate passes.
func (h *Register) Step(w http.ResponseWriter, r *http.Request) {
	var req dto.RegistrationStepRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	wf := h.workflow(r)
	wf.Update(req.Draft())
	if err := wf.Next(); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.RegistrationStateFrom(wf))
}

// Back moves one step back unconditionally.
func (h *Register) Back(w http.ResponseWriter, r *http.Request) {
	wf := h.workflow(r)
	wf.Back()
	response.OK(w, dto.RegistrationStateFrom(wf))
}

// Submit takes the security fields and fires the one registration call. A
// created account lands on the sign-in page, never in a session.
func (h *Register) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.RegistrationStepRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	wf := h.workflow(r)
	wf.Update(req.Draft())
	if err := wf.Submit(r.Context()); err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.Flows.Drop(pkgctx.GetSessionID(r.Context()))
	redirectOr(w, r, domain.PathLogin)
}

// Verify checks the emailed code and sends the browser to sign in.
func (h *Register) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	sid := pkgctx.GetSessionID(r.Context())
	if err := h.Verifiers.Get(sid).Check(req.Code); err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.Verifiers.Drop(sid)
	redirectOr(w, r, domain.PathLogin)
}

// Resend asks for a fresh code, throttled per session.
func (h *Register) Resend(w http.ResponseWriter, r *http.Request) {
	sid := pkgctx.GetSessionID(r.Context())
	wait, err := h.Verifiers.Get(sid).Resend()
	if err != nil {
		response.WriteError(w, r, domain.WithMeta(
			domain.ErrInvalidField("resend", "cooldown"),
			map[string]string{"wait": strconv.Itoa(wait)},
		))
		return
	}
	response.OK(w, dto.ResendState{Wait: 0})
}
