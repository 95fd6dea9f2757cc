package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carelink/portal-gateway/internal/authflow"
	"github.com/carelink/portal-gateway/internal/domain"
	pkgctx "github.com/carelink/portal-gateway/internal/pkg/context"
	"github.com/carelink/portal-gateway/internal/transport/http/dto"
	"github.com/carelink/portal-gateway/internal/transport/http/response"
	"github.com/carelink/portal-gateway/internal/upstream"
)

// CareBackend is the slice of the primary client the dashboard needs.
type CareBackend interface {
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	GetGoal(ctx context.Context, id string) (domain.Goal, error)
	CreateGoal(ctx context.Context, in upstream.GoalInput) (domain.Goal, error)
	UpdateGoal(ctx context.Context, id string, in upstream.GoalInput) (domain.Goal, error)
	DeleteGoal(ctx context.Context, id string) error

	ListReminders(ctx context.Context) ([]domain.Reminder, error)
	GetReminder(ctx context.Context, id string) (domain.Reminder, error)
	CreateReminder(ctx context.Context, in upstream.ReminderInput) (domain.Reminder, error)
	UpdateReminder(ctx context.Context, id string, in upstream.ReminderInput) (domain.Reminder, error)
	DeleteReminder(ctx context.Context, id string) error

	GetUser(ctx context.Context, id string) (domain.Profile, error)
}

// Care proxies the signed-in user's goals, reminders and profile to the
// primary backend. Every call rides the session's bearer token; a rejected
// token comes back as a login redirect via fail.
type Care struct {
	Backend CareBackend
	Flow    *authflow.Service
}

func NewCare(backend CareBackend, flow *authflow.Service) *Care {
	return &Care{Backend: backend, Flow: flow}
}

// -------- Goals --------

func (h *Care) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.Backend.ListGoals(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, goals)
}

func (h *Care) GetGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := h.Backend.GetGoal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, goal)
}

func (h *Care) CreateGoal(w http.ResponseWriter, r *http.Request) {
	in, err := decodeGoal(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	goal, err := h.Backend.CreateGoal(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, goal)
}

func (h *Care) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	in, err := decodeGoal(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	goal, err := h.Backend.UpdateGoal(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, goal)
}

func (h *Care) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.Backend.DeleteGoal(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, r, err)
		return
	}
	response.NoContent(w)
}

func decodeGoal(r *http.Request) (upstream.GoalInput, error) {
	var req dto.GoalRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		return upstream.GoalInput{}, err
	}
	if err := req.Validate(); err != nil {
		return upstream.GoalInput{}, err
	}
	return upstream.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Status:      req.Status,
		Progress:    req.Progress,
	}, nil
}

// -------- Reminders --------

func (h *Care) ListReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.Backend.ListReminders(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, reminders)
}

func (h *Care) GetReminder(w http.ResponseWriter, r *http.Request) {
	reminder, err := h.Backend.GetReminder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, reminder)
}

func (h *Care) CreateReminder(w http.ResponseWriter, r *http.Request) {
	in, err := decodeReminder(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	reminder, err := h.Backend.CreateReminder(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, reminder)
}

func (h *Care) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	in, err := decodeReminder(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	reminder, err := h.Backend.UpdateReminder(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, reminder)
}

func (h *Care) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	if err := h.Backend.DeleteReminder(r.Context(), chi.URLParam(r, "id")); err != nil {
		fail(w, r, err)
		return
	}
	response.NoContent(w)
}

func decodeReminder(r *http.Request) (upstream.ReminderInput, error) {
	var req dto.ReminderRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		return upstream.ReminderInput{}, err
	}
	if err := req.Validate(); err != nil {
		return upstream.ReminderInput{}, err
	}
	return upstream.ReminderInput{
		Title:         req.Title,
		Description:   req.Description,
		Type:          req.Type,
		ScheduledDate: req.ScheduledDate,
		Recurrence:    req.Recurrence,
		IsActive:      req.IsActive,
	}, nil
}

// -------- Profile --------

func (h *Care) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, ok := h.Flow.Current(ctx, pkgctx.GetSessionID(ctx))
	if !ok {
		response.WriteError(w, r, domain.ErrAuthExpired())
		return
	}

	profile, err := h.Backend.GetUser(ctx, identity.ID)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.OK(w, profile)
}
