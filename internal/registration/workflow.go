// Package registration drives the three-step sign-up form: identity, profile,
// security. Steps are gathered locally and the backend is reached exactly
// once, at Submit.
package registration

import (
	"context"
	"sync"
	"time"

	"github.com/carelink/portal-gateway/internal/domain"
	"github.com/carelink/portal-gateway/internal/logger"
	"github.com/carelink/portal-gateway/internal/upstream"
)

type Step int

const (
	StepIdentity Step = iota + 1
	StepProfile
	StepSecurity
)

type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
	StateFailed     State = "failed"
)

// Submitter is the slice of the primary client the workflow needs.
type Submitter interface {
	RegisterPatient(ctx context.Context, payload upstream.PatientRegistration) (upstream.Registered, error)
	RegisterProvider(ctx context.Context, payload upstream.ProviderRegistration) (upstream.Registered, error)
}

// Navigator sends the browser to the sign-in page after a successful submit.
type Navigator interface {
	ToLogin(ctx context.Context)
}

// Workflow is one in-progress registration. Safe for concurrent use: a
// double-clicked submit must not produce two accounts.
type Workflow struct {
	mu    sync.Mutex
	draft Draft
	step  Step
	state State

	backend Submitter
	nav     Navigator
	now     func() time.Time
}

func NewWorkflow(backend Submitter, nav Navigator) *Workflow {
	return &Workflow{
		step:    StepIdentity,
		state:   StateEditing,
		backend: backend,
		nav:     nav,
		now:     time.Now,
	}
}

func (w *Workflow) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Draft returns a copy for rendering the form.
func (w *Workflow) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Update merges the submitted fields for the current step into the draft
// without advancing. Fields belonging to other steps are left alone.
func (w *Workflow) Update(d Draft) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case StepIdentity:
		w.draft.FullName = d.FullName
		w.draft.Email = d.Email
		w.draft.Phone = d.Phone
		w.draft.Role = d.Role
	case StepProfile:
		w.draft.DateOfBirth = d.DateOfBirth
		w.draft.Gender = d.Gender
		w.draft.Address = d.Address
		w.draft.BloodGroup = d.BloodGroup
		w.draft.Specialization = d.Specialization
		w.draft.LicenseNumber = d.LicenseNumber
		w.draft.EmergencyContact = d.EmergencyContact
	case StepSecurity:
		w.draft.Password = d.Password
		w.draft.ConfirmPassword = d.ConfirmPassword
	}
}

// Next validates the current step and advances. An invalid step stays put.
func (w *Workflow) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateSubmitting || w.state == StateSubmitted {
		return domain.ErrAlreadySubmitted()
	}
	switch w.step {
	case StepIdentity:
		if err := checkFields(w.draft, identityFields); err != nil {
			return err
		}
		w.step = StepProfile
	case StepProfile:
		if err := checkFields(w.draft, profileFields); err != nil {
			return err
		}
		w.step = StepSecurity
	case StepSecurity:
		return domain.ErrInvalidStep("already at the final step, submit instead")
	}
	w.state = StateEditing
	return nil
}

// Back is unconditional: entered values survive the move.
func (w *Workflow) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepIdentity {
		w.step--
	}
	if w.state == StateFailed {
		w.state = StateEditing
	}
}

// Submit runs the local password checks and sends the one registration call.
// A success redirects to the sign-in page and never authenticates; a failure
// keeps the draft so the user can correct and resubmit.
func (w *Workflow) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.state == StateSubmitting {
		w.mu.Unlock()
		return domain.ErrAlreadySubmitted()
	}
	if w.state == StateSubmitted {
		w.mu.Unlock()
		return domain.ErrAlreadySubmitted()
	}
	if w.step != StepSecurity {
		w.mu.Unlock()
		return domain.ErrInvalidStep("finish the earlier steps first")
	}
	if err := checkPassword(w.draft); err != nil {
		w.mu.Unlock()
		return err
	}
	w.state = StateSubmitting
	draft := w.draft
	w.mu.Unlock()

	created, err := w.send(ctx, draft)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.state = StateFailed
		logger.Ctx(ctx).Warn().Err(err).Str("role", string(draft.Role)).Msg("registration rejected")
		return err
	}

	w.state = StateSubmitted
	logger.Ctx(ctx).Info().
		Str("role", string(draft.Role)).
		Str("user_id", created.ID).
		Msg("registration accepted")
	w.nav.ToLogin(ctx)
	return nil
}

func (w *Workflow) send(ctx context.Context, d Draft) (upstream.Registered, error) {
	switch d.Role {
	case domain.RoleProvider:
		return w.backend.RegisterProvider(ctx, upstream.ProviderRegistration{
			Name:           d.FullName,
			Email:          d.Email,
			Password:       d.Password,
			Specialization: d.Specialization,
			LicenseNumber:  d.LicenseNumber,
			Phone:          d.Phone,
		})
	default:
		return w.backend.RegisterPatient(ctx, upstream.PatientRegistration{
			Name:       d.FullName,
			Email:      d.Email,
			Password:   d.Password,
			Age:        ageFrom(d.DateOfBirth, w.now()),
			BloodGroup: d.BloodGroup,
		})
	}
}
