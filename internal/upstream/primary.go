package upstream

import (
	"context"
	"net/http"

	"github.com/carelink/portal-gateway/internal/domain"
)

// loginEndpoints is the explicit role dispatch table. The two endpoints are
// not interchangeable; a wrong-role attempt fails at the remote.
var loginEndpoints = map[domain.Role]string{
	domain.RolePatient:  "/auth/login/patient",
	domain.RoleProvider: "/auth/login/provider",
}

// Primary is the typed client for the credentialed primary backend.
type Primary struct {
	gw *Gateway
}

func NewPrimaryClient(gw *Gateway) *Primary {
	return &Primary{gw: gw}
}

// LoginReply is the raw login response. Role is absent on purpose: the
// backend does not echo it, callers take it from the request.
type LoginReply struct {
	User struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
	Token string `json:"token"`
}

func (p *Primary) Login(ctx context.Context, role domain.Role, email, password string) (LoginReply, error) {
	endpoint, ok := loginEndpoints[role]
	if !ok {
		return LoginReply{}, domain.ErrInvalidRole(string(role))
	}

	body := map[string]string{"email": email, "password": password}
	var reply LoginReply
	if err := p.gw.Do(ctx, http.MethodPost, endpoint, body, &reply); err != nil {
		return LoginReply{}, err
	}
	return reply, nil
}

// PatientRegistration is the wire payload for POST /patients.
type PatientRegistration struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Age        int    `json:"age,omitempty"`
	BloodGroup string `json:"bloodgroup,omitempty"`
}

// ProviderRegistration is the wire payload for POST /providers.
type ProviderRegistration struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"licenseNumber"`
	Phone          string `json:"phone,omitempty"`
}

// Registered is the created record returned by either registration endpoint.
type Registered struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (p *Primary) RegisterPatient(ctx context.Context, payload PatientRegistration) (Registered, error) {
	var created Registered
	if err := p.gw.Do(ctx, http.MethodPost, "/patients", payload, &created); err != nil {
		return Registered{}, err
	}
	return created, nil
}

func (p *Primary) RegisterProvider(ctx context.Context, payload ProviderRegistration) (Registered, error) {
	var created Registered
	if err := p.gw.Do(ctx, http.MethodPost, "/providers", payload, &created); err != nil {
		return Registered{}, err
	}
	return created, nil
}

func (p *Primary) GetUser(ctx context.Context, id string) (domain.Profile, error) {
	var prof domain.Profile
	if err := p.gw.Get(ctx, "/users/"+id, &prof); err != nil {
		return domain.Profile{}, err
	}
	return prof, nil
}

// -------- Goals --------

type GoalInput struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	TargetDate  string `json:"targetDate,omitempty"`
	Status      string `json:"status,omitempty"`
	Progress    *int   `json:"progress,omitempty"`
}

func (p *Primary) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	var goals []domain.Goal
	if err := p.gw.Get(ctx, "/goals", &goals); err != nil {
		return nil, err
	}
	if goals == nil {
		goals = make([]domain.Goal, 0)
	}
	return goals, nil
}

func (p *Primary) GetGoal(ctx context.Context, id string) (domain.Goal, error) {
	var g domain.Goal
	if err := p.gw.Get(ctx, "/goals/"+id, &g); err != nil {
		return domain.Goal{}, err
	}
	return g, nil
}

func (p *Primary) CreateGoal(ctx context.Context, in GoalInput) (domain.Goal, error) {
	var g domain.Goal
	if err := p.gw.Do(ctx, http.MethodPost, "/goals", in, &g); err != nil {
		return domain.Goal{}, err
	}
	return g, nil
}

func (p *Primary) UpdateGoal(ctx context.Context, id string, in GoalInput) (domain.Goal, error) {
	var g domain.Goal
	if err := p.gw.Do(ctx, http.MethodPut, "/goals/"+id, in, &g); err != nil {
		return domain.Goal{}, err
	}
	return g, nil
}

func (p *Primary) DeleteGoal(ctx context.Context, id string) error {
	return p.gw.Do(ctx, http.MethodDelete, "/goals/"+id, nil, nil)
}

// -------- Reminders --------

type ReminderInput struct {
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	Type          string `json:"type,omitempty"`
	ScheduledDate string `json:"scheduledDate,omitempty"`
	Recurrence    string `json:"recurrence,omitempty"`
	IsActive      *bool  `json:"isActive,omitempty"`
}

func (p *Primary) ListReminders(ctx context.Context) ([]domain.Reminder, error) {
	var rs []domain.Reminder
	if err := p.gw.Get(ctx, "/reminders", &rs); err != nil {
		return nil, err
	}
	if rs == nil {
		rs = make([]domain.Reminder, 0)
	}
	return rs, nil
}

func (p *Primary) GetReminder(ctx context.Context, id string) (domain.Reminder, error) {
	var rem domain.Reminder
	if err := p.gw.Get(ctx, "/reminders/"+id, &rem); err != nil {
		return domain.Reminder{}, err
	}
	return rem, nil
}

func (p *Primary) CreateReminder(ctx context.Context, in ReminderInput) (domain.Reminder, error) {
	var rem domain.Reminder
	if err := p.gw.Do(ctx, http.MethodPost, "/reminders", in, &rem); err != nil {
		return domain.Reminder{}, err
	}
	return rem, nil
}

func (p *Primary) UpdateReminder(ctx context.Context, id string, in ReminderInput) (domain.Reminder, error) {
	var rem domain.Reminder
	if err := p.gw.Do(ctx, http.MethodPut, "/reminders/"+id, in, &rem); err != nil {
		return domain.Reminder{}, err
	}
	return rem, nil
}

func (p *Primary) DeleteReminder(ctx context.Context, id string) error {
	return p.gw.Do(ctx, http.MethodDelete, "/reminders/"+id, nil, nil)
}
