package dto

import (
	"strings"

	"github.com/carelink/portal-gateway/internal/domain"
	"github.com/carelink/portal-gateway/internal/registration"
)

// -------- Sign in / out --------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Email == "" {
		return domain.ErrMissingField("email")
	}
	if r.Password == "" {
		return domain.ErrMissingField("password")
	}
	if !domain.IsValidRole(r.Role) {
		return domain.ErrInvalidRole(r.Role)
	}
	return nil
}

type LogoutRequest struct{}

// -------- Registration --------

// RegistrationStepRequest carries whichever fields the current step shows.
// The workflow ignores fields that belong to other steps.
type RegistrationStepRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`

	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	BloodGroup  string `json:"bloodGroup"`

	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"licenseNumber"`

	EmergencyContact string `json:"emergencyContact"`

	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r *RegistrationStepRequest) Draft() registration.Draft {
	return registration.Draft{
		FullName:         strings.TrimSpace(r.FullName),
		Email:            strings.TrimSpace(strings.ToLower(r.Email)),
		Phone:            strings.TrimSpace(r.Phone),
		Role:             domain.Role(r.Role),
		DateOfBirth:      strings.TrimSpace(r.DateOfBirth),
		Gender:           strings.TrimSpace(strings.ToLower(r.Gender)),
		Address:          strings.TrimSpace(r.Address),
		BloodGroup:       strings.TrimSpace(r.BloodGroup),
		Specialization:   strings.TrimSpace(r.Specialization),
		LicenseNumber:    strings.TrimSpace(r.LicenseNumber),
		EmergencyContact: strings.TrimSpace(r.EmergencyContact),
		Password:         r.Password,
		ConfirmPassword:  r.ConfirmPassword,
	}
}

// -------- Verification --------

type VerifyRequest struct {
	Code string `json:"code"`
}

func (r *VerifyRequest) Validate() error {
	r.Code = strings.TrimSpace(r.Code)
	if r.Code == "" {
		return domain.ErrMissingField("code")
	}
	return nil
}

// -------- Goals and reminders --------

// GoalRequest leaves Progress a pointer: an omitted value must reach the
// backend as omitted, not as zero.
type GoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	Status      string `json:"status"`
	Progress    *int   `json:"progress,omitempty"`
}

func (r *GoalRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return domain.ErrMissingField("title")
	}
	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		return domain.ErrInvalidField("progress", "must be between 0 and 100")
	}
	return nil
}

type ReminderRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	ScheduledDate string `json:"scheduledDate"`
	IsActive      *bool  `json:"isActive,omitempty"`
	Recurrence    string `json:"recurrence,omitempty"`
}

func (r *ReminderRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return domain.ErrMissingField("title")
	}
	if strings.TrimSpace(r.ScheduledDate) == "" {
		return domain.ErrMissingField("scheduledDate")
	}
	switch r.Type {
	case "medication", "appointment", "general":
	default:
		return domain.ErrInvalidField("type", "must be medication, appointment or general")
	}
	return nil
}
