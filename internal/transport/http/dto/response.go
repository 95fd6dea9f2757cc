package dto

import (
	"github.com/carelink/portal-gateway/internal/domain"
	"github.com/carelink/portal-gateway/internal/registration"
)

// PageState is what a page route resolves to for the client shell.
type PageState struct {
	Page          string       `json:"page"`
	Path          string       `json:"path"`
	Authenticated bool         `json:"authenticated"`
	Chrome        bool         `json:"chrome"`
	User          *UserSummary `json:"user,omitempty"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func UserFromIdentity(id domain.Identity) *UserSummary {
	return &UserSummary{
		ID:    id.ID,
		Name:  id.Name,
		Email: id.Email,
		Role:  string(id.Role),
	}
}

type SessionState struct {
	Authenticated bool         `json:"authenticated"`
	User          *UserSummary `json:"user,omitempty"`
}

// RegistrationState echoes the workflow without the password fields.
type RegistrationState struct {
	Step  int               `json:"step"`
	State string            `json:"state"`
	Draft RegistrationDraft `json:"draft"`
}

type RegistrationDraft struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Role             string `json:"role"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	BloodGroup       string `json:"bloodGroup"`
	Specialization   string `json:"specialization"`
	LicenseNumber    string `json:"licenseNumber"`
	EmergencyContact string `json:"emergencyContact"`
}

func RegistrationStateFrom(w *registration.Workflow) RegistrationState {
	d := w.Draft()
	return RegistrationState{
		Step:  int(w.Step()),
		State: string(w.State()),
		Draft: RegistrationDraft{
			FullName:         d.FullName,
			Email:            d.Email,
			Phone:            d.Phone,
			Role:             string(d.Role),
			DateOfBirth:      d.DateOfBirth,
			Gender:           d.Gender,
			Address:          d.Address,
			BloodGroup:       d.BloodGroup,
			Specialization:   d.Specialization,
			LicenseNumber:    d.LicenseNumber,
			EmergencyContact: d.EmergencyContact,
		},
	}
}

type ResendState struct {
	Wait int `json:"wait"`
}
