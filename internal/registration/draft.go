package registration

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/carelink/portal-gateway/internal/domain"
)

// Draft accumulates the form across steps. Nothing here leaves the process
// until Submit; the password in particular is held only for the final payload.
type Draft struct {
	FullName string      `validate:"required,min=2"`
	Email    string      `validate:"required,email"`
	Phone    string      `validate:"required,min=7,max=20"`
	Role     domain.Role `validate:"required,oneof=patient provider"`

	DateOfBirth string `validate:"omitempty,datetime=2006-01-02"`
	Gender      string `validate:"omitempty,oneof=male female other"`
	Address     string
	BloodGroup  string `validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`

	Specialization string `validate:"required_if=Role provider"`
	LicenseNumber  string `validate:"required_if=Role provider"`

	EmergencyContact string

	Password        string
	ConfirmPassword string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// identityFields and profileFields are the per-step gates. Step three is
// checked by checkPassword instead: cross-field password rules read better in
// code than in tags.
var (
	identityFields = []string{"FullName", "Email", "Phone", "Role"}
	profileFields  = []string{"DateOfBirth", "Gender", "BloodGroup", "Specialization", "LicenseNumber"}
)

func checkFields(d Draft, fields []string) error {
	err := validate.StructPartial(d, fields...)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return domain.ErrInternal(err)
	}
	// Report the first offender; the form fixes one field at a time.
	fe := verrs[0]
	if fe.Tag() == "required" || fe.Tag() == "required_if" {
		return domain.ErrMissingField(fieldName(fe.Field()))
	}
	return domain.ErrInvalidField(fieldName(fe.Field()), fe.Tag())
}

func fieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

const minPasswordLen = 6

func checkPassword(d Draft) error {
	if len(d.Password) < minPasswordLen {
		return domain.ErrWeakPassword("password must be at least 6 characters")
	}
	if d.Password != d.ConfirmPassword {
		return domain.ErrPasswordMismatch()
	}
	return nil
}

// ageFrom derives the whole-year age at now from a YYYY-MM-DD birth date.
// Returns 0 when the date is absent or unparseable; the payload then omits it.
func ageFrom(dob string, now time.Time) int {
	born, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0
	}
	age := now.Year() - born.Year()
	// Compare (month, day) directly; day-of-year shifts by one after February
	// in leap years and miscounts around the birthday.
	if now.Month() < born.Month() ||
		(now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
