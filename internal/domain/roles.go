package domain

type Role string

const (
	// Patient accesses healthcare services and manages their own health data
	RolePatient Role = "patient"
	// Provider manages patients and delivers medical services
	RoleProvider Role = "provider"
)

func IsValidRole(r string) bool {
	return r == string(RolePatient) || r == string(RoleProvider)
}
