package domain

// Identity is the authenticated user as held by the portal session.
// Role is asserted by the login request, not echoed by the backend
// (the login endpoint differs per role).
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// Credentials are transient login inputs. Never persisted.
type Credentials struct {
	Email    string
	Password string
	Role     Role
}
