package session

import (
	"context"

	"github.com/carelink/portal-gateway/internal/domain"
)

// Session is the server-held record for one browser. Token and identity are
// stored as a single record so readers can never observe one without the
// other.
type Session struct {
	Identity domain.Identity
	Token    string
}

// Authenticated requires both halves. A record missing either one counts as
// anonymous.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.Identity.ID != ""
}

/*
Store
-----
Persistence port for portal sessions, keyed by the browser's session ID.
Only describes WHAT the portal needs, not HOW it's stored.

Load never fails on absent or malformed data: it returns the anonymous
session. Errors are reserved for infrastructure faults.
*/
type Store interface {
	Load(ctx context.Context, sid string) (Session, error)
	// Save commits identity and token together. Partial writes must not be
	// observable.
	Save(ctx context.Context, sid string, identity domain.Identity, token string) error
	// Clear removes the record. Clearing an absent session is a no-op.
	Clear(ctx context.Context, sid string) error
}
