package registration

import (
	"sync"
	"time"

	"github.com/carelink/portal-gateway/internal/domain"
)

// resendCooldown throttles "send me a new code" clicks.
const resendCooldown = 30 * time.Second

// Verifier handles the post-registration code screen for one session.
//
// TODO: real code delivery once the backend grows an OTP endpoint; until then
// any six-digit code passes.
type Verifier struct {
	mu       sync.Mutex
	lastSent time.Time
	now      func() time.Time
}

func NewVerifier() *Verifier {
	return &Verifier{now: time.Now}
}

// Resend requests a fresh code, at most once per cooldown window.
// Returns the seconds left when called too soon.
func (v *Verifier) Resend() (wait int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	now := v.now()
	if !v.lastSent.IsZero() {
		if remaining := resendCooldown - now.Sub(v.lastSent); remaining > 0 {
			secs := int(remaining.Round(time.Second) / time.Second)
			if secs < 1 {
				secs = 1
			}
			return secs, domain.ErrInvalidField("resend", "cooldown")
		}
	}
	v.lastSent = now
	return 0, nil
}

// Check accepts exactly six digits.
func (v *Verifier) Check(code string) error {
	if len(code) != 6 {
		return domain.ErrInvalidCode()
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return domain.ErrInvalidCode()
		}
	}
	return nil
}

// Verifiers holds one Verifier per browser session. Like Workflows, entries
// untouched for the ttl are swept on the next access.
type Verifiers struct {
	mu     sync.Mutex
	active map[string]*verifierEntry
	ttl    time.Duration
	now    func() time.Time
}

type verifierEntry struct {
	v       *Verifier
	touched time.Time
}

func NewVerifiers(ttl time.Duration) *Verifiers {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Verifiers{
		active: make(map[string]*verifierEntry),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Verifiers) Get(sid string) *Verifier {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, e := range s.active {
		if now.Sub(e.touched) > s.ttl {
			delete(s.active, id)
		}
	}
	e, ok := s.active[sid]
	if !ok {
		e = &verifierEntry{v: NewVerifier()}
		s.active[sid] = e
	}
	e.touched = now
	return e.v
}

func (s *Verifiers) Drop(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, sid)
}
