package registration

import (
	"sync"
	"time"
)

// Workflows holds the in-progress registrations, one per browser session.
// Drafts are deliberately memory-only: abandoning the form leaks nothing
// durable. Entries untouched for the ttl are swept on the next access so
// abandoned anonymous sessions do not accumulate.
type Workflows struct {
	mu      sync.Mutex
	active  map[string]*workflowEntry
	backend Submitter
	nav     Navigator
	ttl     time.Duration
	now     func() time.Time
}

type workflowEntry struct {
	w       *Workflow
	touched time.Time
}

func NewWorkflows(backend Submitter, nav Navigator, ttl time.Duration) *Workflows {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Workflows{
		active:  make(map[string]*workflowEntry),
		backend: backend,
		nav:     nav,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the session's workflow, starting one if needed. Every access
// refreshes the entry's deadline.
func (s *Workflows) Get(sid string) *Workflow {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweep(now)
	e, ok := s.active[sid]
	if !ok {
		e = &workflowEntry{w: NewWorkflow(s.backend, s.nav)}
		s.active[sid] = e
	}
	e.touched = now
	return e.w
}

// Drop discards the session's workflow, submitted or not.
func (s *Workflows) Drop(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, sid)
}

func (s *Workflows) sweep(now time.Time) {
	for sid, e := range s.active {
		if now.Sub(e.touched) > s.ttl {
			delete(s.active, sid)
		}
	}
}
