package authflow

import (
	"context"
	"errors"
	"testing"

	"github.com/carelink/portal-gateway/internal/domain"
	"github.com/carelink/portal-gateway/internal/session"
	"github.com/carelink/portal-gateway/internal/upstream"
)

type fakeBackend struct {
	reply upstream.LoginReply
	err   error

	calls []domain.Role
}

func (f *fakeBackend) Login(_ context.Context, role domain.Role, email, password string) (upstream.LoginReply, error) {
	f.calls = append(f.calls, role)
	return f.reply, f.err
}

type fakeNav struct {
	dashboard int
	landing   int
}

func (f *fakeNav) ToDashboard(context.Context) { f.dashboard++ }
func (f *fakeNav) ToLanding(context.Context)   { f.landing++ }

func okReply() upstream.LoginReply {
	var r upstream.LoginReply
	r.User.ID = "u1"
	r.User.Name = "Jane Doe"
	r.User.Email = "jane@example.com"
	r.Token = "tok-1"
	return r
}

func TestLogin_SuccessCommitsSessionAndRedirects(t *testing.T) {
	t.Parallel()
	sessions := session.NewMemoryStore()
	nav := &fakeNav{}
	svc := NewService(&fakeBackend{reply: okReply()}, sessions, nav)

	if err := svc.Login(context.Background(), "sid-1", domain.RolePatient, "jane@example.com", "secret1"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	sess, err := sessions.Load(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !sess.Authenticated() {
		t.Fatal("expected an authenticated session")
	}
	if sess.Identity.Role != domain.RolePatient {
		t.Fatalf("role = %q, want the role the request asserted", sess.Identity.Role)
	}
	if sess.Token != "tok-1" {
		t.Fatalf("token = %q, want tok-1", sess.Token)
	}
	if nav.dashboard != 1 {
		t.Fatalf("dashboard redirects = %d, want 1", nav.dashboard)
	}
}

func TestLogin_RoleComesFromRequestNotResponse(t *testing.T) {
	t.Parallel()
	sessions := session.NewMemoryStore()
	svc := NewService(&fakeBackend{reply: okReply()}, sessions, &fakeNav{})

	if err := svc.Login(context.Background(), "sid-1", domain.RoleProvider, "jane@example.com", "secret1"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	sess, _ := sessions.Load(context.Background(), "sid-1")
	if sess.Identity.Role != domain.RoleProvider {
		t.Fatalf("role = %q, want provider", sess.Identity.Role)
	}
}

func TestLogin_AnyFailureIsGeneric(t *testing.T) {
	t.Parallel()
	failures := map[string]error{
		"remote rejection": domain.ErrRemote(401, "no such account"),
		"network fault":    domain.ErrNetwork(errors.New("dial refused")),
		"server error":     domain.ErrRemote(500, "boom"),
	}
	for name, cause := range failures {
		cause := cause
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			sessions := session.NewMemoryStore()
			nav := &fakeNav{}
			svc := NewService(&fakeBackend{err: cause}, sessions, nav)

			err := svc.Login(context.Background(), "sid-1", domain.RolePatient, "jane@example.com", "wrong")
			if err == nil {
				t.Fatal("expected an error")
			}
			var de *domain.Error
			if !errors.As(err, &de) {
				t.Fatalf("error type = %T", err)
			}
			if de.Message != "Invalid email or password" {
				t.Fatalf("message = %q, must not leak the cause", de.Message)
			}
			if sess, _ := sessions.Load(context.Background(), "sid-1"); sess.Authenticated() {
				t.Fatal("failed login must not commit a session")
			}
			if nav.dashboard != 0 {
				t.Fatal("failed login must not redirect to the dashboard")
			}
		})
	}
}

func TestLogin_RejectsUnknownRoleWithoutNetwork(t *testing.T) {
	t.Parallel()
	backend := &fakeBackend{reply: okReply()}
	svc := NewService(backend, session.NewMemoryStore(), &fakeNav{})

	err := svc.Login(context.Background(), "sid-1", domain.Role("admin"), "jane@example.com", "secret1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(backend.calls) != 0 {
		t.Fatalf("backend calls = %d, want 0", len(backend.calls))
	}
}

func TestLogin_RejectsEmptyFields(t *testing.T) {
	t.Parallel()
	svc := NewService(&fakeBackend{reply: okReply()}, session.NewMemoryStore(), &fakeNav{})

	if err := svc.Login(context.Background(), "sid-1", domain.RolePatient, "", "secret1"); err == nil {
		t.Fatal("expected an error for a missing email")
	}
	if err := svc.Login(context.Background(), "sid-1", domain.RolePatient, "jane@example.com", ""); err == nil {
		t.Fatal("expected an error for a missing password")
	}
}

func TestLogout_IsIdempotent(t *testing.T) {
	t.Parallel()
	sessions := session.NewMemoryStore()
	nav := &fakeNav{}
	svc := NewService(&fakeBackend{reply: okReply()}, sessions, nav)

	if err := svc.Login(context.Background(), "sid-1", domain.RolePatient, "jane@example.com", "secret1"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := svc.Logout(context.Background(), "sid-1"); err != nil {
			t.Fatalf("Logout #%d: %v", i+1, err)
		}
	}
	if svc.Authenticated(context.Background(), "sid-1") {
		t.Fatal("session survived logout")
	}
	if nav.landing != 3 {
		t.Fatalf("landing redirects = %d, want 3", nav.landing)
	}
}

func TestCurrent(t *testing.T) {
	t.Parallel()
	sessions := session.NewMemoryStore()
	svc := NewService(&fakeBackend{reply: okReply()}, sessions, &fakeNav{})

	if _, ok := svc.Current(context.Background(), "sid-1"); ok {
		t.Fatal("anonymous session must have no identity")
	}

	if err := svc.Login(context.Background(), "sid-1", domain.RolePatient, "jane@example.com", "secret1"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	id, ok := svc.Current(context.Background(), "sid-1")
	if !ok {
		t.Fatal("expected an identity after login")
	}
	if id.Name != "Jane Doe" {
		t.Fatalf("name = %q", id.Name)
	}
}
