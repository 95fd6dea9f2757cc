package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/carelink/portal-gateway/internal/domain"
	"github.com/carelink/portal-gateway/internal/upstream"
)

type fakeSubmitter struct {
	patientCalls  []upstream.PatientRegistration
	providerCalls []upstream.ProviderRegistration
	err           error
}

func (f *fakeSubmitter) RegisterPatient(_ context.Context, p upstream.PatientRegistration) (upstream.Registered, error) {
	f.patientCalls = append(f.patientCalls, p)
	if f.err != nil {
		return upstream.Registered{}, f.err
	}
	return upstream.Registered{ID: "u1", Name: p.Name, Email: p.Email}, nil
}

func (f *fakeSubmitter) RegisterProvider(_ context.Context, p upstream.ProviderRegistration) (upstream.Registered, error) {
	f.providerCalls = append(f.providerCalls, p)
	if f.err != nil {
		return upstream.Registered{}, f.err
	}
	return upstream.Registered{ID: "u2", Name: p.Name, Email: p.Email}, nil
}

func (f *fakeSubmitter) networkCalls() int {
	return len(f.patientCalls) + len(f.providerCalls)
}

type fakeNav struct{ toLogin int }

func (f *fakeNav) ToLogin(context.Context) { f.toLogin++ }

func patientIdentity() Draft {
	return Draft{FullName: "Jane Doe", Email: "jane@example.com", Phone: "5551234567", Role: domain.RolePatient}
}

// Walks the happy path for a patient end to end: no network traffic until
// submit, one call at submit, then the sign-in redirect without a session.
func TestWorkflow_PatientHappyPath(t *testing.T) {
	t.Parallel()
	backend := &fakeSubmitter{}
	nav := &fakeNav{}
	w := NewWorkflow(backend, nav)
	w.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

	w.Update(patientIdentity())
	if err := w.Next(); err != nil {
		t.Fatalf("Next from identity: %v", err)
	}

	w.Update(Draft{DateOfBirth: "1992-03-14", BloodGroup: "O+"})
	if err := w.Next(); err != nil {
		t.Fatalf("Next from profile: %v", err)
	}

	if got := backend.networkCalls(); got != 0 {
		t.Fatalf("network calls before submit = %d, want 0", got)
	}

	w.Update(Draft{Password: "secret1", ConfirmPassword: "secret1"})
	if err := w.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if got := backend.networkCalls(); got != 1 {
		t.Fatalf("network calls = %d, want exactly 1", got)
	}
	sent := backend.patientCalls[0]
	if sent.Name != "Jane Doe" || sent.Email != "jane@example.com" {
		t.Fatalf("payload identity = %q %q", sent.Name, sent.Email)
	}
	if sent.Age != 34 {
		t.Fatalf("derived age = %d, want 34", sent.Age)
	}
	if sent.BloodGroup != "O+" {
		t.Fatalf("blood group = %q", sent.BloodGroup)
	}
	if w.State() != StateSubmitted {
		t.Fatalf("state = %q", w.State())
	}
	if nav.toLogin != 1 {
		t.Fatalf("sign-in redirects = %d, want 1", nav.toLogin)
	}
}

func TestWorkflow_IdentityGateBlocks(t *testing.T) {
	t.Parallel()
	w := NewWorkflow(&fakeSubmitter{}, &fakeNav{})

	w.Update(Draft{FullName: "Jane Doe", Phone: "5551234567", Role: domain.RolePatient}) // no email
	if err := w.Next(); err == nil {
		t.Fatal("expected the identity gate to block")
	}
	if w.Step() != StepIdentity {
		t.Fatalf("step = %d, want to stay on identity", w.Step())
	}

	w.Update(Draft{FullName: "Jane Doe", Email: "not-an-email", Phone: "5551234567", Role: domain.RolePatient})
	if err := w.Next(); err == nil {
		t.Fatal("expected a bad email to block")
	}
}

func TestWorkflow_ProviderGateRequiresCredentialFields(t *testing.T) {
	t.Parallel()
	backend := &fakeSubmitter{}
	w := NewWorkflow(backend, &fakeNav{})

	w.Update(Draft{FullName: "Dr Smith", Email: "smith@example.com", Phone: "5559876543", Role: domain.RoleProvider})
	if err := w.Next(); err != nil {
		t.Fatalf("Next from identity: %v", err)
	}

	// Missing specialization and license.
	if err := w.Next(); err == nil {
		t.Fatal("expected the provider gate to block")
	}

	w.Update(Draft{Specialization: "Cardiology", LicenseNumber: "LIC-9921"})
	if err := w.Next(); err != nil {
		t.Fatalf("Next from profile: %v", err)
	}

	w.Update(Draft{Password: "secret1", ConfirmPassword: "secret1"})
	if err := w.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(backend.providerCalls) != 1 || len(backend.patientCalls) != 0 {
		t.Fatalf("calls = %d provider / %d patient", len(backend.providerCalls), len(backend.patientCalls))
	}
	sent := backend.providerCalls[0]
	if sent.Specialization != "Cardiology" || sent.LicenseNumber != "LIC-9921" {
		t.Fatalf("payload = %+v", sent)
	}
	if sent.Phone != "5559876543" {
		t.Fatalf("phone = %q, want it forwarded for providers", sent.Phone)
	}
}

func TestWorkflow_PasswordPolicyIsLocal(t *testing.T) {
	t.Parallel()
	backend := &fakeSubmitter{}
	w := NewWorkflow(backend, &fakeNav{})

	w.Update(patientIdentity())
	if err := w.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}

	w.Update(Draft{Password: "short", ConfirmPassword: "short"})
	if err := w.Submit(context.Background()); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("short password: err = %v", err)
	}

	w.Update(Draft{Password: "secret1", ConfirmPassword: "secret2"})
	if err := w.Submit(context.Background()); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("mismatch: err = %v", err)
	}

	if backend.networkCalls() != 0 {
		t.Fatal("password policy must be enforced before any network call")
	}
}

func TestWorkflow_BackPreservesDraft(t *testing.T) {
	t.Parallel()
	w := NewWorkflow(&fakeSubmitter{}, &fakeNav{})

	w.Update(patientIdentity())
	if err := w.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	w.Update(Draft{DateOfBirth: "1992-03-14", BloodGroup: "O+"})

	w.Back()
	if w.Step() != StepIdentity {
		t.Fatalf("step = %d after Back", w.Step())
	}
	d := w.Draft()
	if d.FullName != "Jane Doe" || d.DateOfBirth != "1992-03-14" {
		t.Fatalf("draft lost fields: %+v", d)
	}

	// Back from the first step stays put.
	w.Back()
	if w.Step() != StepIdentity {
		t.Fatalf("step = %d", w.Step())
	}
}

func TestWorkflow_FailedSubmitKeepsDraftForRetry(t *testing.T) {
	t.Parallel()
	backend := &fakeSubmitter{err: domain.ErrRemote(409, "email already registered")}
	nav := &fakeNav{}
	w := NewWorkflow(backend, nav)

	w.Update(patientIdentity())
	_ = w.Next()
	_ = w.Next()
	w.Update(Draft{Password: "secret1", ConfirmPassword: "secret1"})

	err := w.Submit(context.Background())
	if err == nil {
		t.Fatal("expected the submit to fail")
	}
	var de *domain.Error
	if !errors.As(err, &de) || de.Message != "email already registered" {
		t.Fatalf("err = %v, want the upstream message preserved", err)
	}
	if w.State() != StateFailed {
		t.Fatalf("state = %q", w.State())
	}
	if w.Draft().FullName != "Jane Doe" {
		t.Fatal("draft must survive a failed submit")
	}
	if nav.toLogin != 0 {
		t.Fatal("failed submit must not redirect")
	}

	// Correct and retry.
	backend.err = nil
	if err := w.Submit(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if w.State() != StateSubmitted {
		t.Fatalf("state = %q", w.State())
	}
}

func TestWorkflow_SecondSubmitRejected(t *testing.T) {
	t.Parallel()
	backend := &fakeSubmitter{}
	w := NewWorkflow(backend, &fakeNav{})

	w.Update(patientIdentity())
	_ = w.Next()
	_ = w.Next()
	w.Update(Draft{Password: "secret1", ConfirmPassword: "secret1"})

	if err := w.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := w.Submit(context.Background()); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("second submit: err = %v", err)
	}
	if backend.networkCalls() != 1 {
		t.Fatalf("network calls = %d, want 1", backend.networkCalls())
	}
}

func TestWorkflow_SubmitBeforeFinalStepRejected(t *testing.T) {
	t.Parallel()
	backend := &fakeSubmitter{}
	w := NewWorkflow(backend, &fakeNav{})

	w.Update(patientIdentity())
	if err := w.Submit(context.Background()); err == nil {
		t.Fatal("expected a submit on step one to fail")
	}
	if backend.networkCalls() != 0 {
		t.Fatal("early submit must not reach the network")
	}
}

func TestWorkflow_ProfileStepKeepsContactFields(t *testing.T) {
	t.Parallel()
	w := NewWorkflow(&fakeSubmitter{}, &fakeNav{})

	w.Update(patientIdentity())
	if err := w.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	w.Update(Draft{
		DateOfBirth:      "1992-03-14",
		Gender:           "female",
		Address:          "12 Elm Street",
		BloodGroup:       "O+",
		EmergencyContact: "John Doe 5550001111",
	})
	if err := w.Next(); err != nil {
		t.Fatalf("Next from profile: %v", err)
	}

	w.Back()
	d := w.Draft()
	if d.Gender != "female" || d.Address != "12 Elm Street" || d.EmergencyContact != "John Doe 5550001111" {
		t.Fatalf("draft dropped contact fields: %+v", d)
	}
}

func TestWorkflow_ProfileGateRejectsBadGender(t *testing.T) {
	t.Parallel()
	w := NewWorkflow(&fakeSubmitter{}, &fakeNav{})

	w.Update(patientIdentity())
	if err := w.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	w.Update(Draft{Gender: "unknown"})
	if err := w.Next(); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("bad gender: err = %v", err)
	}
}

func TestWorkflows_PerSessionIsolation(t *testing.T) {
	t.Parallel()
	store := NewWorkflows(&fakeSubmitter{}, &fakeNav{}, time.Hour)

	a := store.Get("sid-a")
	b := store.Get("sid-b")
	if a == b {
		t.Fatal("sessions must not share a workflow")
	}
	a.Update(patientIdentity())
	if b.Draft().FullName != "" {
		t.Fatal("draft leaked across sessions")
	}

	if store.Get("sid-a") != a {
		t.Fatal("Get must be stable for a session")
	}
	store.Drop("sid-a")
	if store.Get("sid-a") == a {
		t.Fatal("Drop must discard the workflow")
	}
}

func TestWorkflows_AbandonedDraftsExpire(t *testing.T) {
	t.Parallel()
	store := NewWorkflows(&fakeSubmitter{}, &fakeNav{}, time.Hour)
	clock := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	abandoned := store.Get("sid-a")
	abandoned.Update(patientIdentity())

	// Accesses within the window keep the entry alive.
	clock = clock.Add(30 * time.Minute)
	if store.Get("sid-a") != abandoned {
		t.Fatal("entry expired before its deadline")
	}

	clock = clock.Add(61 * time.Minute)
	if store.Get("sid-b") == nil {
		t.Fatal("Get: nil workflow")
	}
	if len(store.active) != 1 {
		t.Fatalf("live entries = %d, want the stale draft swept", len(store.active))
	}
	if store.Get("sid-a") == abandoned {
		t.Fatal("expired session must start over")
	}
}
