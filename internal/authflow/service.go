// Package authflow drives the sign-in and sign-out lifecycle for a browser
// session: anonymous, authenticating, authenticated, failed.
package authflow

import (
	"context"

	"github.com/carelink/portal-gateway/internal/domain"
	"github.com/carelink/portal-gateway/internal/logger"
	"github.com/carelink/portal-gateway/internal/session"
	"github.com/carelink/portal-gateway/internal/upstream"
)

// Backend is the slice of the primary client this flow needs.
type Backend interface {
	Login(ctx context.Context, role domain.Role, email, password string) (upstream.LoginReply, error)
}

// Navigator forces the browser somewhere after a state change.
type Navigator interface {
	ToDashboard(ctx context.Context)
	ToLanding(ctx context.Context)
}

type Service struct {
	backend  Backend
	sessions session.Store
	nav      Navigator
}

func NewService(backend Backend, sessions session.Store, nav Navigator) *Service {
	return &Service{backend: backend, sessions: sessions, nav: nav}
}

// Login authenticates against the primary backend and, on success, commits the
// session and sends the browser to the dashboard.
//
// The role is taken from the request, never from the response: the backend
// does not echo it, and the endpoint already proved it. Every failure surfaces
// as the same generic credential error so the form cannot be used to probe
// which accounts exist.
func (s *Service) Login(ctx context.Context, sid string, role domain.Role, email, password string) error {
	if !domain.IsValidRole(string(role)) {
		return domain.ErrInvalidCredentials()
	}
	if email == "" || password == "" {
		return domain.ErrInvalidCredentials()
	}

	reply, err := s.backend.Login(ctx, role, email, password)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("role", string(role)).Msg("login rejected")
		return domain.Wrap(domain.KindAuth, "invalid_credentials", "Invalid email or password", err)
	}

	identity := domain.Identity{
		ID:    reply.User.ID,
		Name:  reply.User.Name,
		Email: reply.User.Email,
		Role:  role,
	}
	if err := s.sessions.Save(ctx, sid, identity, reply.Token); err != nil {
		return domain.ErrInternal(err)
	}

	logger.Ctx(ctx).Info().Str("role", string(role)).Str("user_id", identity.ID).Msg("login succeeded")
	s.nav.ToDashboard(ctx)
	return nil
}

// Logout clears the session and sends the browser to the landing page. It is
// idempotent: logging out an anonymous session succeeds the same way.
func (s *Service) Logout(ctx context.Context, sid string) error {
	if err := s.sessions.Clear(ctx, sid); err != nil {
		return domain.ErrInternal(err)
	}
	logger.Ctx(ctx).Info().Msg("logout")
	s.nav.ToLanding(ctx)
	return nil
}

// Authenticated reports whether the session holds a complete identity+token
// record. Store faults read as anonymous rather than failing the page.
func (s *Service) Authenticated(ctx context.Context, sid string) bool {
	sess, err := s.sessions.Load(ctx, sid)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("session load failed")
		return false
	}
	return sess.Authenticated()
}

// Current returns the session's identity, or false when anonymous.
func (s *Service) Current(ctx context.Context, sid string) (domain.Identity, bool) {
	sess, err := s.sessions.Load(ctx, sid)
	if err != nil || !sess.Authenticated() {
		return domain.Identity{}, false
	}
	return sess.Identity, true
}
