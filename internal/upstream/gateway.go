package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/carelink/portal-gateway/internal/domain"
	"github.com/carelink/portal-gateway/internal/logger"
	pkgctx "github.com/carelink/portal-gateway/internal/pkg/context"
	"github.com/carelink/portal-gateway/internal/session"
)

// Navigator lets the gateway force the UI somewhere. Implemented by the
// transport layer per request; fakes in tests.
type Navigator interface {
	ToLogin(ctx context.Context)
}

// GatewayConfig holds timeouts for the HTTP wrapper.
type GatewayConfig struct {
	// ReadTimeout is used for GET requests
	ReadTimeout time.Duration
	// WriteTimeout is used for POST, PUT, PATCH, DELETE requests
	WriteTimeout time.Duration
}

func DefaultGatewayConfig() GatewayConfig {
	return GatewayConfig{
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// Gateway is the single chokepoint for outbound calls to one remote target:
// 1. Injects X-Request-ID from context
// 2. Attaches the session's bearer token (credentialed targets only)
// 3. Enforces timeouts based on HTTP method (read vs write)
// 4. Maps every failure onto the portal error taxonomy
// 5. On credential rejection, clears the session and forces the login page
//    before the caller sees the failure
//
// There is no retry of any kind: one call, one outcome.
type Gateway struct {
	name       string
	baseURL    string
	baseClient *http.Client
	config     GatewayConfig

	// nil for credential-free targets (content service)
	sessions session.Store
	nav      Navigator
}

// NewPrimary builds the credentialed gateway for the primary backend.
func NewPrimary(baseURL string, cfg GatewayConfig, sessions session.Store, nav Navigator) *Gateway {
	return &Gateway{
		name:       "primary",
		baseURL:    strings.TrimRight(baseURL, "/"),
		baseClient: &http.Client{Timeout: 0}, // per-request timeouts below
		config:     cfg,
		sessions:   sessions,
		nav:        nav,
	}
}

// NewContent builds the credential-free gateway for the read-only content
// service. It must never attach an Authorization header.
func NewContent(baseURL string, cfg GatewayConfig) *Gateway {
	return &Gateway{
		name:       "content",
		baseURL:    strings.TrimRight(baseURL, "/"),
		baseClient: &http.Client{Timeout: 0},
		config:     cfg,
	}
}

// Do issues one call and decodes a 2xx JSON body into out (when out != nil).
// Every failure is a *domain.Error: auth_expired, remote_error or
// network_error.
func (g *Gateway) Do(ctx context.Context, method, path string, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return domain.ErrInternal(err)
		}
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}

	timeout := g.config.ReadTimeout
	if isWriteMethod(method) {
		timeout = g.config.WriteTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, rd)
	if err != nil {
		return domain.ErrInternal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if reqID := pkgctx.GetRequestID(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}

	credentialed := g.sessions != nil
	if credentialed {
		sid := pkgctx.GetSessionID(ctx)
		if sess, err := g.sessions.Load(ctx, sid); err == nil && sess.Token != "" {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
		}
	}

	log := logger.Log.With().
		Str("gateway", g.name).
		Str("method", method).
		Str("url", req.URL.String()).
		Str("request_id", pkgctx.GetRequestID(ctx)).
		Logger()

	start := time.Now()
	resp, err := g.baseClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Warn().
			Err(err).
			Dur("duration", duration).
			Msg("upstream_request_failed")
		return domain.ErrNetwork(err)
	}
	defer resp.Body.Close()

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("upstream_request_completed")

	if resp.StatusCode == http.StatusUnauthorized && credentialed {
		// Credential rejected: tear down the session and force the login
		// page before the caller's error handling runs.
		sid := pkgctx.GetSessionID(ctx)
		if err := g.sessions.Clear(ctx, sid); err != nil {
			log.Error().Err(err).Msg("session_clear_failed")
		}
		if g.nav != nil {
			g.nav.ToLogin(ctx)
		}
		return domain.ErrAuthExpired()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeRemoteError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return domain.ErrInternal(fmt.Errorf("decode %s %s: %w", method, path, err))
		}
	}
	return nil
}

// Get is a convenience wrapper for GET requests.
func (g *Gateway) Get(ctx context.Context, path string, out any) error {
	return g.Do(ctx, http.MethodGet, path, nil, out)
}

// decodeRemoteError preserves the upstream-provided reason when present.
// The backend writes either {"message": ...} or {"error": ...}.
func decodeRemoteError(resp *http.Response) *domain.Error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	return domain.ErrRemote(resp.StatusCode, msg)
}

// isWriteMethod returns true for HTTP methods that modify state
func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
