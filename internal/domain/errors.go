package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation  ErrKind = "validation"   // 400, local, never reaches the gateway
	KindAuth        ErrKind = "auth"         // 401, login rejected
	KindAuthExpired ErrKind = "auth_expired" // 401, held credential rejected upstream
	KindNotFound    ErrKind = "not_found"    // 404
	KindRemote      ErrKind = "remote"       // non-2xx with an upstream-provided reason
	KindNetwork     ErrKind = "network"      // no response received
	KindInternal    ErrKind = "internal"     // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Meta: optional details (field, reason, etc.)
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Meta    map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func WithMeta(err *Error, meta map[string]string) *Error {
	err.Meta = meta
	return err
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// KindOf returns the kind of a domain error, or KindInternal for anything else.
func KindOf(err error) ErrKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "invalid JSON body", cause)
}

func ErrMissingField(field string) *Error {
	return WithMeta(New(KindValidation, "missing_field", "missing required field"), map[string]string{
		"field": field,
	})
}

func ErrInvalidField(field, reason string) *Error {
	return WithMeta(New(KindValidation, "invalid_field", "invalid field"), map[string]string{
		"field":  field,
		"reason": reason,
	})
}

func ErrWeakPassword(reason string) *Error {
	return WithMeta(New(KindValidation, "weak_password", "password must be at least 6 characters"), map[string]string{
		"reason": reason,
	})
}

func ErrPasswordMismatch() *Error {
	return New(KindValidation, "password_mismatch", "passwords do not match")
}

func ErrInvalidRole(role string) *Error {
	return WithMeta(New(KindValidation, "invalid_role", "invalid role"), map[string]string{
		"role": role,
	})
}

func ErrInvalidStep(reason string) *Error {
	return WithMeta(New(KindValidation, "invalid_step", "invalid registration step"), map[string]string{
		"reason": reason,
	})
}

func ErrAlreadySubmitted() *Error {
	return New(KindValidation, "already_submitted", "registration already submitted")
}

func ErrInvalidCode() *Error {
	return New(KindValidation, "invalid_code", "verification code must be 6 digits")
}

// ----------------------
// Auth errors (401)
// ----------------------

// IMPORTANT: the single message for every login failure, regardless of the
// underlying cause, to avoid user enumeration.
func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "Invalid email or password")
}

// ErrAuthExpired signals that the held bearer token was rejected upstream.
// The gateway has already cleared the session by the time callers see this.
func ErrAuthExpired() *Error {
	return New(KindAuthExpired, "auth_expired", "session expired, sign in again")
}

// ----------------------
// Not found (404)
// ----------------------

func ErrTopicNotFound(id string) *Error {
	return WithMeta(New(KindNotFound, "topic_not_found", "health topic not found"), map[string]string{
		"id": id,
	})
}

// ----------------------
// Gateway outcomes (upstream / transport)
// ----------------------

// ErrRemote carries the upstream reason verbatim so registration and profile
// operations can surface it. Login handlers must not pass it through.
func ErrRemote(status int, msg string) *Error {
	if msg == "" {
		msg = fmt.Sprintf("unexpected status: %d", status)
	}
	return WithMeta(New(KindRemote, "remote_error", msg), map[string]string{
		"status": fmt.Sprintf("%d", status),
	})
}

func ErrNetwork(cause error) *Error {
	return Wrap(KindNetwork, "network_error", "service unreachable, try again later", cause)
}

// ----------------------
// Internal (500)
// ----------------------

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "internal error", cause)
}

func ErrCookieSignFailed(cause error) *Error {
	return Wrap(KindInternal, "cookie_sign_failed", "session cookie signing failed", cause)
}

func ErrCookieInvalid() *Error {
	return New(KindAuthExpired, "cookie_invalid", "invalid session cookie")
}
