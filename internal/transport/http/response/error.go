package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/carelink/portal-gateway/internal/domain"
	pkgctx "github.com/carelink/portal-gateway/internal/pkg/context"
)

type ErrorBody struct {
	Error ErrorPayload `json:"error"`
}

type ErrorPayload struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Meta      map[string]string `json:"meta,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// WriteError converts a domain error into a consistent JSON HTTP error response.
// Non-domain errors are treated as internal errors (500) without leaking details.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"
	message := "internal error"
	var meta map[string]string

	var de *domain.Error
	if errors.As(err, &de) {
		status = statusFromError(de)
		code = de.Code
		message = de.Message
		meta = de.Meta
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorBody{
		Error: ErrorPayload{
			Code:      code,
			Message:   message,
			Meta:      meta,
			RequestID: pkgctx.GetRequestID(r.Context()),
		},
	})
}

// statusFromError maps domain error kinds to HTTP status codes. Remote errors
// carry the upstream status through unchanged.
func statusFromError(de *domain.Error) int {
	switch de.Kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth, domain.KindAuthExpired:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindRemote:
		if s, err := strconv.Atoi(de.Meta["status"]); err == nil && s >= 400 && s < 600 {
			return s
		}
		return http.StatusBadGateway
	case domain.KindNetwork:
		return http.StatusBadGateway
	case domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
