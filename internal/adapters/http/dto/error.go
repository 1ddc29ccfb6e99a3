package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mbbx6spp/straitjacket"
	"github.com/mbbx6spp/straitjacket/internal/domain"
)

// ErrorResponse represents an RFC 9457 Problem Details response. Validation
// failures are carried in the extension member "failures" in the order the
// checks reported them.
type ErrorResponse struct {
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Status   int      `json:"status"`
	Detail   string   `json:"detail,omitempty"`
	Instance string   `json:"instance,omitempty"`
	Failures []string `json:"failures,omitempty"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from an error. The
// request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := errorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *straitjacket.ValidationError
	if errors.As(err, &verr) {
		resp.Failures = verr.Failures
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given error.
// It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// errorToStatus maps sentinel errors to HTTP status codes. Validation
// failures come from action construction; the rest are domain sentinels.
func errorToStatus(err error) int {
	switch {
	case errors.Is(err, straitjacket.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
