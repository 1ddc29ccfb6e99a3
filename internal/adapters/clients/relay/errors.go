// Package relay implements the outbound adapter for the downstream relay
// API, which receives published journal entries. It translates between
// domain types and the relay's wire representations and maps relay HTTP
// errors to domain errors, insulating the rest of the service from the
// relay's conventions.
package relay

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mbbx6spp/straitjacket"
	"github.com/mbbx6spp/straitjacket/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problemDetail represents an RFC 7807 Problem Details response from the
// relay API.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

// errorDetail represents a single field-level error within an RFC 7807
// response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps an HTTP error response to a domain error.
// It parses the response body as RFC 7807 when the content type is
// application/problem+json, using the detail field for context.
// For 400/422 responses with field-level errors, it returns a
// *straitjacket.ValidationError carrying the relay's failures in the
// order the relay reported them.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, straitjacket.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseProblemDetail attempts to read and parse an RFC 7807 body from the
// response. Returns an empty problemDetail if parsing fails.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError converts RFC 7807 error details to a validation error.
// Each failure keeps the relay's reporting order and reads
// "field: message", with the "body." prefix stripped from locations.
func toValidationError(details []errorDetail) *straitjacket.ValidationError {
	failures := make([]string, 0, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		failures = append(failures, fmt.Sprintf("%s: %s", field, d.Message))
	}
	return &straitjacket.ValidationError{Failures: failures}
}
