package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mbbx6spp/straitjacket"
	"github.com/mbbx6spp/straitjacket/internal/adapters/http/dto"
	"github.com/mbbx6spp/straitjacket/internal/domain"
)

// parseID extracts a positive int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &straitjacket.ValidationError{
			Failures: []string{param + " must be a positive integer"},
		}
	}
	return id, nil
}

// parseEntryFilter builds a domain.EntryFilter from the query string.
// Unknown status values are rejected rather than silently matching nothing.
func parseEntryFilter(r *http.Request) (domain.EntryFilter, error) {
	q := r.URL.Query()
	filter := domain.EntryFilter{Tag: q.Get("tag")}

	if raw := q.Get("status"); raw != "" {
		status := domain.Status(raw)
		if !status.IsValid() {
			return domain.EntryFilter{}, &straitjacket.ValidationError{
				Failures: []string{fmt.Sprintf("status is invalid: %q", raw)},
			}
		}
		filter.Status = status
	}

	return filter, nil
}

// mapCreateEntryRequest converts a CreateEntryRequest DTO to a domain Entry.
// New entries always begin as drafts.
func mapCreateEntryRequest(req *dto.CreateEntryRequest) *domain.Entry {
	return &domain.Entry{
		Title:  req.Title,
		Body:   req.Body,
		Tags:   req.Tags,
		Status: domain.StatusDraft,
	}
}

// mapUpdateEntryRequest converts an UpdateEntryRequest DTO to a domain Entry
// carrying the replacement content.
func mapUpdateEntryRequest(req *dto.UpdateEntryRequest) *domain.Entry {
	return &domain.Entry{
		Title: req.Title,
		Body:  req.Body,
		Tags:  req.Tags,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &straitjacket.ValidationError{
			Failures: []string{"body is not valid JSON"},
		})
		return false
	}
	return true
}

// decodeAndValidate decodes the JSON request body into dst and runs it
// through straitjacket.Make, so every structural problem with the request
// is reported at once. On decode or validation failure it writes an error
// response and returns false.
func decodeAndValidate[T straitjacket.Validator](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if _, err := straitjacket.Make(dst); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// decodeEntryCreate decodes and validates a CreateEntryRequest, returning the
// mapped domain Entry. Returns nil and writes an error response on failure.
func decodeEntryCreate(w http.ResponseWriter, r *http.Request) *domain.Entry {
	var req dto.CreateEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return nil
	}
	return mapCreateEntryRequest(&req)
}

// decodeEntryUpdate decodes and validates an UpdateEntryRequest, returning the
// mapped domain Entry. Returns nil and writes an error response on failure.
func decodeEntryUpdate(w http.ResponseWriter, r *http.Request) *domain.Entry {
	var req dto.UpdateEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return nil
	}
	return mapUpdateEntryRequest(&req)
}
