// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/mbbx6spp/straitjacket/internal/domain"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

// EntryResponse represents a single journal entry in HTTP responses.
type EntryResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags,omitempty"`
	Status      string   `json:"status"`
	DispatchID  string   `json:"dispatch_id,omitempty"`
	PublishedAt string   `json:"published_at,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// EntryListResponse represents a list of journal entries in HTTP responses.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Count   int             `json:"count"`
}

// ToEntryResponse converts a domain Entry to an HTTP response DTO.
// DispatchID and PublishedAt are included only once the entry has been
// published at least once.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	resp := EntryResponse{
		ID:         e.ID,
		Title:      e.Title,
		Body:       e.Body,
		Tags:       e.Tags,
		Status:     e.Status.String(),
		DispatchID: e.DispatchID,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}

	if e.PublishedAt != nil {
		resp.PublishedAt = e.PublishedAt.Format(time.RFC3339)
	}

	return resp
}

// ToEntryListResponse converts a slice of domain Entry values to an HTTP
// list response DTO.
func ToEntryListResponse(entries []domain.Entry) EntryListResponse {
	items := make([]EntryResponse, len(entries))
	for i := range entries {
		items[i] = ToEntryResponse(&entries[i])
	}
	return EntryListResponse{
		Entries: items,
		Count:   len(items),
	}
}

// BatchPublishResponse represents the result of a batch publish operation.
// It includes both published entries and per-entry errors.
type BatchPublishResponse struct {
	Published []EntryResponse  `json:"published"`
	Errors    []BatchErrorItem `json:"errors"`
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

// BatchErrorItem represents a single failed publish within a batch operation.
type BatchErrorItem struct {
	EntryID int64  `json:"entry_id"`
	Message string `json:"message"`
}

// ToBatchPublishResponse converts a ports.BatchResult to an HTTP response DTO.
func ToBatchPublishResponse(result *ports.BatchResult) BatchPublishResponse {
	published := make([]EntryResponse, len(result.Published))
	for i := range result.Published {
		published[i] = ToEntryResponse(&result.Published[i])
	}

	errs := make([]BatchErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BatchErrorItem{
			EntryID: e.EntryID,
			Message: e.Err.Error(),
		}
	}

	return BatchPublishResponse{
		Published: published,
		Errors:    errs,
		Total:     len(result.Published) + len(result.Errors),
		Succeeded: len(result.Published),
		Failed:    len(result.Errors),
	}
}
