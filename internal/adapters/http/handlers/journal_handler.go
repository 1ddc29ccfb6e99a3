package handlers

import (
	"net/http"

	"github.com/mbbx6spp/straitjacket/internal/adapters/http/dto"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

// JournalHandler handles HTTP requests for journal entry operations.
type JournalHandler struct {
	service ports.JournalService
}

// NewJournalHandler creates a new JournalHandler with the given service port.
func NewJournalHandler(service ports.JournalService) *JournalHandler {
	return &JournalHandler{service: service}
}

// ListEntries handles GET /api/v1/entries.
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEntryFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entries, err := h.service.ListEntries(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntryListResponse(entries))
}

// CreateEntry handles POST /api/v1/entries.
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	entry := decodeEntryCreate(w, r)
	if entry == nil {
		return
	}

	created, err := h.service.CreateEntry(r.Context(), entry)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToEntryResponse(created))
}

// GetEntry handles GET /api/v1/entries/{id}.
func (h *JournalHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entry, err := h.service.GetEntry(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntryResponse(entry))
}

// UpdateEntry handles PUT /api/v1/entries/{id}. The request body carries the
// full replacement content for the entry.
func (h *JournalHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entry := decodeEntryUpdate(w, r)
	if entry == nil {
		return
	}

	updated, err := h.service.UpdateEntry(r.Context(), id, entry)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntryResponse(updated))
}

// DeleteEntry handles DELETE /api/v1/entries/{id}.
func (h *JournalHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteEntry(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PublishEntry handles POST /api/v1/entries/{id}/publish.
func (h *JournalHandler) PublishEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	published, err := h.service.PublishEntry(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntryResponse(published))
}

// RetractEntry handles POST /api/v1/entries/{id}/retract.
func (h *JournalHandler) RetractEntry(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	retracted, err := h.service.RetractEntry(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntryResponse(retracted))
}

// PublishBatch handles POST /api/v1/entries/publish/batch. Per-entry
// failures do not fail the request; they are reported in the response body
// alongside the entries that published cleanly.
func (h *JournalHandler) PublishBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.PublishBatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.PublishBatch(r.Context(), req.EntryIDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBatchPublishResponse(result))
}
