package dto_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mbbx6spp/straitjacket/internal/adapters/http/dto"
	"github.com/mbbx6spp/straitjacket/internal/domain"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func publishedEntry() domain.Entry {
	at := testTime
	return domain.Entry{
		ID:          42,
		Title:       "Release notes",
		Body:        "Shipped v2.",
		Tags:        []string{"release"},
		Status:      domain.StatusPublished,
		DispatchID:  "d-9",
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
		PublishedAt: &at,
	}
}

func TestToEntryResponse(t *testing.T) {
	t.Parallel()

	e := publishedEntry()
	got := dto.ToEntryResponse(&e)

	if got.ID != 42 {
		t.Errorf("ID = %d, want 42", got.ID)
	}
	if got.Title != "Release notes" {
		t.Errorf("Title = %q, want %q", got.Title, "Release notes")
	}
	if got.Status != "published" {
		t.Errorf("Status = %q, want %q", got.Status, "published")
	}
	if got.DispatchID != "d-9" {
		t.Errorf("DispatchID = %q, want %q", got.DispatchID, "d-9")
	}
	if got.PublishedAt != "2026-03-01T12:00:00Z" {
		t.Errorf("PublishedAt = %q, want %q", got.PublishedAt, "2026-03-01T12:00:00Z")
	}
	if got.CreatedAt != "2026-03-01T12:00:00Z" {
		t.Errorf("CreatedAt = %q, want %q", got.CreatedAt, "2026-03-01T12:00:00Z")
	}
}

func TestToEntryResponse_Draft(t *testing.T) {
	t.Parallel()

	e := domain.Entry{
		ID:        7,
		Title:     "Draft thoughts",
		Body:      "Not ready yet.",
		Status:    domain.StatusDraft,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}

	got := dto.ToEntryResponse(&e)

	if got.Status != "draft" {
		t.Errorf("Status = %q, want %q", got.Status, "draft")
	}
	if got.DispatchID != "" {
		t.Errorf("DispatchID = %q, want empty", got.DispatchID)
	}
	if got.PublishedAt != "" {
		t.Errorf("PublishedAt = %q, want empty", got.PublishedAt)
	}
}

func TestToEntryListResponse(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{publishedEntry(), publishedEntry()}
	got := dto.ToEntryListResponse(entries)

	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
	if len(got.Entries) != 2 {
		t.Errorf("len(Entries) = %d, want 2", len(got.Entries))
	}
}

func TestToEntryListResponse_Empty(t *testing.T) {
	t.Parallel()

	got := dto.ToEntryListResponse(nil)

	if got.Count != 0 {
		t.Errorf("Count = %d, want 0", got.Count)
	}
	if got.Entries == nil {
		t.Error("Entries = nil, want empty slice")
	}
}

func TestToBatchPublishResponse(t *testing.T) {
	t.Parallel()

	result := &ports.BatchResult{
		Published: []domain.Entry{publishedEntry()},
		Errors: []ports.BatchError{
			{EntryID: 7, Err: errors.New("entry 7 is published: conflict")},
			{EntryID: 9, Err: domain.ErrNotFound},
		},
	}

	got := dto.ToBatchPublishResponse(result)

	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}
	if got.Succeeded != 1 {
		t.Errorf("Succeeded = %d, want 1", got.Succeeded)
	}
	if got.Failed != 2 {
		t.Errorf("Failed = %d, want 2", got.Failed)
	}
	if len(got.Published) != 1 || got.Published[0].ID != 42 {
		t.Errorf("Published = %v, want one entry with ID 42", got.Published)
	}
	if got.Errors[0].EntryID != 7 {
		t.Errorf("Errors[0].EntryID = %d, want 7", got.Errors[0].EntryID)
	}
	if got.Errors[1].Message != "not found" {
		t.Errorf("Errors[1].Message = %q, want %q", got.Errors[1].Message, "not found")
	}
}
