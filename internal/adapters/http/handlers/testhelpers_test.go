package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/mbbx6spp/straitjacket/internal/domain"
	"github.com/mbbx6spp/straitjacket/internal/ports"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func draftEntry() domain.Entry {
	return domain.Entry{
		ID:        1,
		Title:     "Release notes",
		Body:      "Shipped v2.",
		Tags:      []string{"release"},
		Status:    domain.StatusDraft,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func publishedEntry() domain.Entry {
	e := draftEntry()
	e.Status = domain.StatusPublished
	e.DispatchID = "d-9"
	at := testTime
	e.PublishedAt = &at
	return e
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// mockJournalService is a hand-rolled testify mock for ports.JournalService.
type mockJournalService struct {
	mock.Mock
}

func (m *mockJournalService) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	args := m.Called(ctx, filter)
	if entries, ok := args.Get(0).([]domain.Entry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJournalService) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*domain.Entry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJournalService) CreateEntry(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	args := m.Called(ctx, entry)
	if e, ok := args.Get(0).(*domain.Entry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJournalService) UpdateEntry(ctx context.Context, id int64, entry *domain.Entry) (*domain.Entry, error) {
	args := m.Called(ctx, id, entry)
	if e, ok := args.Get(0).(*domain.Entry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJournalService) DeleteEntry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockJournalService) PublishEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*domain.Entry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJournalService) RetractEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*domain.Entry); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockJournalService) PublishBatch(ctx context.Context, ids []int64) (*ports.BatchResult, error) {
	args := m.Called(ctx, ids)
	if result, ok := args.Get(0).(*ports.BatchResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

// mockHealthRegistry is a hand-rolled testify mock for ports.HealthRegistry.
type mockHealthRegistry struct {
	mock.Mock
}

func (m *mockHealthRegistry) Register(checker ports.HealthChecker) {
	m.Called(checker)
}

func (m *mockHealthRegistry) CheckAll(ctx context.Context) map[string]error {
	args := m.Called(ctx)
	if results, ok := args.Get(0).(map[string]error); ok {
		return results
	}
	return nil
}
