package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/http/handlers"
	"github.com/dthstore/dthstore-api/internal/usecase"
)

// memoryStore is an in-memory usecase.LeadStore for handler tests.
type memoryStore struct {
	leads []entity.Lead
}

func (s *memoryStore) GetLeads(ctx context.Context) []entity.Lead { return s.leads }

func (s *memoryStore) SaveLead(ctx context.Context, lead *entity.Lead) *entity.Lead {
	s.leads = append([]entity.Lead{*lead}, s.leads...)
	return lead
}

func (s *memoryStore) UpdateLead(ctx context.Context, lead *entity.Lead) []entity.Lead {
	for i := range s.leads {
		if s.leads[i].ID == lead.ID {
			s.leads[i] = *lead
		}
	}
	return s.leads
}

func (s *memoryStore) DeleteLead(ctx context.Context, id string) []entity.Lead {
	filtered := s.leads[:0]
	for _, l := range s.leads {
		if l.ID != id {
			filtered = append(filtered, l)
		}
	}
	s.leads = filtered
	return s.leads
}

func newLeadRouter(store *memoryStore) chi.Router {
	captureUC := usecase.NewCaptureLeadUseCase(store, nil)
	manageUC := usecase.NewManageLeadsUseCase(store)
	h := handlers.NewLeadHandler(captureUC, manageUC)

	r := chi.NewRouter()
	r.Post("/api/leads", h.Capture)
	r.Get("/api/leads", h.List)
	r.Put("/api/leads/{id}", h.Update)
	r.Delete("/api/leads/{id}", h.Delete)
	r.Post("/api/leads/{id}/notes", h.AddNote)
	r.Put("/api/leads/{id}/followup", h.ScheduleFollowUp)
	return r
}

func TestCaptureEndpointSuccess(t *testing.T) {
	store := &memoryStore{}
	r := newLeadRouter(store)

	body := `{
		"name": "Rohit Mehta",
		"mobile": "9876543210",
		"location": "Pune",
		"serviceType": "DTH Connection",
		"operator": "Tata Play"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp handlers.CaptureLeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Lead)
	assert.NotEmpty(t, resp.Lead.ID)
	assert.Equal(t, entity.StatusNew, resp.Lead.Status)

	require.Len(t, store.leads, 1)
}

func TestCaptureEndpointValidationError(t *testing.T) {
	store := &memoryStore{}
	r := newLeadRouter(store)

	body := `{"name": "", "mobile": "12", "location": "", "serviceType": "DTH Connection", "operator": "Tata Play"}`

	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.leads)
}

func TestCaptureEndpointBadJSON(t *testing.T) {
	r := newLeadRouter(&memoryStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCaptureEndpointRateLimited(t *testing.T) {
	r := newLeadRouter(&memoryStore{})

	body := `{
		"name": "Rohit Mehta",
		"mobile": "9876543210",
		"location": "Pune",
		"serviceType": "DTH Connection",
		"operator": "Tata Play"
	}`

	var last int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewBufferString(body))
		req.Header.Set("X-Forwarded-For", "10.0.0.9")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestListEndpoint(t *testing.T) {
	store := &memoryStore{leads: entity.SeedLeads()}
	r := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.LeadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Leads, 3)
}

func TestUpdateEndpointMintsOrderID(t *testing.T) {
	store := &memoryStore{leads: []entity.Lead{{
		ID:          "lead-1",
		Name:        "Rahul Sharma",
		Mobile:      "9876543210",
		ServiceType: entity.ServiceDTH,
		Operator:    entity.OpTataPlay,
		Status:      entity.StatusNew,
	}}}
	r := newLeadRouter(store)

	body := `{
		"name": "Rahul Sharma",
		"mobile": "9876543210",
		"serviceType": "DTH Connection",
		"operator": "Tata Play",
		"status": "Installed"
	}`

	req := httptest.NewRequest(http.MethodPut, "/api/leads/lead-1", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.LeadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Leads, 1)
	assert.Contains(t, resp.Leads[0].OrderID, "ORD-")
}

func TestDeleteEndpointReturnsRefreshedList(t *testing.T) {
	store := &memoryStore{leads: []entity.Lead{{ID: "lead-1"}, {ID: "lead-2"}}}
	r := newLeadRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/leads/lead-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.LeadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Leads, 1)
	assert.Equal(t, "lead-2", resp.Leads[0].ID)
}

func TestAddNoteEndpoint(t *testing.T) {
	store := &memoryStore{leads: []entity.Lead{{
		ID:          "lead-1",
		ServiceType: entity.ServiceDTH,
		Operator:    entity.OpTataPlay,
	}}}
	r := newLeadRouter(store)

	body := `{"text": "asked for a callback", "author": "staff"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads/lead-1/notes", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.LeadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Leads[0].Notes, 1)
	assert.Equal(t, "asked for a callback", resp.Leads[0].Notes[0].Text)
}

func TestAddNoteUnknownLeadIs404(t *testing.T) {
	r := newLeadRouter(&memoryStore{})

	body := `{"text": "hello", "author": "staff"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads/ghost/notes", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFollowUpEndpoint(t *testing.T) {
	store := &memoryStore{leads: []entity.Lead{{
		ID:          "lead-1",
		ServiceType: entity.ServiceDTH,
		Operator:    entity.OpTataPlay,
	}}}
	r := newLeadRouter(store)

	body := `{"followUpDate": 1767181800000}`
	req := httptest.NewRequest(http.MethodPut, "/api/leads/lead-1/followup", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.LeadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1767181800000), resp.Leads[0].FollowUpDate)
}
