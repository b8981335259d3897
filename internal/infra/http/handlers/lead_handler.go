package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/usecase"
)

type LeadHandler struct {
	capture     *usecase.CaptureLeadUseCase
	manage      *usecase.ManageLeadsUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(capture *usecase.CaptureLeadUseCase, manage *usecase.ManageLeadsUseCase) *LeadHandler {
	return &LeadHandler{
		capture:     capture,
		manage:      manage,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

type CaptureLeadResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Lead    *entity.Lead `json:"lead,omitempty"`
}

type LeadListResponse struct {
	Success bool          `json:"success"`
	Leads   []entity.Lead `json:"leads"`
}

// Capture is the public storefront endpoint. Rate limited per IP so a form
// bot cannot flood the notification channels.
func (h *LeadHandler) Capture(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, CaptureLeadResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	lead, err := h.capture.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CaptureLeadResponse{Success: true, Lead: lead})
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads := h.manage.List(r.Context())
	writeJSON(w, http.StatusOK, LeadListResponse{Success: true, Leads: leads})
}

// Update replaces a lead wholesale and returns the refreshed list.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var lead entity.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}
	lead.ID = chi.URLParam(r, "id")

	leads, err := h.manage.Update(r.Context(), lead)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LeadListResponse{Success: true, Leads: leads})
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	leads := h.manage.Delete(r.Context(), chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, LeadListResponse{Success: true, Leads: leads})
}

type AddNoteRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (h *LeadHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	leads, err := h.manage.AddNote(r.Context(), chi.URLParam(r, "id"), req.Text, req.Author)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LeadListResponse{Success: true, Leads: leads})
}

type FollowUpRequest struct {
	FollowUpDate int64 `json:"followUpDate"`
}

func (h *LeadHandler) ScheduleFollowUp(w http.ResponseWriter, r *http.Request) {
	var req FollowUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	leads, err := h.manage.ScheduleFollowUp(r.Context(), chi.URLParam(r, "id"), req.FollowUpDate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LeadListResponse{Success: true, Leads: leads})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
