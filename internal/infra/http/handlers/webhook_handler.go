package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/dthstore/dthstore-api/internal/infra/http/middleware"
	"github.com/dthstore/dthstore-api/internal/infra/queue"
)

// WebhookHandler receives Facebook leadgen pings. Events go straight onto the
// queue; the worker turns them into placeholder leads so a webhook burst
// never blocks on the database.
type WebhookHandler struct {
	VerifyToken string
	Producer    queue.ProducerInterface
}

func NewWebhookHandler(verifyToken string, producer queue.ProducerInterface) *WebhookHandler {
	return &WebhookHandler{VerifyToken: verifyToken, Producer: producer}
}

// Verify answers Facebook's subscription handshake.
func (h *WebhookHandler) Verify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("hub.mode") == "subscribe" && q.Get("hub.verify_token") == h.VerifyToken {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(q.Get("hub.challenge")))
		return
	}
	w.WriteHeader(http.StatusForbidden)
}

type leadgenEvent struct {
	Entry []struct {
		Changes []struct {
			Field string `json:"field"`
			Value struct {
				LeadgenID   string `json:"leadgen_id"`
				PageID      string `json:"page_id"`
				FormID      string `json:"form_id"`
				CreatedTime int64  `json:"created_time"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	// No broker, no ingest. 503 keeps Facebook retrying until it is back.
	if h.Producer == nil {
		http.Error(w, "Ingest unavailable", http.StatusServiceUnavailable)
		return
	}

	var event leadgenEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad JSON", 400)
		return
	}

	for _, entry := range event.Entry {
		for _, change := range entry.Changes {
			if change.Field != "leadgen" {
				continue
			}

			payload := queue.LeadgenPayload{
				LeadgenID:   change.Value.LeadgenID,
				PageID:      change.Value.PageID,
				FormID:      change.Value.FormID,
				CreatedTime: change.Value.CreatedTime,
			}

			if err := h.Producer.PublishLeadgen(r.Context(), payload); err != nil {
				log.Printf("❌ [webhook] failed to queue leadgen %s: %v", payload.LeadgenID, err)
				middleware.RecordIntegrationError("facebook")
				w.WriteHeader(500)
				return
			}
			log.Printf("📥 [webhook] queued leadgen %s", payload.LeadgenID)
		}
	}

	w.WriteHeader(200)
}
