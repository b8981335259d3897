package handlers

import (
	"net/http"

	"github.com/dthstore/dthstore-api/internal/infra/http/middleware"
	"github.com/dthstore/dthstore-api/internal/infra/integration/bridge"
	"github.com/dthstore/dthstore-api/internal/infra/notify"
)

// WhatsAppHandler proxies session state and the pairing QR from the bridge,
// so the dashboard never talks to the bridge (and its API key) directly.
type WhatsAppHandler struct {
	settings *notify.CachedConfig
}

func NewWhatsAppHandler(settings *notify.CachedConfig) *WhatsAppHandler {
	return &WhatsAppHandler{settings: settings}
}

// client builds a bridge client from the live settings; the admin can repoint
// the bridge URL without a restart.
func (h *WhatsAppHandler) client() *bridge.Client {
	cfg := h.settings.Current()
	if cfg.WhatsAppAPIURL == "" {
		return nil
	}
	return bridge.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppAPIKey, cfg.WhatsAppSessionID)
}

func (h *WhatsAppHandler) Status(w http.ResponseWriter, r *http.Request) {
	client := h.client()
	if client == nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Success: false, Message: "WhatsApp bridge not configured"})
		return
	}

	state, err := client.SessionStatus(r.Context())
	if err != nil {
		middleware.RecordIntegrationError("whatsapp")
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Success: false, Message: "bridge unreachable"})
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (h *WhatsAppHandler) QR(w http.ResponseWriter, r *http.Request) {
	client := h.client()
	if client == nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Success: false, Message: "WhatsApp bridge not configured"})
		return
	}

	qr, err := client.SessionQR(r.Context())
	if err != nil {
		middleware.RecordIntegrationError("whatsapp")
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Success: false, Message: "bridge unreachable"})
		return
	}

	writeJSON(w, http.StatusOK, qr)
}
