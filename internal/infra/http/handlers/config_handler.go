package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/notify"
	"github.com/dthstore/dthstore-api/internal/infra/store"
)

// ConfigHandler serves both admin-editable configs: the public site content
// (hero slides, nav, contact details) and the notification settings.
type ConfigHandler struct {
	catalog  *store.Catalog
	settings *notify.CachedConfig
}

func NewConfigHandler(catalog *store.Catalog, settings *notify.CachedConfig) *ConfigHandler {
	return &ConfigHandler{catalog: catalog, settings: settings}
}

type SiteConfigResponse struct {
	Success bool              `json:"success"`
	Config  entity.SiteConfig `json:"config"`
}

func (h *ConfigHandler) GetSiteConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.catalog.SiteConfig(r.Context())
	writeJSON(w, http.StatusOK, SiteConfigResponse{Success: true, Config: cfg})
}

func (h *ConfigHandler) UpdateSiteConfig(w http.ResponseWriter, r *http.Request) {
	var cfg entity.SiteConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	h.catalog.SaveSiteConfig(r.Context(), &cfg)
	writeJSON(w, http.StatusOK, SiteConfigResponse{Success: true, Config: cfg})
}

type NotificationConfigResponse struct {
	Success bool                      `json:"success"`
	Config  entity.NotificationConfig `json:"config"`
}

func (h *ConfigHandler) GetNotificationConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NotificationConfigResponse{Success: true, Config: h.settings.Current()})
}

// UpdateNotificationConfig persists new settings. They take effect on the
// next fan-out; in-flight deliveries finish under the old config.
func (h *ConfigHandler) UpdateNotificationConfig(w http.ResponseWriter, r *http.Request) {
	var cfg entity.NotificationConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	if err := h.settings.Update(cfg); err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Success: false, Message: "failed to save settings"})
		return
	}

	writeJSON(w, http.StatusOK, NotificationConfigResponse{Success: true, Config: cfg})
}
