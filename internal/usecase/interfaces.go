package usecase

import (
	"context"

	"github.com/dthstore/dthstore-api/internal/entity"
)

// LeadStore is the persistence router. All operations are infallible from
// the caller's point of view: backend failures degrade to the local cache
// inside the store.
type LeadStore interface {
	GetLeads(ctx context.Context) []entity.Lead
	SaveLead(ctx context.Context, lead *entity.Lead) *entity.Lead
	UpdateLead(ctx context.Context, lead *entity.Lead) []entity.Lead
	DeleteLead(ctx context.Context, id string) []entity.Lead
}

// Notifier fans a lead out to the configured channels. Best-effort; the
// return value is informational only.
type Notifier interface {
	Notify(ctx context.Context, lead *entity.Lead) bool
}

type CaptureLeadInput struct {
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Location    string `json:"location"`
	ServiceType string `json:"serviceType"`
	Operator    string `json:"operator"`
	Source      string `json:"source,omitempty"`
	UserID      string `json:"userId,omitempty"`
}
