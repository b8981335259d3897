package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dthstore/dthstore-api/internal/entity"
)

// ManageLeadsUseCase backs the admin dashboard: list, status changes, notes,
// follow-ups and deletes. Update and Delete hand back the refreshed full
// list so the dashboard always renders authoritative state.
type ManageLeadsUseCase struct {
	Store LeadStore
}

func NewManageLeadsUseCase(store LeadStore) *ManageLeadsUseCase {
	return &ManageLeadsUseCase{Store: store}
}

func (uc *ManageLeadsUseCase) List(ctx context.Context) []entity.Lead {
	return uc.Store.GetLeads(ctx)
}

// Update applies a full-lead update. Status transitions are unconstrained
// (the dashboard allows any-to-any), but the first transition to Installed
// mints an order id; once set it never changes.
func (uc *ManageLeadsUseCase) Update(ctx context.Context, lead entity.Lead) ([]entity.Lead, error) {
	if lead.ID == "" {
		return nil, &DomainError{Code: "MISSING_ID", Message: "lead id is required"}
	}
	if !lead.OperatorValid() {
		return nil, &DomainError{Code: "INVALID_OPERATOR", Message: "operator is not available for the selected service"}
	}

	if lead.Status == entity.StatusInstalled && lead.OrderID == "" {
		lead.OrderID = NewOrderID()
	}

	return uc.Store.UpdateLead(ctx, &lead), nil
}

// AddNote stamps a note with its author and time and saves the lead.
func (uc *ManageLeadsUseCase) AddNote(ctx context.Context, leadID, text, author string) ([]entity.Lead, error) {
	if text == "" {
		return nil, &DomainError{Code: "EMPTY_NOTE", Message: "note text is required"}
	}

	lead, err := uc.find(ctx, leadID)
	if err != nil {
		return nil, err
	}

	lead.AddNote(text, author)
	return uc.Store.UpdateLead(ctx, lead), nil
}

// ScheduleFollowUp sets (or clears, with zero) the follow-up timestamp.
func (uc *ManageLeadsUseCase) ScheduleFollowUp(ctx context.Context, leadID string, when int64) ([]entity.Lead, error) {
	lead, err := uc.find(ctx, leadID)
	if err != nil {
		return nil, err
	}

	lead.FollowUpDate = when
	return uc.Store.UpdateLead(ctx, lead), nil
}

func (uc *ManageLeadsUseCase) Delete(ctx context.Context, id string) []entity.Lead {
	return uc.Store.DeleteLead(ctx, id)
}

func (uc *ManageLeadsUseCase) find(ctx context.Context, id string) (*entity.Lead, error) {
	for _, lead := range uc.Store.GetLeads(ctx) {
		if lead.ID == id {
			l := lead
			return &l, nil
		}
	}
	return nil, &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found: " + id}
}

// NewOrderID mints an order identifier from the trailing digits of the
// current unix-millis clock, the format the dashboard has always shown.
func NewOrderID() string {
	return fmt.Sprintf("ORD-%06d", time.Now().UnixMilli()%1000000)
}
