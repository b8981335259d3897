package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/http/middleware"
)

type CaptureLeadUseCase struct {
	Store    LeadStore
	Notifier Notifier
}

func NewCaptureLeadUseCase(store LeadStore, notifier Notifier) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{Store: store, Notifier: notifier}
}

// Execute validates, persists and fans out a new lead. Persistence happens
// before this returns; the notification fan-out runs in the background so a
// slow or dead provider can never stall the visitor's submission.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*entity.Lead, error) {
	validationErrors := ValidateCaptureLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	source := entity.LeadSource(input.Source)
	switch source {
	case entity.SourceWebsite, entity.SourceWhatsApp, entity.SourceManual, entity.SourceFacebook:
	default:
		source = entity.SourceWebsite
	}

	lead := &entity.Lead{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Mobile:      input.Mobile,
		Location:    input.Location,
		ServiceType: entity.ServiceType(input.ServiceType),
		Operator:    entity.Operator(input.Operator),
		Status:      entity.StatusNew,
		Source:      source,
		CreatedAt:   time.Now().UnixMilli(),
		UserID:      input.UserID,
	}

	saved := uc.Store.SaveLead(ctx, lead)
	middleware.RecordLeadCaptured(string(saved.Source))

	if uc.Notifier != nil {
		// Detached from the request context on purpose: the visitor's
		// connection closing must not cancel in-flight deliveries.
		go uc.Notifier.Notify(context.Background(), saved)
	}

	return saved, nil
}
