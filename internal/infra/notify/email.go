package notify

import (
	"context"
	"fmt"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/integration/web3forms"
)

// EmailChannel delivers the lead to the admin inbox through Web3Forms.
type EmailChannel struct {
	client *web3forms.Client
}

func NewEmailChannel(client *web3forms.Client) *EmailChannel {
	return &EmailChannel{client: client}
}

func (c *EmailChannel) Name() string { return "email" }

func (c *EmailChannel) Ready(cfg entity.NotificationConfig) bool {
	return cfg.EmailReady()
}

func (c *EmailChannel) Send(ctx context.Context, cfg entity.NotificationConfig, lead *entity.Lead) error {
	return c.client.Submit(ctx, web3forms.SubmitInput{
		AccessKey: cfg.Web3FormsKey,
		Subject:   fmt.Sprintf("🔔 New Lead: %s - %s", lead.Name, lead.ServiceType),
		FromName:  "DTH Store Website",
		Name:      lead.Name,
		Mobile:    lead.Mobile,
		Service:   string(lead.ServiceType),
		Operator:  string(lead.Operator),
		Location:  lead.Location,
		Source:    string(lead.Source),
	})
}
