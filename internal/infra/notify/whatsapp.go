package notify

import (
	"context"
	"fmt"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/integration/bridge"
)

// WhatsAppChannel messages the admin number through the self-hosted bridge.
// The client is rebuilt per send; the bridge URL and key are admin settings.
type WhatsAppChannel struct{}

func NewWhatsAppChannel() *WhatsAppChannel { return &WhatsAppChannel{} }

func (c *WhatsAppChannel) Name() string { return "whatsapp" }

func (c *WhatsAppChannel) Ready(cfg entity.NotificationConfig) bool {
	return cfg.WhatsAppReady()
}

func (c *WhatsAppChannel) Send(ctx context.Context, cfg entity.NotificationConfig, lead *entity.Lead) error {
	message := fmt.Sprintf(`🔔 *New Lead - DTH Store*

👤 %s
📱 %s
🏠 %s
📺 %s - %s
🌐 %s
⏰ %s`,
		lead.Name, lead.Mobile, lead.Location, lead.ServiceType,
		lead.Operator, lead.Source, leadTime(lead))

	client := bridge.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppAPIKey, cfg.WhatsAppSessionID)
	return client.SendMessage(ctx, cfg.WhatsAppAdminNumber, message)
}
