package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dthstore/dthstore-api/internal/entity"
)

// PubSubChannel is the Redis channel the admin dashboard's event stream
// subscribes to.
const PubSubChannel = "dthstore:notifications"

// DesktopEvent is what the dashboard renders as a browser notification.
type DesktopEvent struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	LeadID string `json:"leadId"`
}

// DesktopChannel publishes to Redis; connected dashboards pick the event up
// over the SSE stream and raise the browser notification client-side.
type DesktopChannel struct {
	rdb *redis.Client
}

func NewDesktopChannel(rdb *redis.Client) *DesktopChannel {
	return &DesktopChannel{rdb: rdb}
}

func (c *DesktopChannel) Name() string { return "desktop" }

func (c *DesktopChannel) Ready(cfg entity.NotificationConfig) bool {
	return cfg.BrowserNotificationsEnabled && c.rdb != nil
}

func (c *DesktopChannel) Send(ctx context.Context, _ entity.NotificationConfig, lead *entity.Lead) error {
	event := DesktopEvent{
		Title:  "🔔 New Lead Received!",
		Body:   fmt.Sprintf("%s - %s\n%s", lead.Name, lead.Mobile, lead.ServiceType),
		LeadID: lead.ID,
	}

	raw, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := c.rdb.Publish(ctx, PubSubChannel, raw).Err(); err != nil {
		return fmt.Errorf("desktop publish failed: %w", err)
	}
	return nil
}
