// Package notify implements the lead notification fan-out: every enabled and
// fully configured channel gets one best-effort delivery attempt per lead,
// concurrently and independently. Nothing here ever propagates an error to
// the capture flow.
package notify

import (
	"context"
	"time"

	"github.com/dthstore/dthstore-api/internal/entity"
)

// Channel is one outbound notification integration.
type Channel interface {
	Name() string
	// Ready reports whether the channel is enabled and carries every
	// credential it needs. A half-configured channel is skipped, never an
	// error.
	Ready(cfg entity.NotificationConfig) bool
	Send(ctx context.Context, cfg entity.NotificationConfig, lead *entity.Lead) error
}

// ConfigProvider hands out the current notification configuration. The
// dispatcher reads it once per fan-out, so settings saved from the admin
// screen apply to the next lead without a restart.
type ConfigProvider interface {
	Current() entity.NotificationConfig
}

var ist = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.Local
	}
	return loc
}

func leadTime(lead *entity.Lead) string {
	return time.UnixMilli(lead.CreatedAt).In(ist).Format("02 Jan 2006, 3:04 PM")
}
