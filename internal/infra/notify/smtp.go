package notify

import (
	"context"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/mail"
)

// SMTPChannel is the email channel's variant for deployments without a
// Web3Forms key: when the operator configured an SMTP server via env, lead
// alerts go out through it instead. With a Web3Forms key present this
// channel stands down so the admin is not mailed twice.
type SMTPChannel struct {
	sender *mail.Sender
}

func NewSMTPChannel(sender *mail.Sender) *SMTPChannel {
	return &SMTPChannel{sender: sender}
}

func (c *SMTPChannel) Name() string { return "smtp" }

func (c *SMTPChannel) Ready(cfg entity.NotificationConfig) bool {
	return cfg.EmailEnabled && cfg.AdminEmail != "" &&
		cfg.Web3FormsKey == "" && c.sender.Configured()
}

func (c *SMTPChannel) Send(_ context.Context, cfg entity.NotificationConfig, lead *entity.Lead) error {
	return c.sender.SendLeadAlert(cfg.AdminEmail, lead)
}
