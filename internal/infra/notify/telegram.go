package notify

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dthstore/dthstore-api/internal/entity"
)

// TelegramChannel posts the lead alert to a bot chat. The bot client is
// rebuilt per send because the token lives in mutable admin settings.
type TelegramChannel struct {
	endpoint string
	client   *http.Client
}

func NewTelegramChannel() *TelegramChannel {
	return &TelegramChannel{
		endpoint: tgbotapi.APIEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// NewTelegramChannelWithEndpoint exists for tests pointed at a fake API.
func NewTelegramChannelWithEndpoint(endpoint string) *TelegramChannel {
	ch := NewTelegramChannel()
	ch.endpoint = endpoint
	return ch
}

func (c *TelegramChannel) Name() string { return "telegram" }

func (c *TelegramChannel) Ready(cfg entity.NotificationConfig) bool {
	return cfg.TelegramReady()
}

func (c *TelegramChannel) Send(ctx context.Context, cfg entity.NotificationConfig, lead *entity.Lead) error {
	api, err := tgbotapi.NewBotAPIWithClient(cfg.TelegramBotToken, c.endpoint, c.client)
	if err != nil {
		return fmt.Errorf("telegram auth failed: %w", err)
	}

	text := fmt.Sprintf(`🔔 *New Lead Alert!*

👤 *Name:* %s
📱 *Mobile:* %s
🏠 *Location:* %s
📺 *Service:* %s
🎯 *Operator:* %s
🌐 *Source:* %s
📅 *Time:* %s

[📞 Call Now](tel:+91%s)
[💬 WhatsApp](https://wa.me/91%s)`,
		lead.Name, lead.Mobile, lead.Location, lead.ServiceType,
		lead.Operator, lead.Source, leadTime(lead), lead.Mobile, lead.Mobile)

	msg := buildMessage(cfg.TelegramChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true

	if _, err := api.Send(msg); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}

// buildMessage accepts both numeric chat ids and @channel usernames, the two
// forms the settings screen allows.
func buildMessage(chatID, text string) tgbotapi.MessageConfig {
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return tgbotapi.NewMessage(id, text)
	}
	return tgbotapi.NewMessageToChannel(chatID, text)
}
