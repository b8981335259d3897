package entity

// NotificationConfig controls the lead notification fan-out. One instance per
// process, loaded from the cache at startup and mutated only through the
// admin settings endpoint.
//
// A channel fires only when its Enabled flag is set AND every credential it
// needs is non-empty. A toggled-on channel with missing credentials behaves
// as disabled; it is skipped, not an error.
type NotificationConfig struct {
	EmailEnabled bool   `json:"emailEnabled"`
	Web3FormsKey string `json:"web3formsKey"`
	AdminEmail   string `json:"adminEmail"`

	TelegramEnabled  bool   `json:"telegramEnabled"`
	TelegramBotToken string `json:"telegramBotToken"`
	TelegramChatID   string `json:"telegramChatId"`

	WhatsAppEnabled     bool   `json:"whatsappEnabled"`
	WhatsAppAPIURL      string `json:"whatsappApiUrl"`
	WhatsAppAPIKey      string `json:"whatsappApiKey"`
	WhatsAppSessionID   string `json:"whatsappSessionId"`
	WhatsAppAdminNumber string `json:"whatsappAdminNumber"`

	BrowserNotificationsEnabled bool `json:"browserNotificationsEnabled"`
}

// DefaultNotificationConfig matches the settings screen defaults: everything
// off except browser notifications, default bridge session name.
func DefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		WhatsAppSessionID:           "DTHSTORE",
		BrowserNotificationsEnabled: true,
	}
}

func (c NotificationConfig) EmailReady() bool {
	return c.EmailEnabled && c.Web3FormsKey != "" && c.AdminEmail != ""
}

func (c NotificationConfig) TelegramReady() bool {
	return c.TelegramEnabled && c.TelegramBotToken != "" && c.TelegramChatID != ""
}

func (c NotificationConfig) WhatsAppReady() bool {
	// API key is optional; the bridge only enforces it when configured.
	return c.WhatsAppEnabled && c.WhatsAppAPIURL != "" &&
		c.WhatsAppSessionID != "" && c.WhatsAppAdminNumber != ""
}
