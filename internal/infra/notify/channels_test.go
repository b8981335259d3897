package notify_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/integration/web3forms"
	"github.com/dthstore/dthstore-api/internal/infra/notify"
)

func TestEmailChannelReadiness(t *testing.T) {
	ch := notify.NewEmailChannel(web3forms.NewClient())

	assert.False(t, ch.Ready(entity.NotificationConfig{}))
	assert.False(t, ch.Ready(entity.NotificationConfig{
		EmailEnabled: true, AdminEmail: "admin@dthstore.shop",
	}))
	assert.True(t, ch.Ready(entity.NotificationConfig{
		EmailEnabled: true, AdminEmail: "admin@dthstore.shop", Web3FormsKey: "key-123",
	}))
}

func TestEmailChannelSubmitsLead(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/submit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	ch := notify.NewEmailChannel(web3forms.NewClientWithBaseURL(srv.URL))
	cfg := entity.NotificationConfig{
		EmailEnabled: true, AdminEmail: "admin@dthstore.shop", Web3FormsKey: "key-123",
	}

	err := ch.Send(context.Background(), cfg, &entity.Lead{
		Name:        "Rahul Sharma",
		Mobile:      "9876543210",
		Location:    "Mumbai",
		ServiceType: entity.ServiceDTH,
		Operator:    entity.OpTataPlay,
		Source:      entity.SourceWebsite,
	})

	assert.NoError(t, err)
	assert.Equal(t, "key-123", received["access_key"])
	assert.Equal(t, "🔔 New Lead: Rahul Sharma - DTH Connection", received["subject"])
	assert.Equal(t, "9876543210", received["mobile"])
}

func TestEmailChannelRejectedKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "invalid access key"})
	}))
	defer srv.Close()

	ch := notify.NewEmailChannel(web3forms.NewClientWithBaseURL(srv.URL))
	cfg := entity.NotificationConfig{
		EmailEnabled: true, AdminEmail: "admin@dthstore.shop", Web3FormsKey: "bad",
	}

	err := ch.Send(context.Background(), cfg, &entity.Lead{Name: "X", Mobile: "9876543210"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid access key")
}

func TestTelegramChannelReadiness(t *testing.T) {
	ch := notify.NewTelegramChannel()

	assert.False(t, ch.Ready(entity.NotificationConfig{TelegramEnabled: true}))
	assert.True(t, ch.Ready(entity.NotificationConfig{
		TelegramEnabled: true, TelegramBotToken: "123:abc", TelegramChatID: "42",
	}))
}

func TestTelegramChannelSendsAlert(t *testing.T) {
	var sentText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		switch {
		case r.URL.Path == "/bot123:abc/getMe":
			fmt.Fprint(w, `{"ok":true,"result":{"id":123,"is_bot":true,"first_name":"dthbot","user_name":"dthbot"}}`)
		case r.URL.Path == "/bot123:abc/sendMessage":
			sentText = r.FormValue("text")
			fmt.Fprint(w, `{"ok":true,"result":{"message_id":1}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ch := notify.NewTelegramChannelWithEndpoint(srv.URL + "/bot%s/%s")
	cfg := entity.NotificationConfig{
		TelegramEnabled: true, TelegramBotToken: "123:abc", TelegramChatID: "42",
	}

	err := ch.Send(context.Background(), cfg, &entity.Lead{
		Name:        "Priya Verma",
		Mobile:      "9988776655",
		Location:    "Delhi",
		ServiceType: entity.ServiceBroadband,
		Operator:    entity.OpJioFiber,
		Source:      entity.SourceWhatsApp,
		CreatedAt:   1700000000000,
	})

	assert.NoError(t, err)
	assert.Contains(t, sentText, "New Lead Alert")
	assert.Contains(t, sentText, "Priya Verma")
	assert.Contains(t, sentText, "wa.me/919988776655")
}

func TestWhatsAppChannelReadiness(t *testing.T) {
	ch := notify.NewWhatsAppChannel()

	assert.False(t, ch.Ready(entity.NotificationConfig{WhatsAppEnabled: true}))
	assert.True(t, ch.Ready(entity.NotificationConfig{
		WhatsAppEnabled:     true,
		WhatsAppAPIURL:      "http://localhost:3000",
		WhatsAppSessionID:   "DTHSTORE",
		WhatsAppAdminNumber: "919876543210",
	}))
}

func TestDesktopChannelRequiresRedis(t *testing.T) {
	ch := notify.NewDesktopChannel(nil)

	assert.False(t, ch.Ready(entity.NotificationConfig{BrowserNotificationsEnabled: true}))
}
