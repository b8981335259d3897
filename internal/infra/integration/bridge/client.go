// Package bridge talks to the self-hosted WhatsApp session API, a thin HTTP
// wrapper over a browser-automation client. It serves double duty: outbound
// notification channel and, in one deployment variant, a leads backend.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL   string
	apiKey    string
	sessionID string
	http      *http.Client
}

func NewClient(baseURL, apiKey, sessionID string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		sessionID: sessionID,
		http:      &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bridge request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("bridge status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("bridge bad response: %w", err)
		}
	}
	return nil
}

// SendMessage delivers text to a chat. Numbers are E.164 without the plus,
// suffixed with the @c.us user domain.
func (c *Client) SendMessage(ctx context.Context, number, message string) error {
	payload := SendMessageRequest{
		ChatID:  fmt.Sprintf("%s@c.us", number),
		Message: message,
	}
	var result StatusResponse
	err := c.do(ctx, http.MethodPost, "/client/sendMessage/"+c.sessionID, payload, &result)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("bridge rejected message: %s", result.Message)
	}
	return nil
}

// SessionStatus reports the device-link state (CONNECTED when paired).
func (c *Client) SessionStatus(ctx context.Context) (*SessionState, error) {
	var state SessionState
	if err := c.do(ctx, http.MethodGet, "/session/status/"+c.sessionID, nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SessionQR fetches the pairing code for device linking.
func (c *Client) SessionQR(ctx context.Context) (*QRResponse, error) {
	var qr QRResponse
	if err := c.do(ctx, http.MethodGet, "/session/qr/"+c.sessionID, nil, &qr); err != nil {
		return nil, err
	}
	return &qr, nil
}
