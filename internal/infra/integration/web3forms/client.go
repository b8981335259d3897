package web3forms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.web3forms.com"

// Client submits transactional emails through the Web3Forms form endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL exists for tests pointed at a fake endpoint.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Submit posts a form payload. Web3Forms answers 200 with {"success":false}
// on rejected keys, so both the HTTP status and the body flag are checked.
func (c *Client) Submit(ctx context.Context, input SubmitInput) error {
	body, err := json.Marshal(input)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/submit", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("web3forms request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode != http.StatusOK {
		log.Printf("[web3forms] status %d: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("web3forms status %d", resp.StatusCode)
	}

	var result SubmitResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("web3forms bad response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("web3forms rejected: %s", result.Message)
	}

	return nil
}
