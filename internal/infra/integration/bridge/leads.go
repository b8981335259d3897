package bridge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dthstore/dthstore-api/internal/entity"
)

// Leads backend variant: the bridge stores leads in its own flat file and
// serves them under /leads with the {success, leads} envelope.

type leadsEnvelope struct {
	Success bool          `json:"success"`
	Leads   []entity.Lead `json:"leads"`
	Message string        `json:"message,omitempty"`
}

type leadEnvelope struct {
	Success bool        `json:"success"`
	Lead    entity.Lead `json:"lead"`
	Message string      `json:"message,omitempty"`
}

func (c *Client) GetLeads(ctx context.Context) ([]entity.Lead, error) {
	var env leadsEnvelope
	if err := c.do(ctx, http.MethodGet, "/leads", nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("bridge leads fetch rejected: %s", env.Message)
	}
	return env.Leads, nil
}

func (c *Client) AddLead(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	var env leadEnvelope
	if err := c.do(ctx, http.MethodPost, "/leads", lead, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("bridge lead save rejected: %s", env.Message)
	}
	return &env.Lead, nil
}

func (c *Client) UpdateLead(ctx context.Context, lead *entity.Lead) error {
	var env StatusResponse
	if err := c.do(ctx, http.MethodPut, "/leads/"+lead.ID, lead, &env); err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("bridge lead update rejected: %s", env.Message)
	}
	return nil
}

func (c *Client) DeleteLead(ctx context.Context, id string) error {
	var env StatusResponse
	if err := c.do(ctx, http.MethodDelete, "/leads/"+id, nil, &env); err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("bridge lead delete rejected: %s", env.Message)
	}
	return nil
}
