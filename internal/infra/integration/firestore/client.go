// Package firestore is a thin REST client for the document-store leads
// backend. The service itself is managed; only the document codec and the
// four collection operations live here.
package firestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dthstore/dthstore-api/internal/entity"
)

const collection = "leads"

type Client struct {
	baseURL   string
	projectID string
	apiKey    string
	http      *http.Client
}

func NewClient(projectID, apiKey string) *Client {
	return &Client{
		baseURL:   "https://firestore.googleapis.com/v1",
		projectID: projectID,
		apiKey:    apiKey,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL exists for tests pointed at a fake endpoint.
func NewClientWithBaseURL(baseURL, projectID, apiKey string) *Client {
	c := NewClient(projectID, apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) collectionPath() string {
	return fmt.Sprintf("/projects/%s/databases/(default)/documents/%s",
		c.projectID, collection)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if query == nil {
		query = url.Values{}
	}
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("firestore request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("firestore status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("firestore bad response: %w", err)
		}
	}
	return nil
}

// GetLeads lists the collection ordered by createdAt descending.
func (c *Client) GetLeads(ctx context.Context) ([]entity.Lead, error) {
	query := url.Values{}
	query.Set("orderBy", "createdAt desc")
	query.Set("pageSize", "300")

	var resp listResponse
	if err := c.do(ctx, http.MethodGet, c.collectionPath(), query, nil, &resp); err != nil {
		return nil, err
	}

	leads := make([]entity.Lead, 0, len(resp.Documents))
	for _, doc := range resp.Documents {
		leads = append(leads, leadFromDocument(doc))
	}
	return leads, nil
}

// AddLead creates a document; the store assigns the id, which replaces the
// client-generated one on the returned lead.
func (c *Client) AddLead(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	var created Document
	doc := Document{Fields: leadToFields(lead)}
	if err := c.do(ctx, http.MethodPost, c.collectionPath(), nil, doc, &created); err != nil {
		return nil, err
	}

	saved := leadFromDocument(created)
	return &saved, nil
}

func (c *Client) UpdateLead(ctx context.Context, lead *entity.Lead) error {
	doc := Document{Fields: leadToFields(lead)}
	path := c.collectionPath() + "/" + lead.ID
	return c.do(ctx, http.MethodPatch, path, nil, doc, nil)
}

func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.collectionPath()+"/"+id, nil, nil, nil)
}

// --- document codec ---

// The document carries every Lead attribute except id, which lives in the
// document name.
func leadToFields(lead *entity.Lead) map[string]Value {
	fields := map[string]Value{
		"name":        strVal(lead.Name),
		"mobile":      strVal(lead.Mobile),
		"location":    strVal(lead.Location),
		"serviceType": strVal(string(lead.ServiceType)),
		"operator":    strVal(string(lead.Operator)),
		"status":      strVal(string(lead.Status)),
		"source":      strVal(string(lead.Source)),
		"createdAt":   intVal(strconv.FormatInt(lead.CreatedAt, 10)),
	}

	if lead.OrderID != "" {
		fields["orderId"] = strVal(lead.OrderID)
	}
	if lead.UserID != "" {
		fields["userId"] = strVal(lead.UserID)
	}
	if lead.FollowUpDate != 0 {
		fields["followUpDate"] = intVal(strconv.FormatInt(lead.FollowUpDate, 10))
	}
	if len(lead.Notes) > 0 {
		values := make([]Value, 0, len(lead.Notes))
		for _, note := range lead.Notes {
			values = append(values, Value{MapValue: &MapValue{Fields: map[string]Value{
				"id":        strVal(note.ID),
				"text":      strVal(note.Text),
				"createdAt": intVal(strconv.FormatInt(note.CreatedAt, 10)),
				"createdBy": strVal(note.CreatedBy),
			}}})
		}
		fields["notes"] = Value{ArrayValue: &ArrayValue{Values: values}}
	}

	return fields
}

func leadFromDocument(doc Document) entity.Lead {
	f := doc.Fields
	lead := entity.Lead{
		ID:          documentID(doc.Name),
		Name:        f["name"].str(),
		Mobile:      f["mobile"].str(),
		Location:    f["location"].str(),
		ServiceType: entity.ServiceType(f["serviceType"].str()),
		Operator:    entity.Operator(f["operator"].str()),
		Status:      entity.LeadStatus(f["status"].str()),
		Source:      entity.LeadSource(f["source"].str()),
		OrderID:     f["orderId"].str(),
		UserID:      f["userId"].str(),
	}
	lead.CreatedAt, _ = strconv.ParseInt(f["createdAt"].intStr(), 10, 64)
	lead.FollowUpDate, _ = strconv.ParseInt(f["followUpDate"].intStr(), 10, 64)

	if notes := f["notes"]; notes.ArrayValue != nil {
		for _, v := range notes.ArrayValue.Values {
			if v.MapValue == nil {
				continue
			}
			nf := v.MapValue.Fields
			note := entity.LeadNote{
				ID:        nf["id"].str(),
				Text:      nf["text"].str(),
				CreatedBy: nf["createdBy"].str(),
			}
			note.CreatedAt, _ = strconv.ParseInt(nf["createdAt"].intStr(), 10, 64)
			lead.Notes = append(lead.Notes, note)
		}
	}

	return lead
}

func documentID(name string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
