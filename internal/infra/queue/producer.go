package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadgenPayload is one Facebook leadgen event as received by the webhook.
// Facebook only delivers identifiers; the lead details stay behind the
// Graph API, so the worker stores a placeholder for manual follow-up.
type LeadgenPayload struct {
	LeadgenID   string          `json:"leadgen_id"`
	PageID      string          `json:"page_id"`
	FormID      string          `json:"form_id"`
	CreatedTime int64           `json:"created_time"`
	Raw         json.RawMessage `json:"raw,omitempty"`
}

type ProducerInterface interface {
	PublishLeadgen(ctx context.Context, payload LeadgenPayload) error
}

type Producer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *Producer {
	return &Producer{Conn: conn, Ch: ch}
}

func (p *Producer) PublishLeadgen(ctx context.Context, payload LeadgenPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
