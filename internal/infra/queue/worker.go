package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dthstore/dthstore-api/internal/entity"
)

// LeadSaver is the slice of the persistence router the worker needs.
type LeadSaver interface {
	SaveLead(ctx context.Context, lead *entity.Lead) *entity.Lead
}

type Notifier interface {
	Notify(ctx context.Context, lead *entity.Lead) bool
}

// Worker drains the leadgen queue: each event becomes a placeholder lead
// (source Facebook) and goes through the normal notification fan-out.
type Worker struct {
	Channel  *amqp.Channel
	Store    LeadSaver
	Notifier Notifier
}

func NewWorker(ch *amqp.Channel, store LeadSaver, notifier Notifier) *Worker {
	return &Worker{
		Channel:  ch,
		Store:    store,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [worker] failed to register consumer: %s", err)
	}

	go func() {
		for d := range msgs {
			log.Printf("📥 [worker] leadgen event received")

			var payload LeadgenPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [worker] malformed payload, rejecting: %s", err)
				// Poison message: no requeue, let the DLX keep it.
				d.Nack(false, false)
				continue
			}

			if err := w.processLeadgen(context.Background(), payload); err != nil {
				log.Printf("❌ [worker] failed to ingest leadgen %s: %s", payload.LeadgenID, err)
				d.Nack(false, false)
				continue
			}

			log.Printf("✅ [worker] leadgen %s stored", payload.LeadgenID)
			d.Ack(false)
		}
	}()
}

func (w *Worker) processLeadgen(ctx context.Context, payload LeadgenPayload) error {
	if payload.LeadgenID == "" {
		return fmt.Errorf("missing leadgen_id")
	}

	createdAt := payload.CreatedTime * 1000
	if createdAt == 0 {
		createdAt = time.Now().UnixMilli()
	}

	lead := &entity.Lead{
		ID:          "fb_" + payload.LeadgenID,
		Name:        fmt.Sprintf("Facebook Lead (%s)", payload.LeadgenID),
		Mobile:      "Check FB",
		ServiceType: entity.ServiceDTH,
		Operator:    entity.OpTataPlay,
		Status:      entity.StatusNew,
		Source:      entity.SourceFacebook,
		CreatedAt:   createdAt,
	}

	saved := w.Store.SaveLead(ctx, lead)

	if w.Notifier != nil {
		w.Notifier.Notify(ctx, saved)
	}

	return nil
}
