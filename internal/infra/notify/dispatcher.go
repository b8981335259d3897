package notify

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/http/middleware"
)

type Dispatcher struct {
	provider ConfigProvider
	channels []Channel
}

func NewDispatcher(provider ConfigProvider, channels ...Channel) *Dispatcher {
	return &Dispatcher{provider: provider, channels: channels}
}

type outcome struct {
	name      string
	delivered bool
}

// Notify fans the lead out to every ready channel and waits for all attempts
// to settle; one channel's failure never cancels or delays another's attempt
// beyond the wait itself. Returns true when there was nothing to do or at
// least one channel delivered; false only when every attempt failed.
//
// Lead capture must never stall on a provider, so callers on the capture
// path invoke this from a goroutine and only log the result.
func (d *Dispatcher) Notify(ctx context.Context, lead *entity.Lead) bool {
	cfg := d.provider.Current()

	var eligible []Channel
	for _, ch := range d.channels {
		if !ch.Ready(cfg) {
			log.Printf("[notify] %s not configured - skipping", ch.Name())
			continue
		}
		eligible = append(eligible, ch)
	}

	if len(eligible) == 0 {
		log.Printf("[notify] no channels configured for lead %s", lead.ID)
		return true
	}

	results := make([]outcome, len(eligible))
	var wg sync.WaitGroup
	for i, ch := range eligible {
		wg.Add(1)
		go func(i int, ch Channel) {
			defer wg.Done()
			err := ch.Send(ctx, cfg, lead)
			if err != nil {
				log.Printf("❌ [notify] %s delivery failed for lead %s: %v", ch.Name(), lead.ID, err)
				middleware.RecordNotification(ch.Name(), "failed")
				results[i] = outcome{name: ch.Name(), delivered: false}
				return
			}
			middleware.RecordNotification(ch.Name(), "sent")
			results[i] = outcome{name: ch.Name(), delivered: true}
		}(i, ch)
	}
	wg.Wait()

	delivered := 0
	for _, res := range results {
		if res.delivered {
			delivered++
		}
	}
	log.Printf("[notify] sent %d/%d notifications for lead %s", delivered, len(eligible), lead.ID)

	return delivered > 0
}

// Test pushes a sample lead through one named channel so the admin can verify
// credentials from the settings screen.
func (d *Dispatcher) Test(ctx context.Context, name string) error {
	cfg := d.provider.Current()

	for _, ch := range d.channels {
		if ch.Name() != name {
			continue
		}
		if !ch.Ready(cfg) {
			return fmt.Errorf("channel %s is not configured", name)
		}
		return ch.Send(ctx, cfg, testLead())
	}
	return fmt.Errorf("unknown channel %s", name)
}

func testLead() *entity.Lead {
	return &entity.Lead{
		ID:          "test",
		Name:        "Test Notification",
		Mobile:      "9876543210",
		Location:    "Test City",
		ServiceType: entity.ServiceDTH,
		Operator:    entity.OpTataPlay,
		Status:      entity.StatusNew,
		Source:      entity.SourceManual,
		CreatedAt:   time.Now().UnixMilli(),
	}
}
