package notify_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/notify"
)

type staticConfig struct {
	cfg entity.NotificationConfig
}

func (s staticConfig) Current() entity.NotificationConfig { return s.cfg }

// fakeChannel is controllable per test: readiness, failure, delay.
type fakeChannel struct {
	name  string
	ready bool
	fail  bool
	delay time.Duration
	calls atomic.Int32
}

func (c *fakeChannel) Name() string { return c.name }

func (c *fakeChannel) Ready(cfg entity.NotificationConfig) bool { return c.ready }

func (c *fakeChannel) Send(ctx context.Context, cfg entity.NotificationConfig, lead *entity.Lead) error {
	c.calls.Add(1)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	if c.fail {
		return errors.New("provider down")
	}
	return nil
}

func fanoutLead() *entity.Lead {
	return &entity.Lead{
		ID:          "lead-1",
		Name:        "Rahul Sharma",
		Mobile:      "9876543210",
		ServiceType: entity.ServiceDTH,
		Operator:    entity.OpTataPlay,
	}
}

func TestNotifySendsToEveryReadyChannel(t *testing.T) {
	a := &fakeChannel{name: "email", ready: true}
	b := &fakeChannel{name: "telegram", ready: true}
	c := &fakeChannel{name: "whatsapp", ready: false}

	d := notify.NewDispatcher(staticConfig{}, a, b, c)

	ok := d.Notify(context.Background(), fanoutLead())

	assert.True(t, ok)
	assert.Equal(t, int32(1), a.calls.Load())
	assert.Equal(t, int32(1), b.calls.Load())
	assert.Equal(t, int32(0), c.calls.Load())
}

func TestNotifyNoChannelsConfiguredIsNotAFailure(t *testing.T) {
	a := &fakeChannel{name: "email", ready: false}
	b := &fakeChannel{name: "telegram", ready: false}

	d := notify.NewDispatcher(staticConfig{}, a, b)

	ok := d.Notify(context.Background(), fanoutLead())

	assert.True(t, ok)
	assert.Equal(t, int32(0), a.calls.Load())
	assert.Equal(t, int32(0), b.calls.Load())
}

func TestNotifyPartialFailureStillDelivers(t *testing.T) {
	a := &fakeChannel{name: "email", ready: true, fail: true}
	b := &fakeChannel{name: "telegram", ready: true}

	d := notify.NewDispatcher(staticConfig{}, a, b)

	ok := d.Notify(context.Background(), fanoutLead())

	assert.True(t, ok)
	assert.Equal(t, int32(1), a.calls.Load())
	assert.Equal(t, int32(1), b.calls.Load())
}

func TestNotifyAllChannelsFailing(t *testing.T) {
	a := &fakeChannel{name: "email", ready: true, fail: true}
	b := &fakeChannel{name: "telegram", ready: true, fail: true}

	d := notify.NewDispatcher(staticConfig{}, a, b)

	ok := d.Notify(context.Background(), fanoutLead())

	assert.False(t, ok)
}

func TestNotifyWaitsForSlowChannels(t *testing.T) {
	slow := &fakeChannel{name: "email", ready: true, delay: 150 * time.Millisecond}
	fast := &fakeChannel{name: "telegram", ready: true, fail: true}

	d := notify.NewDispatcher(staticConfig{}, slow, fast)

	start := time.Now()
	ok := d.Notify(context.Background(), fanoutLead())
	elapsed := time.Since(start)

	// The fast channel failed instantly, but the verdict waits for the slow
	// one, which succeeds.
	assert.True(t, ok)
	assert.GreaterOrEqual(t, elapsed, 150*time.Millisecond)
}

func TestTestSendUnknownChannel(t *testing.T) {
	d := notify.NewDispatcher(staticConfig{}, &fakeChannel{name: "email", ready: true})

	err := d.Test(context.Background(), "pager")

	assert.Error(t, err)
}

func TestTestSendUnconfiguredChannel(t *testing.T) {
	ch := &fakeChannel{name: "email", ready: false}
	d := notify.NewDispatcher(staticConfig{}, ch)

	err := d.Test(context.Background(), "email")

	assert.Error(t, err)
	assert.Equal(t, int32(0), ch.calls.Load())
}

func TestTestSendDelivers(t *testing.T) {
	ch := &fakeChannel{name: "telegram", ready: true}
	d := notify.NewDispatcher(staticConfig{}, ch)

	err := d.Test(context.Background(), "telegram")

	assert.NoError(t, err)
	assert.Equal(t, int32(1), ch.calls.Load())
}
