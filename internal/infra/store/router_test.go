package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/cache"
	"github.com/dthstore/dthstore-api/internal/infra/store"
)

// flakyBackend fails every call until healed, then serves from memory.
type flakyBackend struct {
	failing bool
	leads   []entity.Lead
}

func (b *flakyBackend) GetLeads(ctx context.Context) ([]entity.Lead, error) {
	if b.failing {
		return nil, errors.New("connection refused")
	}
	return b.leads, nil
}

func (b *flakyBackend) AddLead(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	if b.failing {
		return nil, errors.New("connection refused")
	}
	b.leads = append([]entity.Lead{*lead}, b.leads...)
	return lead, nil
}

func (b *flakyBackend) UpdateLead(ctx context.Context, lead *entity.Lead) error {
	if b.failing {
		return errors.New("connection refused")
	}
	for i := range b.leads {
		if b.leads[i].ID == lead.ID {
			b.leads[i] = *lead
		}
	}
	return nil
}

func (b *flakyBackend) DeleteLead(ctx context.Context, id string) error {
	if b.failing {
		return errors.New("connection refused")
	}
	filtered := b.leads[:0]
	for _, l := range b.leads {
		if l.ID != id {
			filtered = append(filtered, l)
		}
	}
	b.leads = filtered
	return nil
}

func newTestCache(t *testing.T) *cache.Store {
	t.Helper()
	c, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func sampleLead(id, name string) *entity.Lead {
	return &entity.Lead{
		ID:          id,
		Name:        name,
		Mobile:      "9876543210",
		Location:    "Mumbai",
		ServiceType: entity.ServiceDTH,
		Operator:    entity.OpTataPlay,
		Status:      entity.StatusNew,
		Source:      entity.SourceWebsite,
		CreatedAt:   1700000000000,
	}
}

func TestRouterServesBackendWhenHealthy(t *testing.T) {
	ctx := context.Background()
	backend := &flakyBackend{leads: []entity.Lead{*sampleLead("r1", "Remote Lead")}}
	router := store.NewRouter(backend, "sql", newTestCache(t))

	leads := router.GetLeads(ctx)

	assert.Len(t, leads, 1)
	assert.Equal(t, "Remote Lead", leads[0].Name)
}

func TestRouterFallsBackToCacheOnBackendFailure(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)
	require.NoError(t, c.PrependLead(*sampleLead("c1", "Cached Lead")))

	backend := &flakyBackend{failing: true}
	router := store.NewRouter(backend, "sql", c)

	leads := router.GetLeads(ctx)

	// The cache was seeded with the demo list plus one prepended lead.
	assert.Equal(t, "Cached Lead", leads[0].Name)
}

func TestRouterEmptyEverythingYieldsSeedList(t *testing.T) {
	ctx := context.Background()
	router := store.NewRouter(&flakyBackend{failing: true}, "sql", newTestCache(t))

	leads := router.GetLeads(ctx)

	assert.Len(t, leads, len(entity.SeedLeads()))
	assert.Equal(t, "Rahul Sharma", leads[0].Name)
}

func TestRouterCacheOnlyMode(t *testing.T) {
	ctx := context.Background()
	router := store.NewRouter(nil, "none", newTestCache(t))

	assert.Equal(t, "none", router.BackendName())

	saved := router.SaveLead(ctx, sampleLead("l1", "Local Lead"))
	assert.Equal(t, "l1", saved.ID)

	leads := router.GetLeads(ctx)
	assert.Equal(t, "Local Lead", leads[0].Name)
}

func TestRouterSaveFallsBackAndKeepsClientID(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)
	router := store.NewRouter(&flakyBackend{failing: true}, "sql", c)

	saved := router.SaveLead(ctx, sampleLead("client-id", "Fallback Lead"))

	assert.Equal(t, "client-id", saved.ID)

	cached, err := c.Leads()
	require.NoError(t, err)
	assert.Equal(t, "client-id", cached[0].ID)
}

func TestRouterUpdateRefetchesFromBackend(t *testing.T) {
	ctx := context.Background()
	backend := &flakyBackend{leads: []entity.Lead{*sampleLead("r1", "Before")}}
	router := store.NewRouter(backend, "sql", newTestCache(t))

	lead := sampleLead("r1", "After")
	lead.Status = entity.StatusContacted

	leads := router.UpdateLead(ctx, lead)

	assert.Len(t, leads, 1)
	assert.Equal(t, "After", leads[0].Name)
	assert.Equal(t, entity.StatusContacted, leads[0].Status)
}

func TestRouterUpdatePatchesCacheWhenBackendDown(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)
	require.NoError(t, c.PrependLead(*sampleLead("c1", "Before")))

	router := store.NewRouter(&flakyBackend{failing: true}, "sql", c)

	lead := sampleLead("c1", "After")
	leads := router.UpdateLead(ctx, lead)

	assert.Equal(t, "After", leads[0].Name)
}

func TestRouterDeleteFiltersCacheWhenBackendDown(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)
	require.NoError(t, c.PrependLead(*sampleLead("c1", "Doomed")))

	router := store.NewRouter(&flakyBackend{failing: true}, "sql", c)

	leads := router.DeleteLead(ctx, "c1")

	for _, l := range leads {
		assert.NotEqual(t, "c1", l.ID)
	}
}

func TestRouterRecoversAfterOutage(t *testing.T) {
	ctx := context.Background()
	backend := &flakyBackend{failing: true}
	router := store.NewRouter(backend, "sql", newTestCache(t))

	// During the outage saves land in the cache.
	router.SaveLead(ctx, sampleLead("l1", "During Outage"))

	// Backend heals; reads go remote again without a restart.
	backend.failing = false
	backend.leads = []entity.Lead{*sampleLead("r1", "Remote Truth")}

	leads := router.GetLeads(ctx)
	assert.Len(t, leads, 1)
	assert.Equal(t, "Remote Truth", leads[0].Name)
}
