// Package store routes lead persistence to the active remote backend and
// falls back to the local cache whenever that backend misbehaves. Callers
// never see a storage error: the only visible effect of an outage is that
// results come from the cache.
package store

import (
	"context"
	"log"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/cache"
)

// Backend is one remote persistence target for leads. Exactly one is active
// per process, chosen at configuration load.
type Backend interface {
	GetLeads(ctx context.Context) ([]entity.Lead, error)
	// AddLead may substitute a server-assigned id for the client one.
	AddLead(ctx context.Context, lead *entity.Lead) (*entity.Lead, error)
	UpdateLead(ctx context.Context, lead *entity.Lead) error
	DeleteLead(ctx context.Context, id string) error
}

type Router struct {
	backend Backend // nil means cache-only mode
	name    string
	cache   *cache.Store
}

// NewRouter wires the active backend (nil for cache-only) over the fallback
// cache. name is used only for logging.
func NewRouter(backend Backend, name string, cacheStore *cache.Store) *Router {
	if backend == nil {
		name = "none"
	}
	return &Router{backend: backend, name: name, cache: cacheStore}
}

// BackendName reports the active backend, for health reporting.
func (r *Router) BackendName() string {
	return r.name
}

func (r *Router) degraded(op string, err error) {
	log.Printf("⚠️ [store] %s backend failed during %s, using local cache: %v", r.name, op, err)
}

// GetLeads returns every lead, newest first. Falls back to the cached list
// (or the built-in seed list when the cache is empty). Never returns an
// error to callers; a broken cache yields the seed list.
func (r *Router) GetLeads(ctx context.Context) []entity.Lead {
	if r.backend != nil {
		leads, err := r.backend.GetLeads(ctx)
		if err == nil {
			return leads
		}
		r.degraded("list", err)
	}

	leads, err := r.cache.Leads()
	if err != nil {
		log.Printf("⚠️ [store] cache read failed: %v", err)
		return entity.SeedLeads()
	}
	return leads
}

// SaveLead persists a new lead. On the remote path the backend may hand back
// a server-assigned id; on the fallback path the client id is kept and the
// lead is prepended to the cached list.
func (r *Router) SaveLead(ctx context.Context, lead *entity.Lead) *entity.Lead {
	if r.backend != nil {
		saved, err := r.backend.AddLead(ctx, lead)
		if err == nil {
			return saved
		}
		r.degraded("save", err)
	}

	if err := r.cache.PrependLead(*lead); err != nil {
		log.Printf("⚠️ [store] cache write failed: %v", err)
	}
	return lead
}

// UpdateLead applies a full-lead update and returns the refreshed list.
// After a remote write the list is re-fetched from the backend so callers
// always see authoritative state rather than a locally patched guess; only
// in degraded mode is the cached list patched in place.
func (r *Router) UpdateLead(ctx context.Context, lead *entity.Lead) []entity.Lead {
	if r.backend != nil {
		if err := r.backend.UpdateLead(ctx, lead); err != nil {
			r.degraded("update", err)
		} else if leads, err := r.backend.GetLeads(ctx); err == nil {
			return leads
		} else {
			r.degraded("update refetch", err)
		}
	}

	leads, err := r.cache.PatchLead(*lead)
	if err != nil {
		log.Printf("⚠️ [store] cache patch failed: %v", err)
		return entity.SeedLeads()
	}
	return leads
}

// DeleteLead removes a lead and returns the refreshed list, with the same
// remote-then-refetch / local-filter split as UpdateLead.
func (r *Router) DeleteLead(ctx context.Context, id string) []entity.Lead {
	if r.backend != nil {
		if err := r.backend.DeleteLead(ctx, id); err != nil {
			r.degraded("delete", err)
		} else if leads, err := r.backend.GetLeads(ctx); err == nil {
			return leads
		} else {
			r.degraded("delete refetch", err)
		}
	}

	leads, err := r.cache.RemoveLead(id)
	if err != nil {
		log.Printf("⚠️ [store] cache delete failed: %v", err)
		return entity.SeedLeads()
	}
	return leads
}
