package notify

import (
	"log"
	"sync"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/cache"
)

// CachedConfig is the ConfigProvider backed by the local cache. Settings are
// read once at startup; Update swaps the in-memory copy and persists, so the
// reload contract is "takes effect on the next fan-out".
type CachedConfig struct {
	mu    sync.RWMutex
	cfg   entity.NotificationConfig
	cache *cache.Store
}

func LoadConfig(cacheStore *cache.Store) *CachedConfig {
	cfg := entity.DefaultNotificationConfig()
	found, err := cacheStore.Get(cache.KeyNotificationConfig, &cfg)
	if err != nil {
		log.Printf("⚠️ [notify] stored settings unreadable, using defaults: %v", err)
	}
	if !found {
		cfg = entity.DefaultNotificationConfig()
	}
	return &CachedConfig{cfg: cfg, cache: cacheStore}
}

func (p *CachedConfig) Current() entity.NotificationConfig {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

// Update persists the new settings and makes them current.
func (p *CachedConfig) Update(cfg entity.NotificationConfig) error {
	if err := p.cache.Set(cache.KeyNotificationConfig, cfg); err != nil {
		return err
	}

	p.mu.Lock()
	p.cfg = cfg
	p.mu.Unlock()
	return nil
}
