package store

import (
	"context"
	"log"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/cache"
	"github.com/dthstore/dthstore-api/internal/infra/database"
)

// Catalog serves products and the CMS site config with the same
// availability policy as the lead router: try postgres, fall back to the
// cache, never error to the caller.
type Catalog struct {
	products *database.ProductRepository // nil in cache-only mode
	site     *database.SiteConfigRepository
	cache    *cache.Store
}

func NewCatalog(products *database.ProductRepository, site *database.SiteConfigRepository, cacheStore *cache.Store) *Catalog {
	return &Catalog{products: products, site: site, cache: cacheStore}
}

func (c *Catalog) Products(ctx context.Context) []entity.Product {
	if c.products != nil {
		products, err := c.products.List(ctx)
		if err == nil {
			return products
		}
		log.Printf("⚠️ [catalog] product list failed, using local cache: %v", err)
	}

	var products []entity.Product
	if _, err := c.cache.Get(cache.KeyProducts, &products); err != nil {
		log.Printf("⚠️ [catalog] cache read failed: %v", err)
	}
	return products
}

func (c *Catalog) SaveProduct(ctx context.Context, p *entity.Product) []entity.Product {
	if c.products != nil {
		err := c.products.Create(ctx, p)
		if err == nil {
			return c.Products(ctx)
		}
		log.Printf("⚠️ [catalog] product save failed, using local cache: %v", err)
	}

	var products []entity.Product
	_, _ = c.cache.Get(cache.KeyProducts, &products)
	products = append([]entity.Product{*p}, products...)
	if err := c.cache.Set(cache.KeyProducts, products); err != nil {
		log.Printf("⚠️ [catalog] cache write failed: %v", err)
	}
	return products
}

func (c *Catalog) DeleteProduct(ctx context.Context, id string) []entity.Product {
	if c.products != nil {
		err := c.products.Delete(ctx, id)
		if err == nil {
			return c.Products(ctx)
		}
		log.Printf("⚠️ [catalog] product delete failed, using local cache: %v", err)
	}

	var products []entity.Product
	_, _ = c.cache.Get(cache.KeyProducts, &products)
	filtered := products[:0]
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if err := c.cache.Set(cache.KeyProducts, filtered); err != nil {
		log.Printf("⚠️ [catalog] cache write failed: %v", err)
	}
	return filtered
}

func (c *Catalog) SiteConfig(ctx context.Context) entity.SiteConfig {
	if c.site != nil {
		cfg, err := c.site.Get(ctx)
		if err == nil {
			return *cfg
		}
		log.Printf("⚠️ [catalog] site config fetch failed, using local cache: %v", err)
	}

	var cfg entity.SiteConfig
	found, err := c.cache.Get(cache.KeySiteConfig, &cfg)
	if err != nil {
		log.Printf("⚠️ [catalog] cache read failed: %v", err)
	}
	if !found {
		return entity.DefaultSiteConfig()
	}
	return cfg
}

func (c *Catalog) SaveSiteConfig(ctx context.Context, cfg *entity.SiteConfig) {
	if c.site != nil {
		err := c.site.Save(ctx, cfg)
		if err == nil {
			return
		}
		log.Printf("⚠️ [catalog] site config save failed, using local cache: %v", err)
	}

	if err := c.cache.Set(cache.KeySiteConfig, cfg); err != nil {
		log.Printf("⚠️ [catalog] cache write failed: %v", err)
	}
}
