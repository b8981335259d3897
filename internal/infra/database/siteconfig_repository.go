package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/dthstore/dthstore-api/internal/entity"
)

// SiteConfigRepository stores the single CMS config row as a JSON blob,
// the same shape the cache keeps.
type SiteConfigRepository struct {
	DB *sql.DB
}

func NewSiteConfigRepository(db *sql.DB) *SiteConfigRepository {
	return &SiteConfigRepository{DB: db}
}

func (r *SiteConfigRepository) Get(ctx context.Context) (*entity.SiteConfig, error) {
	var raw string
	err := r.DB.QueryRowContext(ctx,
		`SELECT config_json FROM site_config WHERE id = 1`).Scan(&raw)
	if err != nil {
		return nil, err
	}

	var cfg entity.SiteConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *SiteConfigRepository) Save(ctx context.Context, cfg *entity.SiteConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO site_config (id, config_json) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET config_json = $1`,
		string(raw),
	)
	return err
}
