package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

func Connect(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS leads (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		mobile         TEXT NOT NULL,
		location       TEXT,
		service_type   TEXT NOT NULL,
		operator       TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'New',
		source         TEXT NOT NULL DEFAULT 'Website',
		created_at     BIGINT NOT NULL,
		notes          TEXT,
		follow_up_date BIGINT,
		order_id       TEXT,
		user_id        TEXT
	);

	CREATE TABLE IF NOT EXISTS products (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		price          TEXT NOT NULL,
		original_price TEXT,
		type           TEXT NOT NULL,
		features       TEXT,
		image          TEXT,
		color          TEXT,
		is_best_seller BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE TABLE IF NOT EXISTS site_config (
		id          INT PRIMARY KEY,
		config_json TEXT NOT NULL
	);`

	_, err := db.Exec(schema)
	return err
}
