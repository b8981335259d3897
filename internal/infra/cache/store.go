package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dthstore/dthstore-api/internal/entity"
)

// Storage keys. These mirror the browser localStorage keys of the first
// deployment so exported blobs stay importable.
const (
	KeyLeads              = "dthstore_leads_v2"
	KeyProducts           = "dthstore_products_v1"
	KeySiteConfig         = "dthstore_site_config_v1"
	KeyNotificationConfig = "dthstore_notification_config_v1"
	KeyUserSession        = "dthstore_user_session"
)

// Store is the local fallback cache: a sqlite file holding JSON blobs under
// fixed string keys. It is the source of truth whenever the configured
// remote backend is unreachable.
//
// Read-modify-write cycles are serialized with a mutex; callers never see a
// torn list even under concurrent handlers.
type Store struct {
	mu   sync.Mutex
	conn *sql.DB
}

func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate cache: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	_, err := s.conn.Exec(schema)
	return err
}

func (s *Store) Close() error {
	return s.conn.Close()
}

// Get unmarshals the blob stored under key into out. Returns false when the
// key is absent.
func (s *Store) Get(key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(key, out)
}

func (s *Store) get(key string, out any) (bool, error) {
	var raw string
	err := s.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("corrupt cache entry %q: %w", key, err)
	}
	return true, nil
}

// Set stores v as a JSON blob under key, replacing any previous value.
func (s *Store) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(key, v)
}

func (s *Store) set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.conn.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	return err
}

// Delete removes a key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.conn.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

// Leads returns the cached lead list, newest first. An empty cache yields
// the built-in seed list.
func (s *Store) Leads() ([]entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leads()
}

func (s *Store) leads() ([]entity.Lead, error) {
	var leads []entity.Lead
	found, err := s.get(KeyLeads, &leads)
	if err != nil {
		return nil, err
	}
	if !found {
		return entity.SeedLeads(), nil
	}
	return leads, nil
}

// PrependLead puts a new lead at the head of the cached list.
func (s *Store) PrependLead(lead entity.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads, err := s.leads()
	if err != nil {
		return err
	}
	return s.set(KeyLeads, append([]entity.Lead{lead}, leads...))
}

// PatchLead replaces the cached lead with a matching id and returns the
// refreshed list. Unknown ids leave the list untouched.
func (s *Store) PatchLead(lead entity.Lead) ([]entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads, err := s.leads()
	if err != nil {
		return nil, err
	}
	for i := range leads {
		if leads[i].ID == lead.ID {
			leads[i] = lead
		}
	}
	if err := s.set(KeyLeads, leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// RemoveLead filters the cached list by id and returns the refreshed list.
func (s *Store) RemoveLead(id string) ([]entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads, err := s.leads()
	if err != nil {
		return nil, err
	}
	filtered := leads[:0]
	for _, l := range leads {
		if l.ID != id {
			filtered = append(filtered, l)
		}
	}
	if err := s.set(KeyLeads, filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}
