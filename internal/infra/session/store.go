// Package session keeps admin dashboard sessions in Redis. Tokens are opaque
// UUIDs; the payload is the demo user record. Sessions expire server side so
// a stolen token dies on its own.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dthstore/dthstore-api/internal/entity"
)

const (
	keyPrefix  = "dthstore:session:"
	DefaultTTL = 12 * time.Hour
)

var ErrNotFound = errors.New("session not found")

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// Create issues a token for the user and stores the session under it.
func (s *Store) Create(ctx context.Context, user *entity.User) (string, error) {
	token := uuid.New().String()

	raw, err := json.Marshal(user)
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, keyPrefix+token, raw, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Lookup resolves a token back to its user and refreshes the TTL, so an
// active dashboard never logs out mid-shift.
func (s *Store) Lookup(ctx context.Context, token string) (*entity.User, error) {
	raw, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("corrupt session: %w", err)
	}

	s.client.Expire(ctx, keyPrefix+token, s.ttl)
	return &user, nil
}

// Destroy removes the session. Unknown tokens are not an error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}
