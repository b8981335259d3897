package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/session"
)

func newTestStore(t *testing.T) (*session.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return session.NewStore(client, time.Hour), mr
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	user := &entity.User{ID: "u1", Username: "admin", Name: "Super Admin", Role: entity.RoleAdmin}

	token, err := store.Create(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := store.Lookup(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestLookupUnknownToken(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.Lookup(ctx, "ghost")

	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSessionExpires(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	token, err := store.Create(ctx, &entity.User{ID: "u1", Username: "admin"})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Lookup(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestDestroyEndsSession(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	token, err := store.Create(ctx, &entity.User{ID: "u2", Username: "staff"})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Lookup(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestDestroyUnknownTokenIsNoError(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	assert.NoError(t, store.Destroy(ctx, "ghost"))
}
