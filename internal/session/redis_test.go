package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/portal-gateway/internal/domain"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	srv, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	rdb := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisStore(rdb, time.Hour), srv
}

func TestRedisStore_SaveLoadClear(t *testing.T) {
	s, _ := newTestRedisStore(t)
	ctx := context.Background()
	id := domain.Identity{ID: "u1", Name: "Jane Doe", Email: "jane@x.com", Role: domain.RolePatient}

	require.NoError(t, s.Save(ctx, "sid-1", id, "tok-1"))

	sess, err := s.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, id, sess.Identity)
	assert.Equal(t, "tok-1", sess.Token)

	require.NoError(t, s.Clear(ctx, "sid-1"))
	sess, err = s.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, sess.Authenticated())
}

func TestRedisStore_LoadMalformedRecord_Anonymous(t *testing.T) {
	s, srv := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, srv.Set("sess:sid-1", "not-json"))

	sess, err := s.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Token)
	assert.Empty(t, sess.Identity.ID)
}

func TestRedisStore_LoadHalfRecord_Anonymous(t *testing.T) {
	s, srv := newTestRedisStore(t)
	ctx := context.Background()

	// A record that somehow lost its identity must not leak a bare token.
	require.NoError(t, srv.Set("sess:sid-1", `{"token":"tok-1"}`))

	sess, err := s.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.Token)
}

func TestRedisStore_SaveRejectsHalfSessions(t *testing.T) {
	s, _ := newTestRedisStore(t)
	ctx := context.Background()

	err := s.Save(ctx, "sid-1", domain.Identity{}, "tok")
	assert.True(t, domain.Is(err, "invalid_field"))

	err = s.Save(ctx, "sid-1", domain.Identity{ID: "u1"}, "")
	assert.True(t, domain.Is(err, "invalid_field"))
}

func TestRedisStore_RecordExpires(t *testing.T) {
	s, srv := newTestRedisStore(t)
	ctx := context.Background()
	id := domain.Identity{ID: "u1", Role: domain.RoleProvider}

	require.NoError(t, s.Save(ctx, "sid-1", id, "tok"))
	srv.FastForward(2 * time.Hour)

	sess, err := s.Load(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, sess.Authenticated())
}

func TestRedisStore_ClearAbsent_NoError(t *testing.T) {
	s, _ := newTestRedisStore(t)
	assert.NoError(t, s.Clear(context.Background(), "missing"))
}
