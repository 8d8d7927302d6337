package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankingBack/internal/models"
)

func newTestCache(t *testing.T, ttl time.Duration) (*UserCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewUserCache(rdb, ttl), mr
}

func TestUserKey(t *testing.T) {
	if got := userKey(42); got != "user:42" {
		t.Fatalf("expected user:42, got %s", got)
	}
}

func TestNewUserCacheDefaultTTL(t *testing.T) {
	c := NewUserCache(redis.NewClient(&redis.Options{}), 0)
	if c.ttl != defaultUserTTL {
		t.Fatalf("expected %v, got %v", defaultUserTTL, c.ttl)
	}

	c = NewUserCache(redis.NewClient(&redis.Options{}), time.Minute)
	if c.ttl != time.Minute {
		t.Fatalf("expected %v, got %v", time.Minute, c.ttl)
	}
}

func TestUserCacheGetMiss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	user, ok, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, models.User{}, user)
}

func TestUserCacheSetThenGet(t *testing.T) {
	c, mr := newTestCache(t, 5*time.Minute)
	alice := models.User{UserID: 42, Username: "alice"}

	require.NoError(t, c.Set(context.Background(), alice))

	user, ok, err := c.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, alice, user)

	assert.True(t, mr.Exists("user:42"))
	assert.Equal(t, 5*time.Minute, mr.TTL("user:42"))
}

func TestUserCacheEntryExpires(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, c.Set(context.Background(), models.User{UserID: 1, Username: "bob"}))

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserCacheCorruptValue(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("user:5", "not json"))

	_, ok, err := c.Get(context.Background(), 5)
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "decode cached user 5")

	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestUserCacheServerDown(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, ok, err := c.Get(context.Background(), 1)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(context.Background(), models.User{UserID: 1}))
}
