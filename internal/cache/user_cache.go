package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bankingBack/internal/models"
)

const defaultUserTTL = 10 * time.Minute

// UserCache stores public user profiles in Redis as JSON.
type UserCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewUserCache creates a cache; a non-positive ttl falls back to ten minutes.
func NewUserCache(rdb *redis.Client, ttl time.Duration) *UserCache {
	if ttl <= 0 {
		ttl = defaultUserTTL
	}
	return &UserCache{rdb: rdb, ttl: ttl}
}

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

func (c *UserCache) Get(ctx context.Context, id int64) (models.User, bool, error) {
	raw, err := c.rdb.Get(ctx, userKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.User{}, false, fmt.Errorf("decode cached user %d: %w", id, err)
	}
	return user, true, nil
}

func (c *UserCache) Set(ctx context.Context, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, userKey(user.UserID), raw, c.ttl).Err()
}
