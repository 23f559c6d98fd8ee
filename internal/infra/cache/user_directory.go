package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"payment-intention-service/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const userKeyPrefix = "payment-intention:user:"

// RedisClient is the subset of *redis.Client used by the cache.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// UserDirectory caches positive existence answers from the wrapped directory.
// Negative answers are never cached so a newly registered user is visible immediately.
// Redis failures fall back to the wrapped directory.
type UserDirectory struct {
	next   shared.UserDirectory
	client RedisClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewUserDirectory(next shared.UserDirectory, client RedisClient, ttl time.Duration, logger *slog.Logger) *UserDirectory {
	return &UserDirectory{next: next, client: client, ttl: ttl, logger: logger}
}

func (d *UserDirectory) Exists(ctx context.Context, userID int64) (bool, error) {
	key := userKey(userID)

	_, err := d.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		return true, nil
	case !errors.Is(err, redis.Nil):
		d.logger.WarnContext(ctx, "user cache read failed", "user_id", userID, "error", err.Error())
	}

	exists, err := d.next.Exists(ctx, userID)
	if err != nil || !exists {
		return exists, err
	}

	if err := d.client.Set(ctx, key, "1", d.ttl).Err(); err != nil {
		d.logger.WarnContext(ctx, "user cache write failed", "user_id", userID, "error", err.Error())
	}
	return true, nil
}

func userKey(userID int64) string {
	return userKeyPrefix + strconv.FormatInt(userID, 10)
}
