package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"academy/internal/shared/logger"
)

const ruleLockKeyPrefix = "academy:rulelock:"

// RuleLock serializes executions of the same rule across processes with a
// Redis SET NX lock. When Redis is not configured the constructor returns
// nil and callers run unlocked; a single-process deployment does not need
// the lock.
type RuleLock struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewRuleLock creates a RuleLock, or nil when client is nil.
func NewRuleLock(client *redis.Client, ttl time.Duration, log logger.Interface) *RuleLock {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RuleLock{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

// TryLock attempts to take the lock for one rule. The release function
// deletes the key; the TTL bounds lock lifetime if the process dies first.
func (l *RuleLock) TryLock(ctx context.Context, ruleID uint) (func(), bool, error) {
	key := fmt.Sprintf("%s%d", ruleLockKeyPrefix, ruleID)

	ok, err := l.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire rule lock: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		if err := l.client.Del(context.Background(), key).Err(); err != nil {
			l.logger.Warnw("failed to release rule lock, TTL will expire it", "key", key, "error", err)
		}
	}
	return release, true, nil
}

// NewRedisClient builds a client from configuration and verifies the
// connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
