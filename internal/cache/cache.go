// Package cache holds the redis read-path cache helpers. Caching is
// optional: every helper tolerates a nil client so the server runs
// unchanged without redis configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds staleness for cached read responses that are also
// invalidated explicitly on mutation.
const DefaultTTL = 10 * time.Minute

// TransactionsKey caches the user's full transaction list.
func TransactionsKey(userID uint) string {
	return fmt.Sprintf("transactions:user:%d", userID)
}

// SummaryKey caches the all-time dashboard summary. Range-filtered
// summaries bypass the cache.
func SummaryKey(userID uint) string {
	return fmt.Sprintf("dashboard:summary:user:%d", userID)
}

// Get retrieves a value and unmarshals it into dest, reporting whether
// the key existed.
func Get(ctx context.Context, rdb *redis.Client, key string, dest interface{}) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	val, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// Set stores a JSON-marshaled value with a TTL.
func Set(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	if rdb == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}

// Delete removes keys, used to invalidate read caches after a
// mutation.
func Delete(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if rdb == nil || len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}
