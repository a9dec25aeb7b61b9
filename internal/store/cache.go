package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheTTL bounds how long a solve result stays cached. Results are pure
// functions of (dictionary, hand), so the TTL only limits memory, not
// staleness.
const cacheTTL = 24 * time.Hour

// Cache stores solve results in Redis keyed by the dictionary checksum and
// the canonical (sorted) hand. A nil *Cache is valid and caches nothing,
// so the server runs fine without Redis configured.
type Cache struct {
	client *redis.Client
}

// New connects to Redis at the given URL.
func New(redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func solveKey(dictChecksum uint64, hand string) string {
	return fmt.Sprintf("peeler:solve:%x:%s", dictChecksum, hand)
}

// GetSolve fetches a cached solve result into out. It returns false on a
// miss or when the cache is not configured.
func (c *Cache) GetSolve(ctx context.Context, dictChecksum uint64, hand string, out interface{}) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, solveKey(dictChecksum, hand)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// PutSolve stores a solve result. Failures are ignored; the cache is an
// optimization, never a source of truth.
func (c *Cache) PutSolve(ctx context.Context, dictChecksum uint64, hand string, result interface{}) {
	if c == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	c.client.Set(ctx, solveKey(dictChecksum, hand), data, cacheTTL)
}
