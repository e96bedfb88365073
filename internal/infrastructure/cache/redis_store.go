package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"SecNewsScanner/internal/ports"
)

const (
	usageKeyPrefix = "secnews:usage:tokens:"
	seenKeyPrefix  = "secnews:seen:"

	// usageTTL outlives the month it counts so late runs still see it.
	usageTTL = 40 * 24 * time.Hour
	seenTTL  = 72 * time.Hour
)

// RedisStore keeps monthly summarization token counters and a short-lived
// set of recently seen article IDs so back-to-back runs skip DB lookups.
type RedisStore struct {
	client *redis.Client
}

var _ ports.UsageStore = (*RedisStore)(nil)

// NewRedisStore wires a go-redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// MonthlyTokens returns the tokens spent in the month containing t.
func (s *RedisStore) MonthlyTokens(ctx context.Context, month time.Time) (int, error) {
	if s.client == nil {
		return 0, nil
	}
	val, err := s.client.Get(ctx, usageKey(month)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get monthly tokens: %w", err)
	}
	return val, nil
}

// AddTokens increments the month counter by tokens.
func (s *RedisStore) AddTokens(ctx context.Context, month time.Time, tokens int) error {
	if s.client == nil || tokens <= 0 {
		return nil
	}
	key := usageKey(month)
	if err := s.client.IncrBy(ctx, key, int64(tokens)).Err(); err != nil {
		return fmt.Errorf("incr monthly tokens: %w", err)
	}
	if err := s.client.Expire(ctx, key, usageTTL).Err(); err != nil {
		return fmt.Errorf("expire usage key: %w", err)
	}
	return nil
}

// SeenRecently reports whether the article ID was marked within the TTL.
func (s *RedisStore) SeenRecently(ctx context.Context, articleID string) (bool, error) {
	if s.client == nil {
		return false, nil
	}
	n, err := s.client.Exists(ctx, seenKeyPrefix+articleID).Result()
	if err != nil {
		return false, fmt.Errorf("check seen: %w", err)
	}
	return n > 0, nil
}

// MarkSeen records the article ID for the seen TTL window.
func (s *RedisStore) MarkSeen(ctx context.Context, articleID string) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Set(ctx, seenKeyPrefix+articleID, 1, seenTTL).Err(); err != nil {
		return fmt.Errorf("mark seen: %w", err)
	}
	return nil
}

func usageKey(month time.Time) string {
	return usageKeyPrefix + month.UTC().Format("2006-01")
}
