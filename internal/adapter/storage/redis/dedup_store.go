package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DedupStore implements ports.EventDedupStore using Redis SET NX.
// It is a fast-path filter for duplicate webhook deliveries; the repository
// compare-and-set remains the authoritative guard.
type DedupStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewDedupStore creates a Redis-backed dedup store. Claims expire after ttl
// so a crashed handler cannot block a resource id forever.
func NewDedupStore(client *goredis.Client, ttl time.Duration) *DedupStore {
	return &DedupStore{
		client: client,
		prefix: "webhook:event:",
		ttl:    ttl,
	}
}

// Claim atomically marks the resource id as being processed.
// Returns true if this caller won the claim, false if already claimed.
func (s *DedupStore) Claim(ctx context.Context, resourceID string) (bool, error) {
	key := s.prefix + resourceID
	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  s.ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, another delivery holds the claim.
			return false, nil
		}
		return false, fmt.Errorf("redis event claim: %w", err)
	}
	return result == "OK", nil
}

// Release frees the claim so a redelivery can retry.
func (s *DedupStore) Release(ctx context.Context, resourceID string) error {
	if err := s.client.Del(ctx, s.prefix+resourceID).Err(); err != nil {
		return fmt.Errorf("redis event release: %w", err)
	}
	return nil
}
