package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ConsumedRegistry implements ports.ConsumedRegistry using TTL-bounded keys.
// An entry only has to outlive the window in which the wallet still reports a
// just-spent record as available, so expiry is not a correctness hazard.
//
// Marks are mirrored into an in-process set so a Redis outage degrades to
// per-process freshness instead of none.
type ConsumedRegistry struct {
	client *goredis.Client
	prefix string

	mu    sync.Mutex
	local map[string]time.Time // id -> expiry
}

// NewConsumedRegistry creates a Redis-backed consumed-record registry.
func NewConsumedRegistry(client *goredis.Client) *ConsumedRegistry {
	return &ConsumedRegistry{
		client: client,
		prefix: "consumed:",
		local:  make(map[string]time.Time),
	}
}

// Mark records the ids as consumed for the given TTL. The local mirror is
// written unconditionally; a Redis failure is still reported so the caller
// can log the degradation.
func (s *ConsumedRegistry) Mark(ctx context.Context, ids []string, ttl time.Duration) error {
	if len(ids) == 0 {
		return nil
	}

	expiry := time.Now().Add(ttl)
	s.mu.Lock()
	for _, id := range ids {
		s.local[id] = expiry
	}
	s.mu.Unlock()

	pipe := s.client.Pipeline()
	for _, id := range ids {
		pipe.Set(ctx, s.prefix+id, 1, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis mark consumed: %w", err)
	}
	return nil
}

// Consumed reports, for each queried id, whether it is known consumed. Absent
// and expired ids read as fresh. When Redis is reachable it is authoritative;
// when it is not, the lookup is answered from the in-process mirror.
func (s *ConsumedRegistry) Consumed(ctx context.Context, ids []string) (map[string]bool, error) {
	consumed := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return consumed, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.prefix + id
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		for _, id := range ids {
			consumed[id] = s.localConsumed(id)
		}
		return consumed, nil
	}
	for i, v := range values {
		consumed[ids[i]] = v != nil
	}
	return consumed, nil
}

func (s *ConsumedRegistry) localConsumed(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.local[id]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.local, id)
		return false
	}
	return true
}
