// Package cache implements redis-backed caching adapters.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
)

// ledgerCache implements adapter.LedgerCache on redis. One key per user and
// accounting mode; Invalidate drops both modes so a write never leaves a
// stale view behind.
type ledgerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLedgerCache creates a new redis ledger cache instance.
func NewLedgerCache(client *redis.Client, ttl time.Duration) adapter.LedgerCache {
	return &ledgerCache{client: client, ttl: ttl}
}

func ledgerKey(userID string, mode entity.AccountingMode) string {
	return fmt.Sprintf("ledger:%s:%s", userID, mode)
}

// Get returns the cached payload for the user and mode, with a hit flag.
func (c *ledgerCache) Get(ctx context.Context, userID string, mode entity.AccountingMode) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, ledgerKey(userID, mode)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores the payload for the user and mode.
func (c *ledgerCache) Set(ctx context.Context, userID string, mode entity.AccountingMode, payload []byte) error {
	return c.client.Set(ctx, ledgerKey(userID, mode), payload, c.ttl).Err()
}

// Invalidate drops every cached mode for the user.
func (c *ledgerCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx,
		ledgerKey(userID, entity.AccountingModeCompetence),
		ledgerKey(userID, entity.AccountingModeCash),
	).Err()
}
