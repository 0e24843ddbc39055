package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/gestor-app/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *ledgerCache) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &ledgerCache{client: client, ttl: time.Minute}
}

func TestLedgerCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss then hit", func(t *testing.T) {
		_, c := newTestCache(t)

		_, hit, err := c.Get(ctx, "user-1", entity.AccountingModeCash)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if hit {
			t.Fatal("expected miss on empty cache")
		}

		if err := c.Set(ctx, "user-1", entity.AccountingModeCash, []byte(`[]`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		payload, hit, err := c.Get(ctx, "user-1", entity.AccountingModeCash)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !hit || string(payload) != `[]` {
			t.Errorf("Get() = %q, hit=%v, want cached payload", payload, hit)
		}
	})

	t.Run("modes are cached independently", func(t *testing.T) {
		_, c := newTestCache(t)

		if err := c.Set(ctx, "user-1", entity.AccountingModeCompetence, []byte("a")); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		_, hit, err := c.Get(ctx, "user-1", entity.AccountingModeCash)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if hit {
			t.Error("cash mode should not be populated by a competence write")
		}
	})

	t.Run("invalidate drops both modes", func(t *testing.T) {
		_, c := newTestCache(t)

		_ = c.Set(ctx, "user-1", entity.AccountingModeCompetence, []byte("a"))
		_ = c.Set(ctx, "user-1", entity.AccountingModeCash, []byte("b"))
		_ = c.Set(ctx, "user-2", entity.AccountingModeCash, []byte("c"))

		if err := c.Invalidate(ctx, "user-1"); err != nil {
			t.Fatalf("Invalidate() error = %v", err)
		}

		for _, mode := range []entity.AccountingMode{entity.AccountingModeCompetence, entity.AccountingModeCash} {
			if _, hit, _ := c.Get(ctx, "user-1", mode); hit {
				t.Errorf("user-1 %s should be invalidated", mode)
			}
		}
		if _, hit, _ := c.Get(ctx, "user-2", entity.AccountingModeCash); !hit {
			t.Error("user-2 cache should survive user-1 invalidation")
		}
	})

	t.Run("entries expire after the ttl", func(t *testing.T) {
		mr, c := newTestCache(t)

		_ = c.Set(ctx, "user-1", entity.AccountingModeCash, []byte("a"))
		mr.FastForward(2 * time.Minute)

		if _, hit, _ := c.Get(ctx, "user-1", entity.AccountingModeCash); hit {
			t.Error("entry should expire after the ttl")
		}
	})
}
