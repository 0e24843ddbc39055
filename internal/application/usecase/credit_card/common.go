package creditcard

import (
	"context"
	"log/slog"

	"github.com/gestor-app/backend/internal/application/adapter"
)

// invalidateLedger drops the user's cached ledger views after a write. Cache
// failures are logged and swallowed: a stale cache entry expires on its own
// TTL, and the write itself must not fail because of it.
func invalidateLedger(ctx context.Context, cache adapter.LedgerCache, userID string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate ledger cache", "userID", userID, "error", err)
	}
}
