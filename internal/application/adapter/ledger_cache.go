package adapter

import (
	"context"

	"github.com/gestor-app/backend/internal/domain/entity"
)

// LedgerCache caches consolidated ledger payloads per user and accounting
// mode. Consolidation itself is pure and cache-unaware; this is an external
// layer the list use case consults before recomputing. Payloads are opaque
// bytes so the cache does not depend on the ledger view types.
type LedgerCache interface {
	// Get returns the cached payload for the user and mode, with a hit flag.
	// Cache errors degrade to a miss at the caller, never to a failure.
	Get(ctx context.Context, userID string, mode entity.AccountingMode) ([]byte, bool, error)

	// Set stores the payload for the user and mode.
	Set(ctx context.Context, userID string, mode entity.AccountingMode, payload []byte) error

	// Invalidate drops every cached mode for the user. Called on any write
	// that can change the consolidated view.
	Invalidate(ctx context.Context, userID string) error
}
