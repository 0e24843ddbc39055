package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestor-app/backend/internal/application/adapter"
	"github.com/gestor-app/backend/internal/domain/entity"
)

// ListLedgerInput represents the input for listing the consolidated ledger.
type ListLedgerInput struct {
	UserID    string
	Mode      entity.AccountingMode
	StartDate *time.Time
	EndDate   *time.Time
}

// ListLedgerOutput represents the consolidated ledger view.
type ListLedgerOutput struct {
	Mode    entity.AccountingMode
	Entries []*ProcessedTransaction
}

// ListLedgerUseCase loads a user's transactions and cards and derives the
// ledger view for the requested accounting mode.
type ListLedgerUseCase struct {
	transactionRepo adapter.TransactionRepository
	cardRepo        adapter.CreditCardRepository
	cache           adapter.LedgerCache // Optional, may be nil.
}

// NewListLedgerUseCase creates a new ListLedgerUseCase instance.
func NewListLedgerUseCase(
	transactionRepo adapter.TransactionRepository,
	cardRepo adapter.CreditCardRepository,
	cache adapter.LedgerCache,
) *ListLedgerUseCase {
	return &ListLedgerUseCase{
		transactionRepo: transactionRepo,
		cardRepo:        cardRepo,
		cache:           cache,
	}
}

// Execute derives the consolidated ledger view.
//
// Consolidation always runs over the user's full transaction set: a date
// filter applied before bucketing would cut billing cycles in half and
// misstate invoice balances. The optional date window is applied to the
// consolidated output instead. Unfiltered views are served from and stored
// into the cache; cache failures degrade to recomputation.
func (uc *ListLedgerUseCase) Execute(ctx context.Context, input ListLedgerInput) (*ListLedgerOutput, error) {
	mode := entity.ParseAccountingMode(string(input.Mode))
	filtered := input.StartDate != nil || input.EndDate != nil

	if !filtered && uc.cache != nil {
		payload, hit, err := uc.cache.Get(ctx, input.UserID, mode)
		if err != nil {
			slog.Warn("Ledger cache read failed, recomputing", "userID", input.UserID, "error", err)
		} else if hit {
			var entries []*ProcessedTransaction
			if err := json.Unmarshal(payload, &entries); err == nil {
				return &ListLedgerOutput{Mode: mode, Entries: entries}, nil
			}
			slog.Warn("Ledger cache payload corrupt, recomputing", "userID", input.UserID)
		}
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	cards, err := uc.cardRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load credit cards: %w", err)
	}

	entries := ProcessTransactions(transactions, cards, mode)

	if !filtered && uc.cache != nil {
		if payload, err := json.Marshal(entries); err == nil {
			if err := uc.cache.Set(ctx, input.UserID, mode, payload); err != nil {
				slog.Warn("Ledger cache write failed", "userID", input.UserID, "error", err)
			}
		}
	}

	if filtered {
		entries = filterByDate(entries, input.StartDate, input.EndDate)
	}

	return &ListLedgerOutput{Mode: mode, Entries: entries}, nil
}

// filterByDate keeps entries inside the inclusive [start, end] window.
func filterByDate(entries []*ProcessedTransaction, start, end *time.Time) []*ProcessedTransaction {
	kept := make([]*ProcessedTransaction, 0, len(entries))
	for _, e := range entries {
		if start != nil && e.Date.Before(*start) {
			continue
		}
		if end != nil && e.Date.After(*end) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
