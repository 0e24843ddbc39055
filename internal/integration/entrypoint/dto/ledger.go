package dto

import (
	"github.com/gestor-app/backend/internal/application/usecase/ledger"
)

// LedgerEntryResponse represents one entry of the consolidated ledger view.
// Virtual entries are synthesized invoices; their children are the card
// purchases and payments the invoice consolidates.
type LedgerEntryResponse struct {
	TransactionResponse
	IsVirtual       bool                  `json:"is_virtual"`
	VirtualChildren []TransactionResponse `json:"virtual_children,omitempty"`
}

// LedgerResponse represents the response for the consolidated ledger view.
type LedgerResponse struct {
	Mode    string                `json:"mode"`
	Entries []LedgerEntryResponse `json:"entries"`
	Total   int                   `json:"total"`
}

// ToLedgerResponse converts a ledger output to a LedgerResponse DTO.
func ToLedgerResponse(output *ledger.ListLedgerOutput) LedgerResponse {
	entries := make([]LedgerEntryResponse, len(output.Entries))
	for i, e := range output.Entries {
		entry := LedgerEntryResponse{
			TransactionResponse: ToTransactionResponse(&e.Transaction),
			IsVirtual:           e.IsVirtual,
		}
		if len(e.VirtualChildren) > 0 {
			entry.VirtualChildren = make([]TransactionResponse, len(e.VirtualChildren))
			for j, child := range e.VirtualChildren {
				entry.VirtualChildren[j] = ToTransactionResponse(child)
			}
		}
		entries[i] = entry
	}

	return LedgerResponse{
		Mode:    string(output.Mode),
		Entries: entries,
		Total:   len(entries),
	}
}
