package port

import (
	"context"

	"github.com/google/uuid"
)

// StockLedger is the inventory collaborator consulted during credit-note
// handling. Every restore is recorded against both the invoice line it
// returns stock to and the credit note that caused it: the per-line sum
// across all notes bounds how much of a line is still returnable, while the
// per-note sum tells a retry which of its own writes already landed.
//
// Restore is not assumed atomic with the credit-note status write; the
// service compensates by parking the note in approved_stock_pending when the
// restore fails.
type StockLedger interface {
	AlreadyReturned(ctx context.Context, invoiceID uuid.UUID, lineIndex int) (int64, error)
	RestoredByNote(ctx context.Context, creditNoteID uuid.UUID, lineIndex int) (int64, error)
	Restore(ctx context.Context, creditNoteID, invoiceID uuid.UUID, lineIndex int, quantity int64) error
}
