package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sivanandz/luminila-ERP-sub002/internal/port"
)

type stockLedgerRepo struct {
	db *sqlx.DB
}

// NewStockLedgerRepo creates a new PostgreSQL-backed StockLedger. Each
// approved return is appended as one row tagged with the credit note that
// caused it; counts are sums over those rows.
func NewStockLedgerRepo(db *sqlx.DB) port.StockLedger {
	return &stockLedgerRepo{db: db}
}

func (r *stockLedgerRepo) AlreadyReturned(ctx context.Context, invoiceID uuid.UUID, lineIndex int) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_ledger
		 WHERE invoice_id = $1 AND line_index = $2`, invoiceID, lineIndex)
	if err != nil {
		return 0, fmt.Errorf("stockLedgerRepo.AlreadyReturned: %w", err)
	}
	return total, nil
}

func (r *stockLedgerRepo) RestoredByNote(ctx context.Context, creditNoteID uuid.UUID, lineIndex int) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_ledger
		 WHERE credit_note_id = $1 AND line_index = $2`, creditNoteID, lineIndex)
	if err != nil {
		return 0, fmt.Errorf("stockLedgerRepo.RestoredByNote: %w", err)
	}
	return total, nil
}

func (r *stockLedgerRepo) Restore(ctx context.Context, creditNoteID, invoiceID uuid.UUID, lineIndex int, quantity int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stock_ledger (credit_note_id, invoice_id, line_index, quantity, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		creditNoteID, invoiceID, lineIndex, quantity, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("stockLedgerRepo.Restore: %w", err)
	}
	return nil
}
