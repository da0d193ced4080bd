package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/port"
)

type creditNoteRepo struct {
	db *sqlx.DB
}

// NewCreditNoteRepo creates a new PostgreSQL-backed CreditNoteRepository.
func NewCreditNoteRepo(db *sqlx.DB) port.CreditNoteRepository {
	return &creditNoteRepo{db: db}
}

type creditNoteRow struct {
	ID               uuid.UUID               `db:"id"`
	CreditNoteNumber string                  `db:"credit_note_number"`
	InvoiceID        uuid.UUID               `db:"invoice_id"`
	Reason           string                  `db:"reason"`
	Status           domain.CreditNoteStatus `db:"status"`
	TaxableValue     decimal.Decimal         `db:"taxable_value"`
	CGSTTotal        decimal.Decimal         `db:"cgst_total"`
	SGSTTotal        decimal.Decimal         `db:"sgst_total"`
	IGSTTotal        decimal.Decimal         `db:"igst_total"`
	TotalTax         decimal.Decimal         `db:"total_tax"`
	RoundOff         decimal.Decimal         `db:"round_off"`
	GrandTotal       decimal.Decimal         `db:"grand_total"`
	RefundMethod     string                  `db:"refund_method"`
	RefundReference  string                  `db:"refund_reference"`
	CreatedAt        time.Time               `db:"created_at"`
	UpdatedAt        time.Time               `db:"updated_at"`
}

// noteLineRow extends the shared line column set with the index of the
// invoice line each credit-note line reverses.
type noteLineRow struct {
	lineRow
	InvoiceLineIndex int `db:"invoice_line_index"`
}

const insertNoteLineQuery = `INSERT INTO credit_note_lines (
	document_id, line_index, invoice_line_index, description, hsn_code, quantity, unit,
	unit_price, discount_percent, tax_rate,
	discount_amount, taxable_amount,
	cgst_rate, cgst_amount, sgst_rate, sgst_amount, igst_rate, igst_amount,
	total_amount
) VALUES (
	:document_id, :line_index, :invoice_line_index, :description, :hsn_code, :quantity, :unit,
	:unit_price, :discount_percent, :tax_rate,
	:discount_amount, :taxable_amount,
	:cgst_rate, :cgst_amount, :sgst_rate, :sgst_amount, :igst_rate, :igst_amount,
	:total_amount
)`

func insertNoteLines(ctx context.Context, tx *sqlx.Tx, note *domain.CreditNote) error {
	if len(note.LineSources) != len(note.Document.Lines) {
		return fmt.Errorf("credit note %s has %d lines but %d source indexes",
			note.CreditNoteNumber, len(note.Document.Lines), len(note.LineSources))
	}
	for i, l := range note.Document.Lines {
		row := noteLineRow{
			lineRow:          toLineRow(note.ID, i, l),
			InvoiceLineIndex: note.LineSources[i],
		}
		if _, err := tx.NamedExecContext(ctx, insertNoteLineQuery, row); err != nil {
			return err
		}
	}
	return nil
}

func selectNoteLines(ctx context.Context, db *sqlx.DB, noteID uuid.UUID) ([]domain.ComputedLineItem, []int, error) {
	var rows []noteLineRow
	err := db.SelectContext(ctx, &rows,
		"SELECT * FROM credit_note_lines WHERE document_id = $1 ORDER BY line_index", noteID)
	if err != nil {
		return nil, nil, err
	}
	lines := make([]domain.ComputedLineItem, 0, len(rows))
	sources := make([]int, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fromLineRow(row.lineRow))
		sources = append(sources, row.InvoiceLineIndex)
	}
	return lines, sources, nil
}

func (r *creditNoteRepo) Create(ctx context.Context, note *domain.CreditNote) error {
	now := time.Now().UTC()
	note.CreatedAt = now
	note.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("creditNoteRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	doc := note.Document
	_, err = tx.ExecContext(ctx,
		`INSERT INTO credit_notes (
			id, credit_note_number, invoice_id, reason, status,
			taxable_value, cgst_total, sgst_total, igst_total, total_tax,
			round_off, grand_total,
			refund_method, refund_reference, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12,
			$13, $14, $15, $16
		)`,
		note.ID, note.CreditNoteNumber, note.InvoiceID, note.Reason, note.Status,
		doc.TaxableValue, doc.CGSTTotal, doc.SGSTTotal, doc.IGSTTotal, doc.TotalTax,
		doc.RoundOff, doc.GrandTotal,
		note.RefundMethod, note.RefundReference, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creditNoteRepo.Create: %w", err)
	}

	if err := insertNoteLines(ctx, tx, note); err != nil {
		return fmt.Errorf("creditNoteRepo.Create lines: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("creditNoteRepo.Create commit: %w", err)
	}
	return nil
}

func (r *creditNoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditNote, error) {
	var row creditNoteRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM credit_notes WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCreditNoteNotFound
		}
		return nil, fmt.Errorf("creditNoteRepo.GetByID: %w", err)
	}
	return r.assemble(ctx, row)
}

func (r *creditNoteRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.CreditNote, error) {
	var rows []creditNoteRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM credit_notes WHERE invoice_id = $1
		 ORDER BY created_at ASC`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("creditNoteRepo.ListByInvoice: %w", err)
	}

	notes := make([]domain.CreditNote, 0, len(rows))
	for _, row := range rows {
		note, err := r.assemble(ctx, row)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}
	return notes, nil
}

func (r *creditNoteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CreditNoteStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE credit_notes SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("creditNoteRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCreditNoteNotFound
	}
	return nil
}

func (r *creditNoteRepo) RecordRefund(ctx context.Context, id uuid.UUID, method, reference string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE credit_notes
		 SET status = $1, refund_method = $2, refund_reference = $3, updated_at = $4
		 WHERE id = $5`,
		domain.CreditNoteStatusRefunded, method, reference, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("creditNoteRepo.RecordRefund: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCreditNoteNotFound
	}
	return nil
}

func (r *creditNoteRepo) NextNumber(ctx context.Context) (string, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, "SELECT nextval('credit_note_number_seq')")
	if err != nil {
		return "", fmt.Errorf("creditNoteRepo.NextNumber: %w", err)
	}
	return fmt.Sprintf("CN-%05d", n), nil
}

func (r *creditNoteRepo) assemble(ctx context.Context, row creditNoteRow) (*domain.CreditNote, error) {
	lines, sources, err := selectNoteLines(ctx, r.db, row.ID)
	if err != nil {
		return nil, fmt.Errorf("creditNoteRepo lines for %s: %w", row.CreditNoteNumber, err)
	}

	// Credit notes carry no document-level discount or shipping; those fields
	// stay at decimal zero.
	return &domain.CreditNote{
		ID:               row.ID,
		CreditNoteNumber: row.CreditNoteNumber,
		InvoiceID:        row.InvoiceID,
		Reason:           row.Reason,
		Status:           row.Status,
		Document: domain.ComputedDocument{
			Lines:          lines,
			TaxableValue:   row.TaxableValue,
			CGSTTotal:      row.CGSTTotal,
			SGSTTotal:      row.SGSTTotal,
			IGSTTotal:      row.IGSTTotal,
			TotalTax:       row.TotalTax,
			RoundOff:       row.RoundOff,
			GrandTotal:     row.GrandTotal,
		},
		LineSources:     sources,
		RefundMethod:    row.RefundMethod,
		RefundReference: row.RefundReference,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}
