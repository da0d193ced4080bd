package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// invoiceRow flattens the invoice header plus document totals into the shape
// stored in the invoices table. Lines live in invoice_lines.
type invoiceRow struct {
	ID             uuid.UUID         `db:"id"`
	InvoiceNumber  string            `db:"invoice_number"`
	InvoiceDate    time.Time         `db:"invoice_date"`
	BuyerName      string            `db:"buyer_name"`
	BuyerGSTIN     string            `db:"buyer_gstin"`
	BuyerState     string            `db:"buyer_state"`
	PlaceOfSupply  string            `db:"place_of_supply"`
	InterState     bool              `db:"inter_state"`
	TaxableValue   decimal.Decimal   `db:"taxable_value"`
	CGSTTotal      decimal.Decimal   `db:"cgst_total"`
	SGSTTotal      decimal.Decimal   `db:"sgst_total"`
	IGSTTotal      decimal.Decimal   `db:"igst_total"`
	TotalTax       decimal.Decimal   `db:"total_tax"`
	DiscountAmount decimal.Decimal   `db:"discount_amount"`
	Shipping       decimal.Decimal   `db:"shipping_charges"`
	RoundOff       decimal.Decimal   `db:"round_off"`
	GrandTotal     decimal.Decimal   `db:"grand_total"`
	PaidStatus     domain.PaidStatus `db:"paid_status"`
	CreatedAt      time.Time         `db:"created_at"`
}

// lineRow is one computed line as stored in invoice_lines (also reused by
// credit_note_lines, which shares the column set).
type lineRow struct {
	DocumentID      uuid.UUID       `db:"document_id"`
	LineIndex       int             `db:"line_index"`
	Description     string          `db:"description"`
	HSNCode         string          `db:"hsn_code"`
	Quantity        int64           `db:"quantity"`
	Unit            string          `db:"unit"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	DiscountPercent decimal.Decimal `db:"discount_percent"`
	TaxRate         decimal.Decimal `db:"tax_rate"`
	DiscountAmount  decimal.Decimal `db:"discount_amount"`
	TaxableAmount   decimal.Decimal `db:"taxable_amount"`
	CGSTRate        decimal.Decimal `db:"cgst_rate"`
	CGSTAmount      decimal.Decimal `db:"cgst_amount"`
	SGSTRate        decimal.Decimal `db:"sgst_rate"`
	SGSTAmount      decimal.Decimal `db:"sgst_amount"`
	IGSTRate        decimal.Decimal `db:"igst_rate"`
	IGSTAmount      decimal.Decimal `db:"igst_amount"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
}

func toLineRow(docID uuid.UUID, idx int, l domain.ComputedLineItem) lineRow {
	return lineRow{
		DocumentID:      docID,
		LineIndex:       idx,
		Description:     l.Description,
		HSNCode:         l.HSNCode,
		Quantity:        l.Quantity,
		Unit:            l.Unit,
		UnitPrice:       l.UnitPrice,
		DiscountPercent: l.DiscountPercent,
		TaxRate:         l.TaxRate,
		DiscountAmount:  l.DiscountAmount,
		TaxableAmount:   l.TaxableAmount,
		CGSTRate:        l.CGSTRate,
		CGSTAmount:      l.CGSTAmount,
		SGSTRate:        l.SGSTRate,
		SGSTAmount:      l.SGSTAmount,
		IGSTRate:        l.IGSTRate,
		IGSTAmount:      l.IGSTAmount,
		TotalAmount:     l.TotalAmount,
	}
}

func fromLineRow(r lineRow) domain.ComputedLineItem {
	return domain.ComputedLineItem{
		LineItemDraft: domain.LineItemDraft{
			Description:     r.Description,
			HSNCode:         r.HSNCode,
			Quantity:        r.Quantity,
			Unit:            r.Unit,
			UnitPrice:       r.UnitPrice,
			DiscountPercent: r.DiscountPercent,
			TaxRate:         r.TaxRate,
		},
		DiscountAmount: r.DiscountAmount,
		TaxableAmount:  r.TaxableAmount,
		CGSTRate:       r.CGSTRate,
		CGSTAmount:     r.CGSTAmount,
		SGSTRate:       r.SGSTRate,
		SGSTAmount:     r.SGSTAmount,
		IGSTRate:       r.IGSTRate,
		IGSTAmount:     r.IGSTAmount,
		TotalAmount:    r.TotalAmount,
	}
}

const insertLineQuery = `INSERT INTO %s (
	document_id, line_index, description, hsn_code, quantity, unit,
	unit_price, discount_percent, tax_rate,
	discount_amount, taxable_amount,
	cgst_rate, cgst_amount, sgst_rate, sgst_amount, igst_rate, igst_amount,
	total_amount
) VALUES (
	:document_id, :line_index, :description, :hsn_code, :quantity, :unit,
	:unit_price, :discount_percent, :tax_rate,
	:discount_amount, :taxable_amount,
	:cgst_rate, :cgst_amount, :sgst_rate, :sgst_amount, :igst_rate, :igst_amount,
	:total_amount
)`

func insertLines(ctx context.Context, tx *sqlx.Tx, table string, docID uuid.UUID, lines []domain.ComputedLineItem) error {
	query := fmt.Sprintf(insertLineQuery, table)
	for i, l := range lines {
		if _, err := tx.NamedExecContext(ctx, query, toLineRow(docID, i, l)); err != nil {
			return err
		}
	}
	return nil
}

func selectLines(ctx context.Context, db *sqlx.DB, table string, docID uuid.UUID) ([]domain.ComputedLineItem, error) {
	var rows []lineRow
	err := db.SelectContext(ctx, &rows,
		fmt.Sprintf("SELECT * FROM %s WHERE document_id = $1 ORDER BY line_index", table), docID)
	if err != nil {
		return nil, err
	}
	lines := make([]domain.ComputedLineItem, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fromLineRow(r))
	}
	return lines, nil
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO invoices (
		id, invoice_number, invoice_date,
		buyer_name, buyer_gstin, buyer_state, place_of_supply, inter_state,
		taxable_value, cgst_total, sgst_total, igst_total, total_tax,
		discount_amount, shipping_charges, round_off, grand_total,
		paid_status, created_at
	) VALUES (
		$1, $2, $3,
		$4, $5, $6, $7, $8,
		$9, $10, $11, $12, $13,
		$14, $15, $16, $17,
		$18, $19
	)`

	doc := inv.Document
	_, err = tx.ExecContext(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.InvoiceDate,
		inv.BuyerName, inv.BuyerGSTIN, inv.BuyerState, inv.PlaceOfSupply, inv.InterState,
		doc.TaxableValue, doc.CGSTTotal, doc.SGSTTotal, doc.IGSTTotal, doc.TotalTax,
		doc.DiscountAmount, doc.Shipping, doc.RoundOff, doc.GrandTotal,
		inv.PaidStatus, inv.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "invoice_number") {
			return domain.ErrInvoiceNumberTaken
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}

	if err := insertLines(ctx, tx, "invoice_lines", inv.ID, doc.Lines); err != nil {
		return fmt.Errorf("invoiceRepo.Create lines: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var row invoiceRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return r.assemble(ctx, row)
}

func (r *invoiceRepo) GetByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	var row invoiceRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM invoices WHERE invoice_number = $1", number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByNumber: %w", err)
	}
	return r.assemble(ctx, row)
}

func (r *invoiceRepo) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices")
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var rows []invoiceRow
	err = r.db.SelectContext(ctx, &rows,
		`SELECT * FROM invoices ORDER BY created_at DESC, invoice_number DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}

	invoices := make([]domain.Invoice, 0, len(rows))
	for _, row := range rows {
		inv, err := r.assemble(ctx, row)
		if err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) UpdatePaidStatus(ctx context.Context, id uuid.UUID, status domain.PaidStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET paid_status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdatePaidStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) NextNumber(ctx context.Context) (string, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, "SELECT nextval('invoice_number_seq')")
	if err != nil {
		return "", fmt.Errorf("invoiceRepo.NextNumber: %w", err)
	}
	return fmt.Sprintf("INV-%05d", n), nil
}

func (r *invoiceRepo) assemble(ctx context.Context, row invoiceRow) (*domain.Invoice, error) {
	lines, err := selectLines(ctx, r.db, "invoice_lines", row.ID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo lines for %s: %w", row.InvoiceNumber, err)
	}
	return &domain.Invoice{
		ID:            row.ID,
		InvoiceNumber: row.InvoiceNumber,
		InvoiceDate:   row.InvoiceDate,
		BuyerName:     row.BuyerName,
		BuyerGSTIN:    row.BuyerGSTIN,
		BuyerState:    row.BuyerState,
		PlaceOfSupply: row.PlaceOfSupply,
		InterState:    row.InterState,
		Document: domain.ComputedDocument{
			Lines:          lines,
			TaxableValue:   row.TaxableValue,
			CGSTTotal:      row.CGSTTotal,
			SGSTTotal:      row.SGSTTotal,
			IGSTTotal:      row.IGSTTotal,
			TotalTax:       row.TotalTax,
			DiscountAmount: row.DiscountAmount,
			Shipping:       row.Shipping,
			RoundOff:       row.RoundOff,
			GrandTotal:     row.GrandTotal,
		},
		PaidStatus: row.PaidStatus,
		CreatedAt:  row.CreatedAt,
	}, nil
}
