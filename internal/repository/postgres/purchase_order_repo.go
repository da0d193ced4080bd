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

type purchaseOrderRepo struct {
	db *sqlx.DB
}

// NewPurchaseOrderRepo creates a new PostgreSQL-backed PurchaseOrderRepository.
func NewPurchaseOrderRepo(db *sqlx.DB) port.PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

type purchaseOrderRow struct {
	ID         uuid.UUID       `db:"id"`
	PONumber   string          `db:"po_number"`
	OrderDate  time.Time       `db:"order_date"`
	VendorName string          `db:"vendor_name"`
	Subtotal   decimal.Decimal `db:"subtotal"`
	GSTAmount  decimal.Decimal `db:"gst_amount"`
	Shipping   decimal.Decimal `db:"shipping_cost"`
	Discount   decimal.Decimal `db:"discount_amount"`
	RoundOff   decimal.Decimal `db:"round_off"`
	Total      decimal.Decimal `db:"total"`
	CreatedAt  time.Time       `db:"created_at"`
}

type purchaseOrderLineRow struct {
	DocumentID  uuid.UUID       `db:"document_id"`
	LineIndex   int             `db:"line_index"`
	Description string          `db:"description"`
	HSNCode     string          `db:"hsn_code"`
	Quantity    int64           `db:"quantity"`
	Unit        string          `db:"unit"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	GSTRate     decimal.Decimal `db:"gst_rate"`
	GSTAmount   decimal.Decimal `db:"gst_amount"`
	TotalPrice  decimal.Decimal `db:"total_price"`
}

func (r *purchaseOrderRepo) Create(ctx context.Context, po *domain.PurchaseOrder) error {
	if po.CreatedAt.IsZero() {
		po.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("purchaseOrderRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	t := po.Totals
	_, err = tx.ExecContext(ctx,
		`INSERT INTO purchase_orders (
			id, po_number, order_date, vendor_name,
			subtotal, gst_amount, shipping_cost, discount_amount, round_off, total,
			created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9, $10,
			$11
		)`,
		po.ID, po.PONumber, po.OrderDate, po.VendorName,
		t.Subtotal, t.GSTAmount, t.Shipping, t.Discount, t.RoundOff, t.Total,
		po.CreatedAt)
	if err != nil {
		return fmt.Errorf("purchaseOrderRepo.Create: %w", err)
	}

	for i, l := range t.Lines {
		_, err = tx.NamedExecContext(ctx,
			`INSERT INTO purchase_order_lines (
				document_id, line_index, description, hsn_code, quantity, unit,
				unit_price, gst_rate, gst_amount, total_price
			) VALUES (
				:document_id, :line_index, :description, :hsn_code, :quantity, :unit,
				:unit_price, :gst_rate, :gst_amount, :total_price
			)`,
			purchaseOrderLineRow{
				DocumentID:  po.ID,
				LineIndex:   i,
				Description: l.Description,
				HSNCode:     l.HSNCode,
				Quantity:    l.Quantity,
				Unit:        l.Unit,
				UnitPrice:   l.UnitPrice,
				GSTRate:     l.GSTRate,
				GSTAmount:   l.GSTAmount,
				TotalPrice:  l.TotalPrice,
			})
		if err != nil {
			return fmt.Errorf("purchaseOrderRepo.Create lines: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("purchaseOrderRepo.Create commit: %w", err)
	}
	return nil
}

func (r *purchaseOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	var row purchaseOrderRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM purchase_orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPurchaseOrderNotFound
		}
		return nil, fmt.Errorf("purchaseOrderRepo.GetByID: %w", err)
	}
	return r.assemble(ctx, row)
}

func (r *purchaseOrderRepo) List(ctx context.Context, offset, limit int) ([]domain.PurchaseOrder, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM purchase_orders")
	if err != nil {
		return nil, 0, fmt.Errorf("purchaseOrderRepo.List count: %w", err)
	}

	var rows []purchaseOrderRow
	err = r.db.SelectContext(ctx, &rows,
		`SELECT * FROM purchase_orders ORDER BY created_at DESC, po_number DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("purchaseOrderRepo.List: %w", err)
	}

	orders := make([]domain.PurchaseOrder, 0, len(rows))
	for _, row := range rows {
		po, err := r.assemble(ctx, row)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *po)
	}
	return orders, total, nil
}

func (r *purchaseOrderRepo) NextNumber(ctx context.Context) (string, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, "SELECT nextval('po_number_seq')")
	if err != nil {
		return "", fmt.Errorf("purchaseOrderRepo.NextNumber: %w", err)
	}
	return fmt.Sprintf("PO-%05d", n), nil
}

func (r *purchaseOrderRepo) assemble(ctx context.Context, row purchaseOrderRow) (*domain.PurchaseOrder, error) {
	var lineRows []purchaseOrderLineRow
	err := r.db.SelectContext(ctx, &lineRows,
		"SELECT * FROM purchase_order_lines WHERE document_id = $1 ORDER BY line_index", row.ID)
	if err != nil {
		return nil, fmt.Errorf("purchaseOrderRepo lines for %s: %w", row.PONumber, err)
	}

	lines := make([]domain.PurchaseOrderLine, 0, len(lineRows))
	for _, lr := range lineRows {
		lines = append(lines, domain.PurchaseOrderLine{
			Description: lr.Description,
			HSNCode:     lr.HSNCode,
			Quantity:    lr.Quantity,
			Unit:        lr.Unit,
			UnitPrice:   lr.UnitPrice,
			GSTRate:     lr.GSTRate,
			GSTAmount:   lr.GSTAmount,
			TotalPrice:  lr.TotalPrice,
		})
	}

	return &domain.PurchaseOrder{
		ID:         row.ID,
		PONumber:   row.PONumber,
		OrderDate:  row.OrderDate,
		VendorName: row.VendorName,
		Totals: domain.PurchaseOrderTotals{
			Lines:     lines,
			Subtotal:  row.Subtotal,
			GSTAmount: row.GSTAmount,
			Shipping:  row.Shipping,
			Discount:  row.Discount,
			RoundOff:  row.RoundOff,
			Total:     row.Total,
		},
		CreatedAt: row.CreatedAt,
	}, nil
}
