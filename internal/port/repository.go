package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
)

// InvoiceRepository defines the contract for invoice persistence. A
// finalized invoice is written exactly once (header plus lines in a single
// transaction); there is no update path for its monetary figures.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	UpdatePaidStatus(ctx context.Context, id uuid.UUID, status domain.PaidStatus) error
	NextNumber(ctx context.Context) (string, error)
}

// CreditNoteRepository defines the contract for credit-note persistence.
// Monetary figures are written once at creation; only status and refund
// metadata change afterwards.
type CreditNoteRepository interface {
	Create(ctx context.Context, note *domain.CreditNote) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditNote, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.CreditNote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CreditNoteStatus) error
	RecordRefund(ctx context.Context, id uuid.UUID, method, reference string) error
	NextNumber(ctx context.Context) (string, error)
}

// PurchaseOrderRepository defines the contract for purchase-order persistence.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *domain.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error)
	List(ctx context.Context, offset, limit int) ([]domain.PurchaseOrder, int, error)
	NextNumber(ctx context.Context) (string, error)
}
