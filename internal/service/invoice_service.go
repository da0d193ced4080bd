package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sivanandz/luminila-ERP-sub002/internal/config"
	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/ewaybill"
	"github.com/sivanandz/luminila-ERP-sub002/internal/gstin"
	"github.com/sivanandz/luminila-ERP-sub002/internal/numwords"
	"github.com/sivanandz/luminila-ERP-sub002/internal/port"
	"github.com/sivanandz/luminila-ERP-sub002/internal/tax"
)

// InvoiceLineInput is the DTO for one invoice line as submitted by the UI.
// HSN code and tax rate fall back to the configured store defaults when
// omitted.
type InvoiceLineInput struct {
	Description     string           `json:"description" binding:"required"`
	HSNCode         string           `json:"hsn_code"`
	Quantity        int64            `json:"quantity" binding:"required"`
	Unit            string           `json:"unit"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	DiscountPercent decimal.Decimal  `json:"discount_percent"`
	TaxRate         *decimal.Decimal `json:"tax_rate"`
}

// InvoiceInput is the DTO for previewing or finalizing an invoice.
type InvoiceInput struct {
	BuyerName       string             `json:"buyer_name"`
	BuyerGSTIN      string             `json:"buyer_gstin"`
	BuyerState      string             `json:"buyer_state"`
	PlaceOfSupply   string             `json:"place_of_supply"`
	InvoiceDate     *time.Time         `json:"invoice_date"`
	Lines           []InvoiceLineInput `json:"lines"`
	DiscountAmount  decimal.Decimal    `json:"discount_amount"`
	ShippingCharges decimal.Decimal    `json:"shipping_charges"`
}

// InvoicePreview is a full recomputation of a draft invoice, returned without
// persisting anything.
type InvoicePreview struct {
	Resolution    tax.Resolution          `json:"resolution"`
	Document      domain.ComputedDocument `json:"document"`
	AmountInWords string                  `json:"amount_in_words"`
}

// InvoiceService defines the sales invoice contract: stateless preview,
// write-once finalization, and derived artifacts for a saved invoice.
type InvoiceService interface {
	Preview(ctx context.Context, input InvoiceInput) (*InvoicePreview, error)
	Create(ctx context.Context, input InvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	UpdatePaidStatus(ctx context.Context, id uuid.UUID, status domain.PaidStatus) error
	AmountInWords(ctx context.Context, id uuid.UUID) (string, error)
	EWayBill(ctx context.Context, id uuid.UUID, transport domain.TransportDetails) (domain.EWayBillPayload, error)
}

type invoiceService struct {
	repo   port.InvoiceRepository
	taxCfg *config.TaxConfig
	ewb    *ewaybill.Builder
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(repo port.InvoiceRepository, taxCfg *config.TaxConfig, ewb *ewaybill.Builder) InvoiceService {
	return &invoiceService{repo: repo, taxCfg: taxCfg, ewb: ewb}
}

// compute validates the input and recomputes the whole document. Used by both
// Preview and Create so a preview always shows exactly what finalization
// would persist.
func (s *invoiceService) compute(input InvoiceInput) (*InvoicePreview, error) {
	if strings.TrimSpace(input.BuyerName) == "" {
		return nil, domain.NewValidationError("buyer_name", "is required")
	}

	buyerGSTIN := strings.ToUpper(strings.TrimSpace(input.BuyerGSTIN))
	if buyerGSTIN != "" {
		if res := gstin.Validate(buyerGSTIN); !res.Valid {
			return nil, domain.NewValidationError("buyer_gstin", "%s", res.Message)
		}
	}

	res, err := tax.ResolveJurisdiction(s.taxCfg.SellerStateCode, input.BuyerState, input.PlaceOfSupply)
	if err != nil {
		return nil, err
	}

	if len(input.Lines) == 0 {
		return nil, domain.NewValidationError("lines", "at least one line item is required")
	}
	drafts := make([]domain.LineItemDraft, 0, len(input.Lines))
	for _, l := range input.Lines {
		drafts = append(drafts, s.toDraft(l))
	}

	doc, err := tax.ComputeDocument(drafts, res.InterState, input.DiscountAmount, input.ShippingCharges)
	if err != nil {
		return nil, err
	}

	words, err := numwords.Format(doc.GrandTotal)
	if err != nil {
		return nil, err
	}

	return &InvoicePreview{Resolution: res, Document: doc, AmountInWords: words}, nil
}

func (s *invoiceService) toDraft(l InvoiceLineInput) domain.LineItemDraft {
	d := domain.LineItemDraft{
		Description:     l.Description,
		HSNCode:         l.HSNCode,
		Quantity:        l.Quantity,
		Unit:            l.Unit,
		UnitPrice:       l.UnitPrice,
		DiscountPercent: l.DiscountPercent,
	}
	if d.HSNCode == "" {
		d.HSNCode = s.taxCfg.DefaultHSNCode
	}
	if l.TaxRate != nil {
		d.TaxRate = *l.TaxRate
	} else {
		d.TaxRate = s.taxCfg.DefaultGSTRate
	}
	return d
}

func (s *invoiceService) Preview(_ context.Context, input InvoiceInput) (*InvoicePreview, error) {
	return s.compute(input)
}

func (s *invoiceService) Create(ctx context.Context, input InvoiceInput) (*domain.Invoice, error) {
	preview, err := s.compute(input)
	if err != nil {
		return nil, err
	}

	number, err := s.repo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	invoiceDate := time.Now().UTC()
	if input.InvoiceDate != nil {
		invoiceDate = input.InvoiceDate.UTC()
	}

	inv := &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: number,
		InvoiceDate:   invoiceDate,
		BuyerName:     strings.TrimSpace(input.BuyerName),
		BuyerGSTIN:    strings.ToUpper(strings.TrimSpace(input.BuyerGSTIN)),
		BuyerState:    input.BuyerState,
		PlaceOfSupply: input.PlaceOfSupply,
		InterState:    preview.Resolution.InterState,
		Document:      preview.Document,
		PaidStatus:    domain.PaidStatusUnpaid,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *invoiceService) GetByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, domain.NewValidationError("number", "invoice number must not be empty")
	}
	return s.repo.GetByNumber(ctx, number)
}

func (s *invoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *invoiceService) UpdatePaidStatus(ctx context.Context, id uuid.UUID, status domain.PaidStatus) error {
	if !status.Valid() {
		return domain.NewValidationError("paid_status", "unknown status %q", status)
	}
	return s.repo.UpdatePaidStatus(ctx, id, status)
}

func (s *invoiceService) AmountInWords(ctx context.Context, id uuid.UUID) (string, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return numwords.Format(inv.Document.GrandTotal)
}

func (s *invoiceService) EWayBill(ctx context.Context, id uuid.UUID, transport domain.TransportDetails) (domain.EWayBillPayload, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.EWayBillPayload{}, err
	}
	return s.ewb.Build(inv, transport)
}
