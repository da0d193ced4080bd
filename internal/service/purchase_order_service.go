package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sivanandz/luminila-ERP-sub002/internal/config"
	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/port"
	"github.com/sivanandz/luminila-ERP-sub002/internal/tax"
)

// PurchaseOrderLineInput is the DTO for one vendor purchase line. GST here is
// a single combined figure; the CGST/SGST/IGST split only applies to sales.
type PurchaseOrderLineInput struct {
	Description string           `json:"description" binding:"required"`
	HSNCode     string           `json:"hsn_code"`
	Quantity    int64            `json:"quantity" binding:"required"`
	Unit        string           `json:"unit"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	GSTRate     *decimal.Decimal `json:"gst_rate"`
}

// PurchaseOrderInput is the DTO for previewing or finalizing a purchase order.
type PurchaseOrderInput struct {
	VendorName     string                   `json:"vendor_name"`
	OrderDate      *time.Time               `json:"order_date"`
	Lines          []PurchaseOrderLineInput `json:"lines"`
	ShippingCost   decimal.Decimal          `json:"shipping_cost"`
	DiscountAmount decimal.Decimal          `json:"discount_amount"`
}

// PurchaseOrderService defines the vendor purchase order contract.
type PurchaseOrderService interface {
	Preview(ctx context.Context, input PurchaseOrderInput) (*domain.PurchaseOrderTotals, error)
	Create(ctx context.Context, input PurchaseOrderInput) (*domain.PurchaseOrder, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error)
	List(ctx context.Context, offset, limit int) ([]domain.PurchaseOrder, int, error)
}

type purchaseOrderService struct {
	repo   port.PurchaseOrderRepository
	taxCfg *config.TaxConfig
}

// NewPurchaseOrderService creates a new PurchaseOrderService implementation.
func NewPurchaseOrderService(repo port.PurchaseOrderRepository, taxCfg *config.TaxConfig) PurchaseOrderService {
	return &purchaseOrderService{repo: repo, taxCfg: taxCfg}
}

func (s *purchaseOrderService) compute(input PurchaseOrderInput) (*domain.PurchaseOrderTotals, error) {
	if strings.TrimSpace(input.VendorName) == "" {
		return nil, domain.NewValidationError("vendor_name", "is required")
	}
	if len(input.Lines) == 0 {
		return nil, domain.NewValidationError("lines", "at least one line item is required")
	}

	lines := make([]domain.PurchaseOrderLine, 0, len(input.Lines))
	for _, l := range input.Lines {
		rate := s.taxCfg.DefaultGSTRate
		if l.GSTRate != nil {
			rate = *l.GSTRate
		}
		hsn := l.HSNCode
		if hsn == "" {
			hsn = s.taxCfg.DefaultHSNCode
		}
		line, err := tax.ComputePurchaseLine(tax.PurchaseLineInput{
			Description: l.Description,
			HSNCode:     hsn,
			Quantity:    l.Quantity,
			Unit:        l.Unit,
			UnitPrice:   l.UnitPrice,
			GSTRate:     rate,
		})
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	totals, err := tax.AggregatePurchase(lines, input.ShippingCost, input.DiscountAmount, s.taxCfg.RoundPurchaseOrders)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (s *purchaseOrderService) Preview(_ context.Context, input PurchaseOrderInput) (*domain.PurchaseOrderTotals, error) {
	return s.compute(input)
}

func (s *purchaseOrderService) Create(ctx context.Context, input PurchaseOrderInput) (*domain.PurchaseOrder, error) {
	totals, err := s.compute(input)
	if err != nil {
		return nil, err
	}

	number, err := s.repo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	orderDate := time.Now().UTC()
	if input.OrderDate != nil {
		orderDate = input.OrderDate.UTC()
	}

	po := &domain.PurchaseOrder{
		ID:         uuid.New(),
		PONumber:   number,
		OrderDate:  orderDate,
		VendorName: strings.TrimSpace(input.VendorName),
		Totals:     *totals,
	}
	if err := s.repo.Create(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

func (s *purchaseOrderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseOrder, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *purchaseOrderService) List(ctx context.Context, offset, limit int) ([]domain.PurchaseOrder, int, error) {
	return s.repo.List(ctx, offset, limit)
}
