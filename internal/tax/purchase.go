package tax

import (
	"github.com/shopspring/decimal"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
)

// PurchaseLineInput is the raw form of one vendor purchase line. Purchases
// carry a single combined GST rate; there is no CGST/SGST/IGST split on the
// buying side of this system.
type PurchaseLineInput struct {
	Description string          `json:"description"`
	HSNCode     string          `json:"hsn_code"`
	Quantity    int64           `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
}

// ComputePurchaseLine computes one purchase order line.
func ComputePurchaseLine(in PurchaseLineInput) (domain.PurchaseOrderLine, error) {
	switch {
	case in.Quantity <= 0:
		return domain.PurchaseOrderLine{}, domain.NewValidationError("quantity", "must be a positive integer, got %d", in.Quantity)
	case in.UnitPrice.IsNegative():
		return domain.PurchaseOrderLine{}, domain.NewValidationError("unit_price", "must not be negative, got %s", in.UnitPrice)
	case in.GSTRate.IsNegative():
		return domain.PurchaseOrderLine{}, domain.NewValidationError("gst_rate", "must not be negative, got %s", in.GSTRate)
	}

	gross := in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity))
	gst := round2(gross.Mul(in.GSTRate).Div(hundred))
	return domain.PurchaseOrderLine{
		Description: in.Description,
		HSNCode:     in.HSNCode,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		UnitPrice:   in.UnitPrice,
		GSTRate:     in.GSTRate,
		GSTAmount:   gst,
		TotalPrice:  gross.Add(gst),
	}, nil
}

// AggregatePurchase sums purchase lines into order totals. Historically
// purchase orders were not rounded to whole rupees the way invoices are;
// roundTotal opts in to the invoice rounding policy, leaving the legacy
// behavior (zero round-off, exact total) as the default.
func AggregatePurchase(lines []domain.PurchaseOrderLine, shipping, discount decimal.Decimal, roundTotal bool) (domain.PurchaseOrderTotals, error) {
	if len(lines) == 0 {
		return domain.PurchaseOrderTotals{}, domain.NewValidationError("lines", "purchase order must have at least one line item")
	}
	if shipping.IsNegative() {
		return domain.PurchaseOrderTotals{}, domain.NewValidationError("shipping_cost", "must not be negative, got %s", shipping)
	}
	if discount.IsNegative() {
		return domain.PurchaseOrderTotals{}, domain.NewValidationError("discount_amount", "must not be negative, got %s", discount)
	}

	totals := domain.PurchaseOrderTotals{
		Lines:    lines,
		Shipping: shipping,
		Discount: discount,
	}
	for i := range lines {
		l := &lines[i]
		totals.Subtotal = totals.Subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
		totals.GSTAmount = totals.GSTAmount.Add(l.GSTAmount)
	}

	total := totals.Subtotal.Add(totals.GSTAmount).Add(shipping).Sub(discount)
	if total.IsNegative() {
		return domain.PurchaseOrderTotals{}, domain.NewValidationError("discount_amount", "discount exceeds order value")
	}
	if roundTotal {
		totals.Total = roundRupee(total)
		totals.RoundOff = totals.Total.Sub(total)
	} else {
		totals.Total = total
	}
	return totals, nil
}
