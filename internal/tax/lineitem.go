package tax

import (
	"github.com/shopspring/decimal"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
)

var two = decimal.NewFromInt(2)

// ComputeLine turns a draft line into its fully computed form. It is pure and
// idempotent: identical drafts yield identical decimals. Out-of-range input
// is rejected with a ValidationError rather than clamped, so a bad draft can
// never reach a persisted document.
//
// Discount applies before tax: the tax base is the post-discount taxable
// value. That ordering is a statutory requirement.
//
// Each tax component rounds independently, so at half-paise edges the
// CGST+SGST split can land one paisa below the equivalent IGST (taxable 0.50
// at 5%: IGST 0.03, split 0.01+0.01). The jurisdiction-invariance of the tax
// sum therefore holds only up to one rounding unit per line.
func ComputeLine(d domain.LineItemDraft, interState bool) (domain.ComputedLineItem, error) {
	if err := validateDraft(&d); err != nil {
		return domain.ComputedLineItem{}, err
	}

	var cgstRate, sgstRate, igstRate decimal.Decimal
	if interState {
		igstRate = d.TaxRate
	} else {
		cgstRate = d.TaxRate.Div(two)
		sgstRate = cgstRate
	}
	return computeWithRates(d, cgstRate, sgstRate, igstRate), nil
}

func validateDraft(d *domain.LineItemDraft) error {
	switch {
	case d.Quantity <= 0:
		return domain.NewValidationError("quantity", "must be a positive integer, got %d", d.Quantity)
	case d.UnitPrice.IsNegative():
		return domain.NewValidationError("unit_price", "must not be negative, got %s", d.UnitPrice)
	case d.DiscountPercent.IsNegative() || d.DiscountPercent.GreaterThan(hundred):
		return domain.NewValidationError("discount_percent", "must be between 0 and 100, got %s", d.DiscountPercent)
	case d.TaxRate.IsNegative():
		return domain.NewValidationError("tax_rate", "must not be negative, got %s", d.TaxRate)
	}
	return nil
}

// computeWithRates derives every monetary field of a line from the draft and
// an already-decided rate split. Exactly one of the cgst/sgst pair and igst
// may be non-zero; callers own that invariant.
func computeWithRates(d domain.LineItemDraft, cgstRate, sgstRate, igstRate decimal.Decimal) domain.ComputedLineItem {
	gross := d.UnitPrice.Mul(decimal.NewFromInt(d.Quantity))
	discount := round2(gross.Mul(d.DiscountPercent).Div(hundred))
	taxable := round2(gross.Sub(discount))

	cgst := round2(taxable.Mul(cgstRate).Div(hundred))
	sgst := round2(taxable.Mul(sgstRate).Div(hundred))
	igst := round2(taxable.Mul(igstRate).Div(hundred))

	return domain.ComputedLineItem{
		LineItemDraft:  d,
		DiscountAmount: discount,
		TaxableAmount:  taxable,
		CGSTRate:       cgstRate,
		CGSTAmount:     cgst,
		SGSTRate:       sgstRate,
		SGSTAmount:     sgst,
		IGSTRate:       igstRate,
		IGSTAmount:     igst,
		TotalAmount:    taxable.Add(cgst).Add(sgst).Add(igst),
	}
}
