package tax

import (
	"github.com/shopspring/decimal"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
)

// Aggregate sums computed lines into document totals, applies the
// document-level discount and shipping charges, and reconciles the rounded
// grand total through a single round-off residual. The grand total is always
// whole rupees and |round_off| < 1.
func Aggregate(lines []domain.ComputedLineItem, discount, shipping decimal.Decimal) (domain.ComputedDocument, error) {
	if len(lines) == 0 {
		return domain.ComputedDocument{}, domain.NewValidationError("lines", "document must have at least one line item")
	}
	if discount.IsNegative() {
		return domain.ComputedDocument{}, domain.NewValidationError("discount_amount", "must not be negative, got %s", discount)
	}
	if shipping.IsNegative() {
		return domain.ComputedDocument{}, domain.NewValidationError("shipping_charges", "must not be negative, got %s", shipping)
	}

	doc := domain.ComputedDocument{
		Lines:          lines,
		DiscountAmount: discount,
		Shipping:       shipping,
	}
	for i := range lines {
		l := &lines[i]
		doc.TaxableValue = doc.TaxableValue.Add(l.TaxableAmount)
		doc.CGSTTotal = doc.CGSTTotal.Add(l.CGSTAmount)
		doc.SGSTTotal = doc.SGSTTotal.Add(l.SGSTAmount)
		doc.IGSTTotal = doc.IGSTTotal.Add(l.IGSTAmount)
	}
	doc.TotalTax = doc.CGSTTotal.Add(doc.SGSTTotal).Add(doc.IGSTTotal)

	unrounded := doc.TaxableValue.Add(doc.TotalTax).Sub(discount).Add(shipping)
	if unrounded.IsNegative() {
		return domain.ComputedDocument{}, domain.NewValidationError("discount_amount", "discount exceeds document value")
	}
	doc.GrandTotal = roundRupee(unrounded)
	doc.RoundOff = doc.GrandTotal.Sub(unrounded)
	return doc, nil
}

// ComputeDocument recomputes a whole invoice from its drafts. Every edit goes
// through here again; nothing is patched incrementally, which is what keeps
// the document invariants true after every keystroke.
func ComputeDocument(drafts []domain.LineItemDraft, interState bool, discount, shipping decimal.Decimal) (domain.ComputedDocument, error) {
	lines := make([]domain.ComputedLineItem, 0, len(drafts))
	for _, d := range drafts {
		line, err := ComputeLine(d, interState)
		if err != nil {
			return domain.ComputedDocument{}, err
		}
		lines = append(lines, line)
	}
	return Aggregate(lines, discount, shipping)
}
