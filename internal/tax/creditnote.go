package tax

import (
	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
)

// ReturnLine pairs an original invoice line with the quantity being returned.
// AlreadyReturned, when known, is the quantity previous credit notes already
// took back on that line; nil means the caller's ledger did not supply a
// figure and the requested quantity is trusted up to the original quantity.
type ReturnLine struct {
	Original        domain.ComputedLineItem
	Quantity        int64
	AlreadyReturned *int64
}

// MirrorLine recomputes one credit-note line at the returned quantity using
// the exact rates the original invoice charged. Rates are never re-resolved
// against current tables; a rate change between sale and return must not
// change what is reversed.
func MirrorLine(r ReturnLine) (domain.ComputedLineItem, error) {
	if r.Quantity <= 0 {
		return domain.ComputedLineItem{}, domain.NewValidationError("quantity", "return quantity must be a positive integer, got %d", r.Quantity)
	}
	available := r.Original.Quantity
	if r.AlreadyReturned != nil {
		available -= *r.AlreadyReturned
	}
	if r.Quantity > available {
		return domain.ComputedLineItem{}, domain.NewValidationError("quantity",
			"return quantity %d exceeds quantity available for return %d", r.Quantity, available)
	}

	draft := r.Original.LineItemDraft
	draft.Quantity = r.Quantity
	return computeWithRates(draft, r.Original.CGSTRate, r.Original.SGSTRate, r.Original.IGSTRate), nil
}

// MirrorDocument builds the credit-note document for a set of return lines.
// Credit notes carry no document-level discount or shipping of their own.
func MirrorDocument(returns []ReturnLine) (domain.ComputedDocument, error) {
	if len(returns) == 0 {
		return domain.ComputedDocument{}, domain.NewValidationError("lines", "credit note must have at least one line item")
	}
	lines := make([]domain.ComputedLineItem, 0, len(returns))
	for _, r := range returns {
		line, err := MirrorLine(r)
		if err != nil {
			return domain.ComputedDocument{}, err
		}
		lines = append(lines, line)
	}
	return Aggregate(lines, zero, zero)
}
