package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/tax"
)

func mustLine(t *testing.T, d domain.LineItemDraft, interState bool) domain.ComputedLineItem {
	t.Helper()
	line, err := tax.ComputeLine(d, interState)
	require.NoError(t, err)
	return line
}

func TestAggregate_Scenario(t *testing.T) {
	// two intra-state lines: taxable 2000 + 1000, tax 60 + 30
	l1 := mustLine(t, domain.LineItemDraft{
		Description: "Bangle", HSNCode: "7113", Quantity: 1, Unit: "pcs",
		UnitPrice: dec("2000"), TaxRate: dec("3"),
	}, false)
	l2 := mustLine(t, domain.LineItemDraft{
		Description: "Ring", HSNCode: "7113", Quantity: 1, Unit: "pcs",
		UnitPrice: dec("1000"), TaxRate: dec("3"),
	}, false)

	doc, err := tax.Aggregate([]domain.ComputedLineItem{l1, l2}, dec("0"), dec("25"))
	require.NoError(t, err)

	assertDec(t, "3000", doc.TaxableValue)
	assertDec(t, "45", doc.CGSTTotal)
	assertDec(t, "45", doc.SGSTTotal)
	assertDec(t, "0", doc.IGSTTotal)
	assertDec(t, "90", doc.TotalTax)
	assertDec(t, "0", doc.RoundOff)
	assertDec(t, "3115", doc.GrandTotal)
}

func TestAggregate_RoundOffResidual(t *testing.T) {
	l := mustLine(t, domain.LineItemDraft{
		Description: "Chain", HSNCode: "7113", Quantity: 1, Unit: "pcs",
		UnitPrice: dec("100.30"), TaxRate: dec("5"),
	}, false)

	doc, err := tax.Aggregate([]domain.ComputedLineItem{l}, dec("0"), dec("0"))
	require.NoError(t, err)

	// 100.30 + 2.51 + 2.51 = 105.32 → rounds down to 105
	assertDec(t, "105", doc.GrandTotal)
	assertDec(t, "-0.32", doc.RoundOff)
	assert.True(t, doc.RoundOff.Abs().LessThan(dec("1")))
	assert.True(t, doc.GrandTotal.Equal(doc.GrandTotal.Truncate(0)), "grand total must be whole rupees")
}

func TestAggregate_RoundOffUpward(t *testing.T) {
	l := mustLine(t, domain.LineItemDraft{
		Description: "Chain", HSNCode: "7113", Quantity: 1, Unit: "pcs",
		UnitPrice: dec("100.60"), TaxRate: dec("5"),
	}, false)

	doc, err := tax.Aggregate([]domain.ComputedLineItem{l}, dec("0"), dec("0"))
	require.NoError(t, err)

	// 100.60 + 2.52 + 2.52 = 105.64 → rounds up to 106
	assertDec(t, "106", doc.GrandTotal)
	assertDec(t, "0.36", doc.RoundOff)
}

func TestAggregate_EmptyRejected(t *testing.T) {
	_, err := tax.Aggregate(nil, dec("0"), dec("0"))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestAggregate_NegativeFiguresRejected(t *testing.T) {
	l := mustLine(t, domain.LineItemDraft{
		Description: "Ring", HSNCode: "7113", Quantity: 1, Unit: "pcs",
		UnitPrice: dec("1000"), TaxRate: dec("3"),
	}, false)
	lines := []domain.ComputedLineItem{l}

	_, err := tax.Aggregate(lines, dec("-1"), dec("0"))
	assert.True(t, domain.IsValidation(err))

	_, err = tax.Aggregate(lines, dec("0"), dec("-1"))
	assert.True(t, domain.IsValidation(err))

	_, err = tax.Aggregate(lines, dec("99999"), dec("0"))
	assert.True(t, domain.IsValidation(err), "discount exceeding document value")
}

func TestComputeDocument_WholeDocumentRecompute(t *testing.T) {
	drafts := []domain.LineItemDraft{
		{Description: "Bangle", HSNCode: "7113", Quantity: 2, Unit: "pcs", UnitPrice: dec("1000"), DiscountPercent: dec("10"), TaxRate: dec("3")},
	}

	doc, err := tax.ComputeDocument(drafts, false, dec("0"), dec("0"))
	require.NoError(t, err)
	assertDec(t, "1854", doc.GrandTotal)

	// same drafts against a different jurisdiction: split moves, totals hold
	interDoc, err := tax.ComputeDocument(drafts, true, dec("0"), dec("0"))
	require.NoError(t, err)
	assert.True(t, doc.GrandTotal.Equal(interDoc.GrandTotal))
	assert.True(t, interDoc.CGSTTotal.IsZero())
	assertDec(t, "54", interDoc.IGSTTotal)
}

func TestComputeDocument_Idempotent(t *testing.T) {
	drafts := []domain.LineItemDraft{
		{Description: "Chain", HSNCode: "7113", Quantity: 3, Unit: "pcs", UnitPrice: dec("333.33"), DiscountPercent: dec("2.5"), TaxRate: dec("18")},
	}
	a, err := tax.ComputeDocument(drafts, true, dec("10"), dec("49.50"))
	require.NoError(t, err)
	b, err := tax.ComputeDocument(drafts, true, dec("10"), dec("49.50"))
	require.NoError(t, err)

	assert.Equal(t, a.GrandTotal.String(), b.GrandTotal.String())
	assert.Equal(t, a.RoundOff.String(), b.RoundOff.String())
	assert.Equal(t, a.TotalTax.String(), b.TotalTax.String())
}
