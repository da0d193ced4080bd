package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/tax"
)

func poLine(t *testing.T, in tax.PurchaseLineInput) domain.PurchaseOrderLine {
	t.Helper()
	line, err := tax.ComputePurchaseLine(in)
	require.NoError(t, err)
	return line
}

func TestComputePurchaseLine(t *testing.T) {
	line := poLine(t, tax.PurchaseLineInput{
		Description: "Raw silver", HSNCode: "7106", Quantity: 4, Unit: "kg",
		UnitPrice: dec("250"), GSTRate: dec("3"),
	})

	// single combined rate, no split
	assertDec(t, "30", line.GSTAmount)
	assertDec(t, "1030", line.TotalPrice)
}

func TestComputePurchaseLine_Rounding(t *testing.T) {
	line := poLine(t, tax.PurchaseLineInput{
		Description: "Findings", HSNCode: "7113", Quantity: 1, Unit: "pcs",
		UnitPrice: dec("33.33"), GSTRate: dec("5"),
	})
	// 33.33 * 5% = 1.6665 → 1.67
	assertDec(t, "1.67", line.GSTAmount)
	assertDec(t, "35.00", line.TotalPrice)
}

func TestComputePurchaseLine_Rejections(t *testing.T) {
	_, err := tax.ComputePurchaseLine(tax.PurchaseLineInput{Quantity: 0, UnitPrice: dec("1"), GSTRate: dec("5")})
	assert.True(t, domain.IsValidation(err))

	_, err = tax.ComputePurchaseLine(tax.PurchaseLineInput{Quantity: 1, UnitPrice: dec("-1"), GSTRate: dec("5")})
	assert.True(t, domain.IsValidation(err))

	_, err = tax.ComputePurchaseLine(tax.PurchaseLineInput{Quantity: 1, UnitPrice: dec("1"), GSTRate: dec("-5")})
	assert.True(t, domain.IsValidation(err))
}

func TestAggregatePurchase_Unrounded(t *testing.T) {
	lines := []domain.PurchaseOrderLine{
		poLine(t, tax.PurchaseLineInput{Description: "Raw silver", HSNCode: "7106", Quantity: 4, Unit: "kg", UnitPrice: dec("250"), GSTRate: dec("3")}),
		poLine(t, tax.PurchaseLineInput{Description: "Findings", HSNCode: "7113", Quantity: 1, Unit: "pcs", UnitPrice: dec("33.33"), GSTRate: dec("5")}),
	}

	totals, err := tax.AggregatePurchase(lines, dec("50"), dec("10"), false)
	require.NoError(t, err)

	assertDec(t, "1033.33", totals.Subtotal)
	assertDec(t, "31.67", totals.GSTAmount)
	// legacy behavior: exact total, no round-off
	assertDec(t, "1105.00", totals.Total)
	assertDec(t, "0", totals.RoundOff)
}

func TestAggregatePurchase_OptInRounding(t *testing.T) {
	lines := []domain.PurchaseOrderLine{
		poLine(t, tax.PurchaseLineInput{Description: "Findings", HSNCode: "7113", Quantity: 1, Unit: "pcs", UnitPrice: dec("33.33"), GSTRate: dec("5")}),
	}

	totals, err := tax.AggregatePurchase(lines, dec("0"), dec("0"), true)
	require.NoError(t, err)

	// 33.33 + 1.67 = 35.00, already whole
	assertDec(t, "35", totals.Total)
	assertDec(t, "0", totals.RoundOff)

	lines[0].GSTAmount = dec("1.37") // force a fractional total
	lines[0].TotalPrice = dec("34.70")
	totals, err = tax.AggregatePurchase(lines, dec("0"), dec("0"), true)
	require.NoError(t, err)
	assertDec(t, "35", totals.Total)
	assertDec(t, "0.30", totals.RoundOff)
}

func TestAggregatePurchase_Rejections(t *testing.T) {
	_, err := tax.AggregatePurchase(nil, dec("0"), dec("0"), false)
	assert.True(t, domain.IsValidation(err))

	line := poLine(t, tax.PurchaseLineInput{Description: "Raw silver", HSNCode: "7106", Quantity: 1, Unit: "kg", UnitPrice: dec("100"), GSTRate: dec("3")})
	_, err = tax.AggregatePurchase([]domain.PurchaseOrderLine{line}, dec("-1"), dec("0"), false)
	assert.True(t, domain.IsValidation(err))

	_, err = tax.AggregatePurchase([]domain.PurchaseOrderLine{line}, dec("0"), dec("9999"), false)
	assert.True(t, domain.IsValidation(err))
}
