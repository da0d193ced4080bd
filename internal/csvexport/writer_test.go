package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivanandz/luminila-ERP-sub002/internal/csvexport"
	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/tax"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleInvoice(t *testing.T) domain.Invoice {
	t.Helper()
	doc, err := tax.ComputeDocument([]domain.LineItemDraft{
		{Description: "Gold chain 22k", HSNCode: "7113", Quantity: 2, Unit: "pcs",
			UnitPrice: dec("1000"), DiscountPercent: dec("10"), TaxRate: dec("3")},
	}, false, dec("0"), dec("0"))
	require.NoError(t, err)

	return domain.Invoice{
		InvoiceNumber: "INV-2026-0001",
		InvoiceDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		BuyerName:     "Sharma Traders",
		BuyerGSTIN:    "27AAPFU0939F1ZV",
		PlaceOfSupply: "27",
		InterState:    false,
		Document:      doc,
		PaidStatus:    domain.PaidStatusPaid,
	}
}

func export(t *testing.T, invoices []domain.Invoice) [][]string {
	t.Helper()
	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteInvoices(invoices))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriter_HeaderAndRow(t *testing.T) {
	records := export(t, []domain.Invoice{sampleInvoice(t)})
	require.Len(t, records, 2)

	assert.Equal(t, csvexport.Header(), records[0])

	row := records[1]
	assert.Equal(t, "INV-2026-0001", row[0])
	assert.Equal(t, "2026-04-01", row[1])
	assert.Equal(t, "Sharma Traders", row[2])
	assert.Equal(t, "No", row[5])
	assert.Equal(t, "1800.00", row[6])
	assert.Equal(t, "27.00", row[7])
	assert.Equal(t, "27.00", row[8])
	assert.Equal(t, "0.00", row[9])
	assert.Equal(t, "1854.00", row[11])
	assert.Equal(t, "paid", row[12])
}

func TestWriter_OneRowPerDocument(t *testing.T) {
	a := sampleInvoice(t)
	b := sampleInvoice(t)
	b.InvoiceNumber = "INV-2026-0002"
	b.PaidStatus = domain.PaidStatusUnpaid

	records := export(t, []domain.Invoice{a, b})
	require.Len(t, records, 3)
	assert.Equal(t, "INV-2026-0001", records[1][0])
	assert.Equal(t, "INV-2026-0002", records[2][0])
	assert.Equal(t, "unpaid", records[2][12])
}

func TestWriter_CommaInBuyerNameIsQuoted(t *testing.T) {
	inv := sampleInvoice(t)
	inv.BuyerName = "Sharma, Verma & Sons"

	records := export(t, []domain.Invoice{inv})
	assert.Equal(t, "Sharma, Verma & Sons", records[1][2])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"April Invoices", "April_Invoices"},
		{"a/b\\c:d", "a_b_c_d"},
		{"__already__clean__", "already_clean"},
		{strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, csvexport.SanitizeFilename(tt.in))
	}
}

func TestBuildFilename(t *testing.T) {
	name := csvexport.BuildFilename("invoices", "csv")
	assert.True(t, strings.HasPrefix(name, "invoices_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}
