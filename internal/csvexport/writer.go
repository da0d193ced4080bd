package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (13 columns).
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Buyer Name",
	"Buyer GSTIN",
	"Place of Supply",
	"Inter State",
	"Taxable Value",
	"CGST",
	"SGST",
	"IGST",
	"Round Off",
	"Grand Total",
	"Paid Status",
}

// Writer wraps csv.Writer for exporting finalized invoices as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts a batch of invoices to CSV rows and writes them,
// one row per document.
func (w *Writer) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		if err := w.csv.Write(invoiceToRow(&invoices[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// InvoiceRow converts one invoice to its export row. Shared with the XLSX
// export so both formats stay column-for-column identical.
func InvoiceRow(inv *domain.Invoice) []string {
	return invoiceToRow(inv)
}

func invoiceToRow(inv *domain.Invoice) []string {
	row := make([]string, len(columns))
	row[0] = inv.InvoiceNumber
	row[1] = inv.InvoiceDate.Format("2006-01-02")
	row[2] = inv.BuyerName
	row[3] = inv.BuyerGSTIN
	row[4] = inv.PlaceOfSupply
	row[5] = formatBool(inv.InterState)
	row[6] = formatMoney(inv.Document.TaxableValue)
	row[7] = formatMoney(inv.Document.CGSTTotal)
	row[8] = formatMoney(inv.Document.SGSTTotal)
	row[9] = formatMoney(inv.Document.IGSTTotal)
	row[10] = formatMoney(inv.Document.RoundOff)
	row[11] = formatMoney(inv.Document.GrandTotal)
	row[12] = string(inv.PaidStatus)
	return row
}

func formatMoney(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Header returns a copy of the header row.
func Header() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), time.Now().Format("2006-01-02"), ext)
}
