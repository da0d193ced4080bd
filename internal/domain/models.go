package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemDraft is the raw, editable form of one invoice line as entered in
// the UI. All monetary fields are in rupees.
type LineItemDraft struct {
	Description     string          `json:"description"`
	HSNCode         string          `json:"hsn_code"`
	Quantity        int64           `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
}

// ComputedLineItem is a draft plus every derived monetary figure. It is never
// edited by hand; any change to the draft recomputes the whole line.
type ComputedLineItem struct {
	LineItemDraft

	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	CGSTRate       decimal.Decimal `json:"cgst_rate"`
	CGSTAmount     decimal.Decimal `json:"cgst_amount"`
	SGSTRate       decimal.Decimal `json:"sgst_rate"`
	SGSTAmount     decimal.Decimal `json:"sgst_amount"`
	IGSTRate       decimal.Decimal `json:"igst_rate"`
	IGSTAmount     decimal.Decimal `json:"igst_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// TotalTax returns the summed tax on the line across both split shapes.
func (l *ComputedLineItem) TotalTax() decimal.Decimal {
	return l.CGSTAmount.Add(l.SGSTAmount).Add(l.IGSTAmount)
}

// ComputedDocument holds document-level totals over a set of computed lines.
// Once persisted it is immutable; corrections happen via a credit note.
type ComputedDocument struct {
	Lines          []ComputedLineItem `json:"lines"`
	TaxableValue   decimal.Decimal    `json:"taxable_value"`
	CGSTTotal      decimal.Decimal    `json:"cgst_total"`
	SGSTTotal      decimal.Decimal    `json:"sgst_total"`
	IGSTTotal      decimal.Decimal    `json:"igst_total"`
	TotalTax       decimal.Decimal    `json:"total_tax"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	Shipping       decimal.Decimal    `json:"shipping_charges"`
	RoundOff       decimal.Decimal    `json:"round_off"`
	GrandTotal     decimal.Decimal    `json:"grand_total"`
}

// PurchaseOrderTotals is the simplified aggregate used for vendor purchases:
// a single combined GST figure, no CGST/SGST/IGST split.
type PurchaseOrderTotals struct {
	Lines     []PurchaseOrderLine `json:"lines"`
	Subtotal  decimal.Decimal     `json:"subtotal"`
	GSTAmount decimal.Decimal     `json:"gst_amount"`
	Shipping  decimal.Decimal     `json:"shipping_cost"`
	Discount  decimal.Decimal     `json:"discount_amount"`
	RoundOff  decimal.Decimal     `json:"round_off"`
	Total     decimal.Decimal     `json:"total"`
}

// PurchaseOrderLine is one computed vendor purchase line.
type PurchaseOrderLine struct {
	Description string          `json:"description"`
	HSNCode     string          `json:"hsn_code"`
	Quantity    int64           `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
	GSTAmount   decimal.Decimal `json:"gst_amount"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// Invoice is a finalized sales invoice as persisted. Document is written once
// and never mutated; reversal happens through a credit note referencing it.
type Invoice struct {
	ID            uuid.UUID        `db:"id" json:"id"`
	InvoiceNumber string           `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   time.Time        `db:"invoice_date" json:"invoice_date"`
	BuyerName     string           `db:"buyer_name" json:"buyer_name"`
	BuyerGSTIN    string           `db:"buyer_gstin" json:"buyer_gstin"`
	BuyerState    string           `db:"buyer_state" json:"buyer_state"`
	PlaceOfSupply string           `db:"place_of_supply" json:"place_of_supply"`
	InterState    bool             `db:"inter_state" json:"inter_state"`
	Document      ComputedDocument `db:"-" json:"document"`
	PaidStatus    PaidStatus       `db:"paid_status" json:"paid_status"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
}

// CreditNote reverses part or all of a prior invoice. Tax treatment on its
// lines mirrors what the original invoice charged.
type CreditNote struct {
	ID               uuid.UUID        `db:"id" json:"id"`
	CreditNoteNumber string           `db:"credit_note_number" json:"credit_note_number"`
	InvoiceID        uuid.UUID        `db:"invoice_id" json:"invoice_id"`
	Reason           string           `db:"reason" json:"reason"`
	Status           CreditNoteStatus `db:"status" json:"status"`
	Document         ComputedDocument `db:"-" json:"document"`
	// LineSources maps each entry of Document.Lines, by position, to the
	// index of the invoice line it reverses. Stock restoration is keyed on
	// these stored indexes, never re-derived from line contents.
	LineSources []int `db:"-" json:"line_sources"`
	RefundMethod     string           `db:"refund_method" json:"refund_method"`
	RefundReference  string           `db:"refund_reference" json:"refund_reference"`
	CreatedAt        time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at" json:"updated_at"`
}

// PurchaseOrder is a finalized vendor purchase order.
type PurchaseOrder struct {
	ID         uuid.UUID           `db:"id" json:"id"`
	PONumber   string              `db:"po_number" json:"po_number"`
	OrderDate  time.Time           `db:"order_date" json:"order_date"`
	VendorName string              `db:"vendor_name" json:"vendor_name"`
	Totals     PurchaseOrderTotals `db:"-" json:"totals"`
	CreatedAt  time.Time           `db:"created_at" json:"created_at"`
}

// TransportDetails is the transporter-side input for an e-way bill.
type TransportDetails struct {
	DistanceKm      int    `json:"distance_km"`
	VehicleType     string `json:"vehicle_type"`
	TransporterID   string `json:"transporter_id,omitempty"`
	TransporterName string `json:"transporter_name,omitempty"`
	VehicleNo       string `json:"vehicle_no,omitempty"`
}

// EWayBillItem is the line-item subset carried on an e-way bill payload.
type EWayBillItem struct {
	Description   string          `json:"description"`
	HSNCode       string          `json:"hsn_code"`
	Quantity      int64           `json:"quantity"`
	Unit          string          `json:"unit"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
}

// EWayBillPayload is the JSON-serializable transport document prepared for a
// later filing step. The engine never submits it anywhere.
type EWayBillPayload struct {
	InvoiceNumber   string          `json:"invoice_number"`
	InvoiceDate     string          `json:"invoice_date"`
	SupplierGSTIN   string          `json:"supplier_gstin"`
	SupplierState   string          `json:"supplier_state"`
	BuyerName       string          `json:"buyer_name"`
	BuyerGSTIN      string          `json:"buyer_gstin,omitempty"`
	PlaceOfSupply   string          `json:"place_of_supply"`
	DistanceKm      int             `json:"distance_km"`
	VehicleType     string          `json:"vehicle_type"`
	TransporterID   string          `json:"transporter_id,omitempty"`
	TransporterName string          `json:"transporter_name,omitempty"`
	VehicleNo       string          `json:"vehicle_no,omitempty"`
	LineItems       []EWayBillItem  `json:"line_items"`
	TotalValue      decimal.Decimal `json:"total_value"`
	Required        bool            `json:"required"`
	ValidityDays    int             `json:"validity_days"`
	ValidityNote    string          `json:"validity_note"`
}
