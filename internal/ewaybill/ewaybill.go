// Package ewaybill assembles the transport-document payload for a finalized
// invoice. It prepares data for a later filing step; it never talks to the
// government API, signs nothing, and blocks nothing.
package ewaybill

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/states"
)

// An e-way bill stays valid one day per started 200 km of transport distance.
const kmPerValidityDay = 200

// Builder carries the supplier-side identity and the statutory value
// threshold above which an e-way bill is required.
type Builder struct {
	supplierGSTIN string
	supplierState string
	threshold     decimal.Decimal
}

// NewBuilder returns a Builder for the given supplier. stateCode must be a
// registered jurisdiction code.
func NewBuilder(supplierGSTIN, stateCode string, threshold decimal.Decimal) (*Builder, error) {
	if !states.IsValidCode(stateCode) {
		return nil, domain.NewValidationError("supplier_state", "unknown state code %q", stateCode)
	}
	return &Builder{
		supplierGSTIN: supplierGSTIN,
		supplierState: stateCode,
		threshold:     threshold,
	}, nil
}

// Build assembles the payload from a finalized invoice and transport
// details. The Required flag is informative: crossing the value threshold
// does not block document creation here, the filing step decides what to do
// with it.
func (b *Builder) Build(inv *domain.Invoice, transport domain.TransportDetails) (domain.EWayBillPayload, error) {
	if transport.DistanceKm <= 0 {
		return domain.EWayBillPayload{}, domain.NewValidationError("distance_km", "must be a positive distance, got %d", transport.DistanceKm)
	}
	if transport.VehicleType == "" {
		return domain.EWayBillPayload{}, domain.NewValidationError("vehicle_type", "is required")
	}

	items := make([]domain.EWayBillItem, 0, len(inv.Document.Lines))
	for i := range inv.Document.Lines {
		l := &inv.Document.Lines[i]
		items = append(items, domain.EWayBillItem{
			Description:   l.Description,
			HSNCode:       l.HSNCode,
			Quantity:      l.Quantity,
			Unit:          l.Unit,
			TaxableAmount: l.TaxableAmount,
			TaxRate:       l.TaxRate,
		})
	}

	validityDays := (transport.DistanceKm + kmPerValidityDay - 1) / kmPerValidityDay

	return domain.EWayBillPayload{
		InvoiceNumber:   inv.InvoiceNumber,
		InvoiceDate:     inv.InvoiceDate.Format("2006-01-02"),
		SupplierGSTIN:   b.supplierGSTIN,
		SupplierState:   b.supplierState,
		BuyerName:       inv.BuyerName,
		BuyerGSTIN:      inv.BuyerGSTIN,
		PlaceOfSupply:   inv.PlaceOfSupply,
		DistanceKm:      transport.DistanceKm,
		VehicleType:     transport.VehicleType,
		TransporterID:   transport.TransporterID,
		TransporterName: transport.TransporterName,
		VehicleNo:       transport.VehicleNo,
		LineItems:       items,
		TotalValue:      inv.Document.GrandTotal,
		Required:        inv.Document.GrandTotal.GreaterThanOrEqual(b.threshold),
		ValidityDays:    validityDays,
		ValidityNote:    fmt.Sprintf("valid for %d day(s) from generation for a transport distance of %d km", validityDays, transport.DistanceKm),
	}, nil
}
