package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sivanandz/luminila-ERP-sub002/internal/config"
	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/ewaybill"
	"github.com/sivanandz/luminila-ERP-sub002/internal/service"
	"github.com/sivanandz/luminila-ERP-sub002/internal/tax"
	"github.com/sivanandz/luminila-ERP-sub002/mocks"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func testTaxConfig(t *testing.T) *config.TaxConfig {
	t.Helper()
	return &config.TaxConfig{
		SellerName:        "Luminila Jewellers",
		SellerGSTIN:       "27AAPFU0939F1ZV",
		SellerStateCode:   "27",
		DefaultGSTRate:    dec(t, "3"),
		DefaultHSNCode:    "7113",
		EWayBillThreshold: dec(t, "50000"),
	}
}

func setupInvoiceService(t *testing.T) (*mocks.MockInvoiceRepo, service.InvoiceService) {
	t.Helper()
	repo := new(mocks.MockInvoiceRepo)
	cfg := testTaxConfig(t)
	ewb, err := ewaybill.NewBuilder(cfg.SellerGSTIN, cfg.SellerStateCode, cfg.EWayBillThreshold)
	require.NoError(t, err)
	return repo, service.NewInvoiceService(repo, cfg, ewb)
}

func sampleInput(t *testing.T) service.InvoiceInput {
	t.Helper()
	rate := dec(t, "3")
	return service.InvoiceInput{
		BuyerName:  "Asha Traders",
		BuyerState: "27",
		Lines: []service.InvoiceLineInput{
			{
				Description:     "Gold ring",
				Quantity:        2,
				Unit:            "pcs",
				UnitPrice:       dec(t, "1000"),
				DiscountPercent: dec(t, "10"),
				TaxRate:         &rate,
			},
		},
	}
}

func TestInvoicePreview_IntraState(t *testing.T) {
	_, svc := setupInvoiceService(t)

	preview, err := svc.Preview(context.Background(), sampleInput(t))

	require.NoError(t, err)
	assert.False(t, preview.Resolution.InterState)
	assert.Equal(t, tax.SourceBuyerState, preview.Resolution.Source)
	assert.True(t, preview.Document.GrandTotal.Equal(dec(t, "1854")), "got %s", preview.Document.GrandTotal)
	assert.True(t, preview.Document.CGSTTotal.Equal(dec(t, "27")))
	assert.True(t, preview.Document.SGSTTotal.Equal(dec(t, "27")))
	assert.True(t, preview.Document.IGSTTotal.IsZero())
	assert.Equal(t, "One Thousand Eight Hundred Fifty Four Rupees Only", preview.AmountInWords)
}

func TestInvoicePreview_PlaceOfSupplyWins(t *testing.T) {
	_, svc := setupInvoiceService(t)

	input := sampleInput(t)
	input.BuyerState = "27"
	input.PlaceOfSupply = "29"

	preview, err := svc.Preview(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, preview.Resolution.InterState)
	assert.Equal(t, tax.SourcePlaceOfSupply, preview.Resolution.Source)
	assert.True(t, preview.Document.IGSTTotal.Equal(dec(t, "54")))
	assert.True(t, preview.Document.CGSTTotal.IsZero())
}

func TestInvoicePreview_AppliesDefaults(t *testing.T) {
	_, svc := setupInvoiceService(t)

	input := sampleInput(t)
	input.Lines[0].TaxRate = nil
	input.Lines[0].HSNCode = ""

	preview, err := svc.Preview(context.Background(), input)

	require.NoError(t, err)
	line := preview.Document.Lines[0]
	assert.Equal(t, "7113", line.HSNCode)
	assert.True(t, line.TaxRate.Equal(dec(t, "3")))
}

func TestInvoicePreview_Rejections(t *testing.T) {
	_, svc := setupInvoiceService(t)

	t.Run("missing buyer name", func(t *testing.T) {
		input := sampleInput(t)
		input.BuyerName = "  "
		_, err := svc.Preview(context.Background(), input)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("bad GSTIN", func(t *testing.T) {
		input := sampleInput(t)
		input.BuyerGSTIN = "27AAPFU0939F"
		_, err := svc.Preview(context.Background(), input)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("no lines", func(t *testing.T) {
		input := sampleInput(t)
		input.Lines = nil
		_, err := svc.Preview(context.Background(), input)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("negative quantity", func(t *testing.T) {
		input := sampleInput(t)
		input.Lines[0].Quantity = -1
		_, err := svc.Preview(context.Background(), input)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestInvoiceCreate_PersistsComputedDocument(t *testing.T) {
	repo, svc := setupInvoiceService(t)

	repo.On("NextNumber", mock.Anything).Return("INV-00042", nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.InvoiceNumber == "INV-00042" &&
			inv.PaidStatus == domain.PaidStatusUnpaid &&
			inv.Document.GrandTotal.Equal(decimal.NewFromInt(1854))
	})).Return(nil)

	inv, err := svc.Create(context.Background(), sampleInput(t))

	require.NoError(t, err)
	assert.Equal(t, "INV-00042", inv.InvoiceNumber)
	assert.NotEqual(t, uuid.Nil, inv.ID)
	repo.AssertExpectations(t)
}

func TestInvoiceCreate_ValidationSkipsPersistence(t *testing.T) {
	repo, svc := setupInvoiceService(t)

	input := sampleInput(t)
	input.Lines[0].DiscountPercent = dec(t, "150")

	_, err := svc.Create(context.Background(), input)

	assert.True(t, domain.IsValidation(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "NextNumber", mock.Anything)
}

func TestInvoiceEWayBill(t *testing.T) {
	repo, svc := setupInvoiceService(t)

	id := uuid.New()
	stored := &domain.Invoice{
		ID:            id,
		InvoiceNumber: "INV-00007",
		BuyerName:     "Asha Traders",
		PlaceOfSupply: "29",
		Document: domain.ComputedDocument{
			Lines: []domain.ComputedLineItem{{
				LineItemDraft: domain.LineItemDraft{Description: "Gold chain", Quantity: 1, Unit: "pcs"},
				TaxableAmount: decimal.NewFromInt(60000),
			}},
			GrandTotal: decimal.NewFromInt(61800),
		},
	}
	repo.On("GetByID", mock.Anything, id).Return(stored, nil)

	payload, err := svc.EWayBill(context.Background(), id, domain.TransportDetails{
		DistanceKm:  450,
		VehicleType: "regular",
	})

	require.NoError(t, err)
	assert.True(t, payload.Required)
	assert.Equal(t, 3, payload.ValidityDays)
	assert.Equal(t, "27AAPFU0939F1ZV", payload.SupplierGSTIN)
	assert.Len(t, payload.LineItems, 1)
}

func TestInvoiceAmountInWords(t *testing.T) {
	repo, svc := setupInvoiceService(t)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&domain.Invoice{
		ID:       id,
		Document: domain.ComputedDocument{GrandTotal: decimal.NewFromInt(100000)},
	}, nil)

	words, err := svc.AmountInWords(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "One Lakh Rupees Only", words)
}

func TestInvoiceGetByNumber(t *testing.T) {
	repo, svc := setupInvoiceService(t)

	stored := &domain.Invoice{ID: uuid.New(), InvoiceNumber: "INV-00042"}
	repo.On("GetByNumber", mock.Anything, "INV-00042").Return(stored, nil)

	inv, err := svc.GetByNumber(context.Background(), "  INV-00042  ")
	require.NoError(t, err)
	assert.Equal(t, "INV-00042", inv.InvoiceNumber)

	_, err = svc.GetByNumber(context.Background(), "   ")
	assert.True(t, domain.IsValidation(err))
}

func TestInvoiceUpdatePaidStatus_UnknownStatus(t *testing.T) {
	repo, svc := setupInvoiceService(t)

	err := svc.UpdatePaidStatus(context.Background(), uuid.New(), "settled")

	assert.True(t, domain.IsValidation(err))
	repo.AssertNotCalled(t, "UpdatePaidStatus", mock.Anything, mock.Anything, mock.Anything)
}
