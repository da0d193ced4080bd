package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/service"
	"github.com/sivanandz/luminila-ERP-sub002/mocks"
)

func setupPurchaseOrderService(t *testing.T, roundTotals bool) (*mocks.MockPurchaseOrderRepo, service.PurchaseOrderService) {
	t.Helper()
	repo := new(mocks.MockPurchaseOrderRepo)
	cfg := testTaxConfig(t)
	cfg.RoundPurchaseOrders = roundTotals
	return repo, service.NewPurchaseOrderService(repo, cfg)
}

func poInput(t *testing.T) service.PurchaseOrderInput {
	t.Helper()
	threeP := dec(t, "3")
	fiveP := dec(t, "5")
	return service.PurchaseOrderInput{
		VendorName:     "Surat Gold Supplies",
		ShippingCost:   dec(t, "50"),
		DiscountAmount: dec(t, "10"),
		Lines: []service.PurchaseOrderLineInput{
			{Description: "22k blanks", Quantity: 4, Unit: "pcs", UnitPrice: dec(t, "250"), GSTRate: &threeP},
			{Description: "Clasps", Quantity: 1, Unit: "pcs", UnitPrice: dec(t, "33.33"), GSTRate: &fiveP},
		},
	}
}

func TestPurchaseOrderPreview_UnroundedByDefault(t *testing.T) {
	_, svc := setupPurchaseOrderService(t, false)

	totals, err := svc.Preview(context.Background(), poInput(t))

	require.NoError(t, err)
	assert.True(t, totals.Subtotal.Equal(dec(t, "1033.33")), "got %s", totals.Subtotal)
	assert.True(t, totals.GSTAmount.Equal(dec(t, "31.67")), "got %s", totals.GSTAmount)
	assert.True(t, totals.RoundOff.IsZero())
	assert.True(t, totals.Total.Equal(dec(t, "1105.00")), "got %s", totals.Total)
}

func TestPurchaseOrderPreview_RoundingOptIn(t *testing.T) {
	_, svc := setupPurchaseOrderService(t, true)

	input := poInput(t)
	input.DiscountAmount = dec(t, "10.40")

	totals, err := svc.Preview(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, totals.Total.Equal(dec(t, "1105")), "got %s", totals.Total)
	assert.True(t, totals.RoundOff.Equal(dec(t, "0.40")), "got %s", totals.RoundOff)
}

func TestPurchaseOrderPreview_Rejections(t *testing.T) {
	_, svc := setupPurchaseOrderService(t, false)

	t.Run("missing vendor", func(t *testing.T) {
		input := poInput(t)
		input.VendorName = ""
		_, err := svc.Preview(context.Background(), input)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("no lines", func(t *testing.T) {
		input := poInput(t)
		input.Lines = nil
		_, err := svc.Preview(context.Background(), input)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("negative shipping", func(t *testing.T) {
		input := poInput(t)
		input.ShippingCost = dec(t, "-1")
		_, err := svc.Preview(context.Background(), input)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestPurchaseOrderCreate(t *testing.T) {
	repo, svc := setupPurchaseOrderService(t, false)

	repo.On("NextNumber", mock.Anything).Return("PO-00009", nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(po *domain.PurchaseOrder) bool {
		return po.PONumber == "PO-00009" && po.Totals.Total.Equal(dec(t, "1105.00"))
	})).Return(nil)

	po, err := svc.Create(context.Background(), poInput(t))

	require.NoError(t, err)
	assert.Equal(t, "PO-00009", po.PONumber)
	assert.Equal(t, "Surat Gold Supplies", po.VendorName)
	repo.AssertExpectations(t)
}

func TestPurchaseOrderCreate_AppliesRateDefault(t *testing.T) {
	repo, svc := setupPurchaseOrderService(t, false)

	repo.On("NextNumber", mock.Anything).Return("PO-00010", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PurchaseOrder")).Return(nil)

	input := poInput(t)
	input.Lines = input.Lines[:1]
	input.Lines[0].GSTRate = nil

	po, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, po.Totals.Lines[0].GSTRate.Equal(dec(t, "3")))
}
