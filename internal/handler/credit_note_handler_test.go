package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/handler"
	"github.com/sivanandz/luminila-ERP-sub002/internal/service"
	"github.com/sivanandz/luminila-ERP-sub002/mocks"
)

func newCreditNoteHandler() (*handler.CreditNoteHandler, *mocks.MockCreditNoteService) {
	mockSvc := new(mocks.MockCreditNoteService)
	h := handler.NewCreditNoteHandler(mockSvc)
	return h, mockSvc
}

func TestCreditNoteHandler_Create(t *testing.T) {
	h, mockSvc := newCreditNoteHandler()

	invoiceID := uuid.New()
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(input service.CreditNoteInput) bool {
		return input.InvoiceID == invoiceID && len(input.Lines) == 1
	})).Return(&domain.CreditNote{
		ID:               uuid.New(),
		CreditNoteNumber: "CN-00001",
		Status:           domain.CreditNoteStatusPending,
	}, nil)

	w, c := postJSON(t, "/api/v1/credit-notes", map[string]interface{}{
		"invoice_id": invoiceID.String(),
		"reason":     "stone missing",
		"lines":      []map[string]interface{}{{"line_index": 0, "quantity": 1}},
	})

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestCreditNoteHandler_Approve_StockPending(t *testing.T) {
	h, mockSvc := newCreditNoteHandler()

	id := uuid.New()
	mockSvc.On("Approve", mock.Anything, id).Return(nil, domain.ErrStockRestoreFailed)

	w, c := postJSON(t, "/api/v1/credit-notes/"+id.String()+"/approve", map[string]interface{}{})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Approve(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "STOCK_RESTORE_FAILED", resp.Error.Code)
}

func TestCreditNoteHandler_Refund_InvalidTransition(t *testing.T) {
	h, mockSvc := newCreditNoteHandler()

	id := uuid.New()
	mockSvc.On("Refund", mock.Anything, id, mock.Anything).Return(nil, domain.ErrInvalidTransition)

	w, c := postJSON(t, "/api/v1/credit-notes/"+id.String()+"/refund", map[string]interface{}{
		"method": "upi",
	})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Refund(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreditNoteHandler_ListByInvoice(t *testing.T) {
	h, mockSvc := newCreditNoteHandler()

	invoiceID := uuid.New()
	mockSvc.On("ListByInvoice", mock.Anything, invoiceID).Return([]domain.CreditNote{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID.String()+"/credit-notes", nil)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.ListByInvoice(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}
