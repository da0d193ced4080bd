package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sivanandz/luminila-ERP-sub002/internal/service"
)

// CreditNoteHandler handles credit note endpoints.
type CreditNoteHandler struct {
	creditNoteService service.CreditNoteService
}

// NewCreditNoteHandler creates a new CreditNoteHandler.
func NewCreditNoteHandler(creditNoteService service.CreditNoteService) *CreditNoteHandler {
	return &CreditNoteHandler{creditNoteService: creditNoteService}
}

// Create handles POST /api/v1/credit-notes
func (h *CreditNoteHandler) Create(c *gin.Context) {
	var input service.CreditNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	note, err := h.creditNoteService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, note)
}

// GetByID handles GET /api/v1/credit-notes/:id
func (h *CreditNoteHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid credit note ID")
		return
	}

	note, err := h.creditNoteService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, note)
}

// ListByInvoice handles GET /api/v1/invoices/:id/credit-notes
func (h *CreditNoteHandler) ListByInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	notes, err := h.creditNoteService.ListByInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, notes)
}

// Approve handles POST /api/v1/credit-notes/:id/approve
func (h *CreditNoteHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid credit note ID")
		return
	}

	note, err := h.creditNoteService.Approve(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, note)
}

// Refund handles POST /api/v1/credit-notes/:id/refund
func (h *CreditNoteHandler) Refund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid credit note ID")
		return
	}

	var input service.RefundInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	note, err := h.creditNoteService.Refund(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, note)
}

// Cancel handles POST /api/v1/credit-notes/:id/cancel
func (h *CreditNoteHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid credit note ID")
		return
	}

	note, err := h.creditNoteService.Cancel(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, note)
}
