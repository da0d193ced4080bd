package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sivanandz/luminila-ERP-sub002/internal/config"
	"github.com/sivanandz/luminila-ERP-sub002/internal/handler"
	"github.com/sivanandz/luminila-ERP-sub002/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	invoiceH *handler.InvoiceHandler,
	creditNoteH *handler.CreditNoteHandler,
	poH *handler.PurchaseOrderHandler,
	exportH *handler.ExportHandler,
	gstinH *handler.GSTINHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(&cfg.CORS))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(&cfg.JWT))

	// Reference data
	v1.GET("/states", gstinH.States)
	v1.GET("/gstin/:value", gstinH.Check)

	// Sales invoices
	invoices := v1.Group("/invoices")
	invoices.POST("/preview", invoiceH.Preview)
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.GET("/number/:number", invoiceH.GetByNumber)
	invoices.PATCH("/:id/paid-status", invoiceH.UpdatePaidStatus)
	invoices.GET("/:id/amount-in-words", invoiceH.AmountInWords)
	invoices.POST("/:id/eway-bill", invoiceH.EWayBill)
	invoices.GET("/:id/credit-notes", creditNoteH.ListByInvoice)

	// Credit notes
	creditNotes := v1.Group("/credit-notes")
	creditNotes.POST("", creditNoteH.Create)
	creditNotes.GET("/:id", creditNoteH.GetByID)
	creditNotes.POST("/:id/approve", creditNoteH.Approve)
	creditNotes.POST("/:id/refund", creditNoteH.Refund)
	creditNotes.POST("/:id/cancel", creditNoteH.Cancel)

	// Vendor purchase orders
	purchaseOrders := v1.Group("/purchase-orders")
	purchaseOrders.POST("/preview", poH.Preview)
	purchaseOrders.POST("", poH.Create)
	purchaseOrders.GET("", poH.List)
	purchaseOrders.GET("/:id", poH.GetByID)

	// Register exports
	exports := v1.Group("/exports")
	exports.GET("/invoices.csv", exportH.CSV)
	exports.GET("/invoices.xlsx", exportH.XLSX)

	return r
}
