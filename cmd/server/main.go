package main

import (
	"fmt"
	"log"

	"github.com/sivanandz/luminila-ERP-sub002/internal/config"
	"github.com/sivanandz/luminila-ERP-sub002/internal/ewaybill"
	"github.com/sivanandz/luminila-ERP-sub002/internal/handler"
	"github.com/sivanandz/luminila-ERP-sub002/internal/repository/postgres"
	"github.com/sivanandz/luminila-ERP-sub002/internal/router"
	"github.com/sivanandz/luminila-ERP-sub002/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	invoiceRepo := postgres.NewInvoiceRepo(db)
	creditNoteRepo := postgres.NewCreditNoteRepo(db)
	poRepo := postgres.NewPurchaseOrderRepo(db)
	stockLedger := postgres.NewStockLedgerRepo(db)

	// Initialize engine collaborators
	ewbBuilder, err := ewaybill.NewBuilder(cfg.Tax.SellerGSTIN, cfg.Tax.SellerStateCode, cfg.Tax.EWayBillThreshold)
	if err != nil {
		return fmt.Errorf("failed to initialize e-way bill builder: %w", err)
	}

	// Initialize services
	invoiceSvc := service.NewInvoiceService(invoiceRepo, &cfg.Tax, ewbBuilder)
	creditNoteSvc := service.NewCreditNoteService(creditNoteRepo, invoiceRepo, stockLedger)
	poSvc := service.NewPurchaseOrderService(poRepo, &cfg.Tax)
	exportSvc := service.NewExportService(invoiceRepo)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	creditNoteH := handler.NewCreditNoteHandler(creditNoteSvc)
	poH := handler.NewPurchaseOrderHandler(poSvc)
	exportH := handler.NewExportHandler(exportSvc)
	gstinH := handler.NewGSTINHandler()
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, invoiceH, creditNoteH, poH, exportH, gstinH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
