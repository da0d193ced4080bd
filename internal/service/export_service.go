package service

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/sivanandz/luminila-ERP-sub002/internal/csvexport"
	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/port"
)

// exportPageSize is how many invoices are fetched per repository call while
// streaming an export.
const exportPageSize = 500

// ExportService writes register exports of all finalized invoices.
type ExportService interface {
	WriteCSV(ctx context.Context, w io.Writer) error
	WriteXLSX(ctx context.Context, w io.Writer) error
}

type exportService struct {
	invoices port.InvoiceRepository
}

// NewExportService creates a new ExportService implementation.
func NewExportService(invoices port.InvoiceRepository) ExportService {
	return &exportService{invoices: invoices}
}

func (s *exportService) WriteCSV(ctx context.Context, w io.Writer) error {
	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	err := s.eachPage(ctx, func(page []domain.Invoice) error {
		return cw.WriteInvoices(page)
	})
	if err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func (s *exportService) WriteXLSX(ctx context.Context, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Invoices"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	for col, name := range csvexport.Header() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	row := 2
	err := s.eachPage(ctx, func(page []domain.Invoice) error {
		for i := range page {
			for col, value := range csvexport.InvoiceRow(&page[i]) {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return err
				}
			}
			row++
		}
		return nil
	})
	if err != nil {
		return err
	}

	return f.Write(w)
}

// eachPage walks the full invoice register in creation order pages.
func (s *exportService) eachPage(ctx context.Context, fn func(page []domain.Invoice) error) error {
	offset := 0
	for {
		page, total, err := s.invoices.List(ctx, offset, exportPageSize)
		if err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}
		if err := fn(page); err != nil {
			return err
		}
		offset += len(page)
		if offset >= total {
			return nil
		}
	}
}
