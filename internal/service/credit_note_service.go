package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/port"
	"github.com/sivanandz/luminila-ERP-sub002/internal/tax"
)

// ReturnLineInput identifies one invoice line being returned, by its position
// on the original invoice.
type ReturnLineInput struct {
	LineIndex int   `json:"line_index"`
	Quantity  int64 `json:"quantity" binding:"required"`
}

// CreditNoteInput is the DTO for creating a credit note against an invoice.
type CreditNoteInput struct {
	InvoiceID uuid.UUID         `json:"invoice_id" binding:"required"`
	Reason    string            `json:"reason"`
	Lines     []ReturnLineInput `json:"lines"`
}

// RefundInput records how an approved credit note was settled.
type RefundInput struct {
	Method    string `json:"method" binding:"required"`
	Reference string `json:"reference"`
}

// CreditNoteService defines the credit-note lifecycle contract. Monetary
// figures are fixed at creation; Approve, Refund and Cancel only move status.
type CreditNoteService interface {
	Create(ctx context.Context, input CreditNoteInput) (*domain.CreditNote, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditNote, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.CreditNote, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.CreditNote, error)
	Refund(ctx context.Context, id uuid.UUID, input RefundInput) (*domain.CreditNote, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.CreditNote, error)
}

type creditNoteService struct {
	notes    port.CreditNoteRepository
	invoices port.InvoiceRepository
	stock    port.StockLedger
}

// NewCreditNoteService creates a new CreditNoteService implementation.
func NewCreditNoteService(notes port.CreditNoteRepository, invoices port.InvoiceRepository, stock port.StockLedger) CreditNoteService {
	return &creditNoteService{notes: notes, invoices: invoices, stock: stock}
}

func (s *creditNoteService) Create(ctx context.Context, input CreditNoteInput) (*domain.CreditNote, error) {
	if len(input.Lines) == 0 {
		return nil, domain.NewValidationError("lines", "at least one return line is required")
	}

	inv, err := s.invoices.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}

	returns := make([]tax.ReturnLine, 0, len(input.Lines))
	sources := make([]int, 0, len(input.Lines))
	seen := make(map[int]bool, len(input.Lines))
	for _, l := range input.Lines {
		if l.LineIndex < 0 || l.LineIndex >= len(inv.Document.Lines) {
			return nil, domain.NewValidationError("line_index", "invoice %s has no line %d", inv.InvoiceNumber, l.LineIndex)
		}
		if seen[l.LineIndex] {
			return nil, domain.NewValidationError("line_index", "line %d appears more than once", l.LineIndex)
		}
		seen[l.LineIndex] = true
		already, err := s.stock.AlreadyReturned(ctx, inv.ID, l.LineIndex)
		if err != nil {
			return nil, fmt.Errorf("looking up returned quantity: %w", err)
		}
		returns = append(returns, tax.ReturnLine{
			Original:        inv.Document.Lines[l.LineIndex],
			Quantity:        l.Quantity,
			AlreadyReturned: &already,
		})
		sources = append(sources, l.LineIndex)
	}

	doc, err := tax.MirrorDocument(returns)
	if err != nil {
		return nil, err
	}

	number, err := s.notes.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	note := &domain.CreditNote{
		ID:               uuid.New(),
		CreditNoteNumber: number,
		InvoiceID:        inv.ID,
		Reason:           strings.TrimSpace(input.Reason),
		Status:           domain.CreditNoteStatusPending,
		Document:         doc,
		LineSources:      sources,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *creditNoteService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditNote, error) {
	return s.notes.GetByID(ctx, id)
}

func (s *creditNoteService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.CreditNote, error) {
	if _, err := s.invoices.GetByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	return s.notes.ListByInvoice(ctx, invoiceID)
}

// Approve moves a pending note to approved and restores the returned
// quantities to stock. The two writes are not atomic: if any restore fails
// after the note is marked, the note parks in approved_stock_pending and a
// later Approve call retries the restores.
func (s *creditNoteService) Approve(ctx context.Context, id uuid.UUID) (*domain.CreditNote, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note.Status != domain.CreditNoteStatusPending && note.Status != domain.CreditNoteStatusApprovedStockPending {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, note.Status, domain.CreditNoteStatusApproved)
	}

	retry := note.Status == domain.CreditNoteStatusApprovedStockPending
	if err := s.restoreStock(ctx, note, retry); err != nil {
		if note.Status == domain.CreditNoteStatusPending {
			if markErr := s.notes.UpdateStatus(ctx, id, domain.CreditNoteStatusApprovedStockPending); markErr != nil {
				return nil, markErr
			}
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStockRestoreFailed, err)
	}

	if err := s.notes.UpdateStatus(ctx, id, domain.CreditNoteStatusApproved); err != nil {
		return nil, err
	}
	note.Status = domain.CreditNoteStatusApproved
	return note, nil
}

// restoreStock re-adds each returned line quantity to inventory, keyed on
// the invoice line index stored with the note line. On a retry only this
// note's own ledger rows count as done; restores written by other credit
// notes against the same invoice line never satisfy this note's quantities.
func (s *creditNoteService) restoreStock(ctx context.Context, note *domain.CreditNote, retry bool) error {
	if len(note.LineSources) != len(note.Document.Lines) {
		return fmt.Errorf("credit note %s has %d lines but %d source indexes",
			note.CreditNoteNumber, len(note.Document.Lines), len(note.LineSources))
	}

	for i, line := range note.Document.Lines {
		idx := note.LineSources[i]
		qty := line.Quantity
		if retry {
			already, err := s.stock.RestoredByNote(ctx, note.ID, idx)
			if err != nil {
				return err
			}
			if already >= qty {
				continue
			}
			qty -= already
		}
		if err := s.stock.Restore(ctx, note.ID, note.InvoiceID, idx, qty); err != nil {
			return err
		}
	}
	return nil
}

func (s *creditNoteService) Refund(ctx context.Context, id uuid.UUID, input RefundInput) (*domain.CreditNote, error) {
	if strings.TrimSpace(input.Method) == "" {
		return nil, domain.NewValidationError("method", "is required")
	}

	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !note.Status.CanTransitionTo(domain.CreditNoteStatusRefunded) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, note.Status, domain.CreditNoteStatusRefunded)
	}

	if err := s.notes.RecordRefund(ctx, id, input.Method, input.Reference); err != nil {
		return nil, err
	}
	note.Status = domain.CreditNoteStatusRefunded
	note.RefundMethod = input.Method
	note.RefundReference = input.Reference
	return note, nil
}

func (s *creditNoteService) Cancel(ctx context.Context, id uuid.UUID) (*domain.CreditNote, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !note.Status.CanTransitionTo(domain.CreditNoteStatusCancelled) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, note.Status, domain.CreditNoteStatusCancelled)
	}

	if err := s.notes.UpdateStatus(ctx, id, domain.CreditNoteStatusCancelled); err != nil {
		return nil, err
	}
	note.Status = domain.CreditNoteStatusCancelled
	return note, nil
}
