package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
)

// MockCreditNoteRepo is a mock implementation of port.CreditNoteRepository.
type MockCreditNoteRepo struct {
	mock.Mock
}

func (m *MockCreditNoteRepo) Create(ctx context.Context, note *domain.CreditNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockCreditNoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditNote), args.Error(1)
}

func (m *MockCreditNoteRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.CreditNote, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditNote), args.Error(1)
}

func (m *MockCreditNoteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CreditNoteStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCreditNoteRepo) RecordRefund(ctx context.Context, id uuid.UUID, method, reference string) error {
	args := m.Called(ctx, id, method, reference)
	return args.Error(0)
}

func (m *MockCreditNoteRepo) NextNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
