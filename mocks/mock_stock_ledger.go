package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStockLedger is a mock implementation of port.StockLedger.
type MockStockLedger struct {
	mock.Mock
}

func (m *MockStockLedger) AlreadyReturned(ctx context.Context, invoiceID uuid.UUID, lineIndex int) (int64, error) {
	args := m.Called(ctx, invoiceID, lineIndex)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockLedger) RestoredByNote(ctx context.Context, creditNoteID uuid.UUID, lineIndex int) (int64, error) {
	args := m.Called(ctx, creditNoteID, lineIndex)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockLedger) Restore(ctx context.Context, creditNoteID, invoiceID uuid.UUID, lineIndex int, quantity int64) error {
	args := m.Called(ctx, creditNoteID, invoiceID, lineIndex, quantity)
	return args.Error(0)
}
