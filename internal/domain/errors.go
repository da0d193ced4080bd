package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrInvoiceNumberTaken    = errors.New("invoice number already exists")
	ErrCreditNoteNotFound    = errors.New("credit note not found")
	ErrPurchaseOrderNotFound = errors.New("purchase order not found")
	ErrInvalidTransition     = errors.New("invalid credit note status transition")
	ErrStockRestoreFailed    = errors.New("stock restoration failed")
	ErrPersistenceFailed     = errors.New("failed to save document")
)

// ValidationError marks malformed or out-of-range caller input. It is always
// surfaced before computation or persistence proceeds; the user corrects the
// form and resubmits.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a field path.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
