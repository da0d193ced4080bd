package domain

// DocumentType distinguishes the three computed document kinds.
type DocumentType string

const (
	DocumentTypeInvoice       DocumentType = "invoice"
	DocumentTypeCreditNote    DocumentType = "credit_note"
	DocumentTypePurchaseOrder DocumentType = "purchase_order"
)

// PaidStatus tracks settlement of a finalized invoice.
type PaidStatus string

const (
	PaidStatusUnpaid  PaidStatus = "unpaid"
	PaidStatusPartial PaidStatus = "partial"
	PaidStatusPaid    PaidStatus = "paid"
)

// Valid reports whether s is a known settlement status.
func (s PaidStatus) Valid() bool {
	switch s {
	case PaidStatusUnpaid, PaidStatusPartial, PaidStatusPaid:
		return true
	}
	return false
}

// CreditNoteStatus is the credit-note lifecycle.
//
// pending → approved → refunded
// pending → cancelled
//
// approved_stock_pending is the reconcilable sub-state entered when the note
// was approved but the stock restoration write failed; a retry moves it to
// approved. refunded and cancelled are terminal.
type CreditNoteStatus string

const (
	CreditNoteStatusPending              CreditNoteStatus = "pending"
	CreditNoteStatusApproved             CreditNoteStatus = "approved"
	CreditNoteStatusApprovedStockPending CreditNoteStatus = "approved_stock_pending"
	CreditNoteStatusRefunded             CreditNoteStatus = "refunded"
	CreditNoteStatusCancelled            CreditNoteStatus = "cancelled"
)

var creditNoteTransitions = map[CreditNoteStatus][]CreditNoteStatus{
	CreditNoteStatusPending:              {CreditNoteStatusApproved, CreditNoteStatusApprovedStockPending, CreditNoteStatusCancelled},
	CreditNoteStatusApprovedStockPending: {CreditNoteStatusApproved},
	CreditNoteStatusApproved:             {CreditNoteStatusRefunded},
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
func (s CreditNoteStatus) CanTransitionTo(next CreditNoteStatus) bool {
	for _, allowed := range creditNoteTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s CreditNoteStatus) Terminal() bool {
	return len(creditNoteTransitions[s]) == 0
}
