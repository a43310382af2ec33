package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
)

// InvoiceStatus is the invoicing lifecycle state of a payment-plan line item.
type InvoiceStatus string

const (
	NotInvoiced InvoiceStatus = "not_invoiced"
	Invoiced    InvoiceStatus = "invoiced"
	Paid        InvoiceStatus = "paid"
)

// ValidInvoiceStatus reports whether s is one of the allowed lifecycle states.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case NotInvoiced, Invoiced, Paid:
		return true
	}
	return false
}

// InvoiceTracking is the invoicing lifecycle shared by base payment items and
// variation items: status plus the dates stamped on entering each state.
type InvoiceTracking struct {
	InvoiceStatus InvoiceStatus `json:"invoiceStatus"`
	InvoiceDate   *time.Time    `json:"invoiceDate,omitempty"`
	PaidDate      *time.Time    `json:"paidDate,omitempty"`
}

// ApplyStatus transitions the lifecycle to target.
// Entering invoiced or paid stamps the corresponding date only if unset, so
// re-entering a state preserves the original date. Entering not_invoiced
// unconditionally clears both dates. Unknown targets return ErrInvalidStatus
// and leave the tracking untouched.
func (t *InvoiceTracking) ApplyStatus(target InvoiceStatus, today time.Time) error {
	if !ValidInvoiceStatus(target) {
		return fmt.Errorf("%w: invoice status %q", apperrors.ErrInvalidStatus, target)
	}
	t.InvoiceStatus = target
	switch target {
	case Invoiced:
		if t.InvoiceDate == nil {
			t.InvoiceDate = &today
		}
	case Paid:
		if t.PaidDate == nil {
			t.PaidDate = &today
		}
	case NotInvoiced:
		t.InvoiceDate = nil
		t.PaidDate = nil
	}
	return nil
}

// IsPaid reports whether the item has been paid.
func (t InvoiceTracking) IsPaid() bool {
	return t.InvoiceStatus == Paid
}

// PaymentItem is a single payment-plan stage of a project's base contract.
// Its monetary amount is never stored; it is always derived from the owning
// project's contract amount and the item's percent share.
type PaymentItem struct {
	ItemID       string          `json:"itemID"` // Primary Key (UUID)
	ProjectID    string          `json:"projectID"`
	Title        string          `json:"title"`
	Percent      decimal.Decimal `json:"percent"` // 0-100, share of the contract amount
	DueCondition string          `json:"dueCondition"`
	InvoiceTracking
	AuditFields
}

// Amount returns the stage value: contractAmount * percent / 100.
// Computed fresh on every call so edits to percent or contract amount
// retroactively change the value, even for items already marked paid.
func (i PaymentItem) Amount(contractAmount decimal.Decimal) decimal.Decimal {
	return PercentOf(contractAmount, i.Percent)
}
