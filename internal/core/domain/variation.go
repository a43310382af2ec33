package domain

import (
	"github.com/shopspring/decimal"
)

// VariationStatus is the lifecycle state of a change order.
type VariationStatus string

const (
	VariationDraft    VariationStatus = "draft"
	VariationApproved VariationStatus = "approved"
	VariationInvoiced VariationStatus = "invoiced"
	VariationPaid     VariationStatus = "paid"
)

// ValidVariationStatus reports whether s is one of the allowed states.
func ValidVariationStatus(s VariationStatus) bool {
	switch s {
	case VariationDraft, VariationApproved, VariationInvoiced, VariationPaid:
		return true
	}
	return false
}

// VariationItem is a payment-plan stage of a variation. Structurally it
// mirrors PaymentItem but derives its amount from the variation's extra
// amount instead of the project's base contract.
type VariationItem struct {
	ItemID       string          `json:"itemID"` // Primary Key (UUID)
	VariationID  string          `json:"variationID"`
	Title        string          `json:"title"`
	Percent      decimal.Decimal `json:"percent"` // 0-100, share of the extra amount
	DueCondition string          `json:"dueCondition"`
	InvoiceTracking
	AuditFields
}

// Amount returns the stage value: extraAmount * percent / 100, never cached.
func (i VariationItem) Amount(extraAmount decimal.Decimal) decimal.Decimal {
	return PercentOf(extraAmount, i.Percent)
}

// Variation is a change order: an approved addition to project scope with its
// own extra monetary amount and its own payment plan. Items are an explicit
// owned collection; all rollups are in-memory folds over them.
type Variation struct {
	VariationID string          `json:"variationID"` // Primary Key (UUID)
	ProjectID   string          `json:"projectID"`
	Title       string          `json:"title"`
	ExtraAmount decimal.Decimal `json:"extraAmount"`
	Status      VariationStatus `json:"status"`
	Items       []VariationItem `json:"items"`
	AuditFields
}

// PaymentPercentTotal sums the percent share of every item.
func (v Variation) PaymentPercentTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range v.Items {
		total = total.Add(item.Percent)
	}
	return total
}

// PaidPercent sums the percent share of paid items only.
func (v Variation) PaidPercent() decimal.Decimal {
	total := decimal.Zero
	for _, item := range v.Items {
		if item.IsPaid() {
			total = total.Add(item.Percent)
		}
	}
	return total
}

// PaidAmount sums the derived amounts of paid items only.
func (v Variation) PaidAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range v.Items {
		if item.IsPaid() {
			total = total.Add(item.Amount(v.ExtraAmount))
		}
	}
	return total
}
