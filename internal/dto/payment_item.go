package dto

import (
	"github.com/shopspring/decimal"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// CreatePaymentItemRequest adds a stage to a project's base payment plan.
type CreatePaymentItemRequest struct {
	Title        string          `json:"title" binding:"required"`
	Percent      decimal.Decimal `json:"percent" binding:"required,decimalpercent"`
	DueCondition string          `json:"dueCondition"`
}

// UpdatePaymentItemRequest edits an existing stage.
type UpdatePaymentItemRequest struct {
	Title        string          `json:"title" binding:"required"`
	Percent      decimal.Decimal `json:"percent" binding:"required,decimalpercent"`
	DueCondition string          `json:"dueCondition"`
}

// UpdateInvoiceStatusRequest drives the invoicing lifecycle of a stage.
type UpdateInvoiceStatusRequest struct {
	InvoiceStatus string `json:"invoiceStatus" binding:"required"`
}

// PaymentItemResponse defines the data returned for a payment-plan stage.
// Amount is derived from the parent's monetary base at response time.
type PaymentItemResponse struct {
	ItemID        string          `json:"itemID"`
	Title         string          `json:"title"`
	Percent       decimal.Decimal `json:"percent"`
	DueCondition  string          `json:"dueCondition"`
	Amount        decimal.Decimal `json:"amount"`
	InvoiceStatus string          `json:"invoiceStatus"`
	InvoiceDate   string          `json:"invoiceDate,omitempty"`
	PaidDate      string          `json:"paidDate,omitempty"`
}

// ToPaymentItemResponse converts a domain payment item, deriving its amount
// from the owning project's contract amount.
func ToPaymentItemResponse(item *domain.PaymentItem, contractAmount decimal.Decimal) PaymentItemResponse {
	return PaymentItemResponse{
		ItemID:        item.ItemID,
		Title:         item.Title,
		Percent:       item.Percent,
		DueCondition:  item.DueCondition,
		Amount:        item.Amount(contractAmount),
		InvoiceStatus: string(item.InvoiceStatus),
		InvoiceDate:   FormatDate(item.InvoiceDate),
		PaidDate:      FormatDate(item.PaidDate),
	}
}

// ToVariationItemResponse converts a domain variation item, deriving its
// amount from the owning variation's extra amount.
func ToVariationItemResponse(item *domain.VariationItem, extraAmount decimal.Decimal) PaymentItemResponse {
	return PaymentItemResponse{
		ItemID:        item.ItemID,
		Title:         item.Title,
		Percent:       item.Percent,
		DueCondition:  item.DueCondition,
		Amount:        item.Amount(extraAmount),
		InvoiceStatus: string(item.InvoiceStatus),
		InvoiceDate:   FormatDate(item.InvoiceDate),
		PaidDate:      FormatDate(item.PaidDate),
	}
}
