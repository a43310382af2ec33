package dto

import (
	"github.com/shopspring/decimal"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// CreateVariationRequest defines the data needed to add extra agreed work
// to a project.
type CreateVariationRequest struct {
	Title       string          `json:"title" binding:"required"`
	ExtraAmount decimal.Decimal `json:"extraAmount" binding:"required"`
	Status      string          `json:"status" binding:"omitempty,oneof=draft approved invoiced paid"`
}

// UpdateVariationRequest edits a variation's own fields.
type UpdateVariationRequest struct {
	Title       string          `json:"title" binding:"required"`
	ExtraAmount decimal.Decimal `json:"extraAmount" binding:"required"`
	Status      string          `json:"status" binding:"omitempty,oneof=draft approved invoiced paid"`
}

// VariationResponse carries a variation with its payment schedule and
// derived rollups.
type VariationResponse struct {
	VariationID         string                `json:"variationID"`
	Title               string                `json:"title"`
	ExtraAmount         decimal.Decimal       `json:"extraAmount"`
	Status              string                `json:"status"`
	Items               []PaymentItemResponse `json:"items"`
	PaymentPercentTotal decimal.Decimal       `json:"paymentPercentTotal"`
	PaidPercent         decimal.Decimal       `json:"paidPercent"`
	PaidAmount          decimal.Decimal       `json:"paidAmount"`
	CreatedAt           string                `json:"createdAt"`
}

func ToVariationResponse(v *domain.Variation) VariationResponse {
	items := make([]PaymentItemResponse, 0, len(v.Items))
	for i := range v.Items {
		items = append(items, ToVariationItemResponse(&v.Items[i], v.ExtraAmount))
	}
	return VariationResponse{
		VariationID:         v.VariationID,
		Title:               v.Title,
		ExtraAmount:         v.ExtraAmount,
		Status:              string(v.Status),
		Items:               items,
		PaymentPercentTotal: v.PaymentPercentTotal(),
		PaidPercent:         v.PaidPercent(),
		PaidAmount:          v.PaidAmount(),
		CreatedAt:           v.CreatedAt.Format(DateFormat),
	}
}
