package domain

import "github.com/shopspring/decimal"

// CommissionStage is one payment-plan stage in a commission statement:
// the stage value and the commission cut it carries.
type CommissionStage struct {
	Title      string          `json:"title"`
	Percent    decimal.Decimal `json:"percent"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	Status     InvoiceStatus   `json:"status"`
	IsPaid     bool            `json:"isPaid"`
}

// CommissionVariation is the per-variation section of a statement.
type CommissionVariation struct {
	Title       string            `json:"title"`
	ExtraAmount decimal.Decimal   `json:"extraAmount"`
	Stages      []CommissionStage `json:"stages"`
}

// CommissionStatement is the full commission breakdown for one project:
// base stages, variation stages, and the grand totals. It is a read-only
// projection computed entirely from the project aggregate.
type CommissionStatement struct {
	ProjectID         string          `json:"projectID"`
	ProjectName       string          `json:"projectName"`
	CurrencyCode      string          `json:"currencyCode"`
	ContractAmount    decimal.Decimal `json:"contractAmount"`
	CommissionPercent decimal.Decimal `json:"commissionPercent"`

	ContractStages  []CommissionStage     `json:"contractStages"`
	VariationStages []CommissionVariation `json:"variationStages"`

	TotalCommission          decimal.Decimal `json:"totalCommission"`          // base accrual
	Received                 decimal.Decimal `json:"received"`                 // base, paid stages only
	TotalVariationCommission decimal.Decimal `json:"totalVariationCommission"` // all variation stages
	ReceivedFromVariations   decimal.Decimal `json:"receivedFromVariations"`   // variation, paid stages only
	TotalReceived            decimal.Decimal `json:"totalReceived"`
	GrandTotal               decimal.Decimal `json:"grandTotal"`
	GrandPending             decimal.Decimal `json:"grandPending"`
}

// NewCommissionStatement assembles the commission breakdown for a project.
// Pure function of the aggregate: no mutation, no caching.
func NewCommissionStatement(p Project) CommissionStatement {
	cp := p.CommissionPercent

	contractStages := make([]CommissionStage, len(p.PaymentItems))
	for i, item := range p.PaymentItems {
		amount := item.Amount(p.ContractAmount)
		contractStages[i] = CommissionStage{
			Title:      item.Title,
			Percent:    item.Percent,
			Amount:     amount,
			Commission: PercentOf(amount, cp),
			Status:     item.InvoiceStatus,
			IsPaid:     item.IsPaid(),
		}
	}

	totalVarCommission := decimal.Zero
	variationStages := make([]CommissionVariation, len(p.Variations))
	for i, v := range p.Variations {
		stages := make([]CommissionStage, len(v.Items))
		for j, item := range v.Items {
			amount := item.Amount(v.ExtraAmount)
			commission := PercentOf(amount, cp)
			stages[j] = CommissionStage{
				Title:      item.Title,
				Percent:    item.Percent,
				Amount:     amount,
				Commission: commission,
				Status:     item.InvoiceStatus,
				IsPaid:     item.IsPaid(),
			}
			totalVarCommission = totalVarCommission.Add(commission)
		}
		variationStages[i] = CommissionVariation{
			Title:       v.Title,
			ExtraAmount: v.ExtraAmount,
			Stages:      stages,
		}
	}

	totalCommission := p.CommissionTotal()
	received := p.CommissionReceived()
	receivedVar := p.CommissionReceivedFromVariations()
	totalReceived := received.Add(receivedVar)
	grandTotal := totalCommission.Add(totalVarCommission)

	return CommissionStatement{
		ProjectID:                p.ProjectID,
		ProjectName:              p.ProjectName,
		CurrencyCode:             p.CurrencyCode,
		ContractAmount:           p.ContractAmount,
		CommissionPercent:        cp,
		ContractStages:           contractStages,
		VariationStages:          variationStages,
		TotalCommission:          totalCommission,
		Received:                 received,
		TotalVariationCommission: totalVarCommission,
		ReceivedFromVariations:   receivedVar,
		TotalReceived:            totalReceived,
		GrandTotal:               grandTotal,
		GrandPending:             grandTotal.Sub(totalReceived),
	}
}
