package dto

import (
	"github.com/shopspring/decimal"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// CommissionStageResponse is one row of a commission statement.
type CommissionStageResponse struct {
	Title      string          `json:"title"`
	Percent    decimal.Decimal `json:"percent"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	Status     string          `json:"status"`
	IsPaid     bool            `json:"isPaid"`
}

// CommissionVariationResponse groups the stages of one variation.
type CommissionVariationResponse struct {
	Title       string                    `json:"title"`
	ExtraAmount decimal.Decimal           `json:"extraAmount"`
	Stages      []CommissionStageResponse `json:"stages"`
}

// CommissionStatementResponse is the full agent commission breakdown for
// one project.
type CommissionStatementResponse struct {
	ProjectID         string          `json:"projectID"`
	ProjectName       string          `json:"projectName"`
	CurrencyCode      string          `json:"currencyCode"`
	ContractAmount    decimal.Decimal `json:"contractAmount"`
	CommissionPercent decimal.Decimal `json:"commissionPercent"`

	ContractStages  []CommissionStageResponse     `json:"contractStages"`
	VariationStages []CommissionVariationResponse `json:"variationStages"`

	TotalCommission          decimal.Decimal `json:"totalCommission"`
	Received                 decimal.Decimal `json:"received"`
	TotalVariationCommission decimal.Decimal `json:"totalVariationCommission"`
	ReceivedFromVariations   decimal.Decimal `json:"receivedFromVariations"`
	TotalReceived            decimal.Decimal `json:"totalReceived"`
	GrandTotal               decimal.Decimal `json:"grandTotal"`
	GrandPending             decimal.Decimal `json:"grandPending"`
}

// CommissionProjectResponse is one line of the cross-project commission
// overview.
type CommissionProjectResponse struct {
	ProjectID         string          `json:"projectID"`
	ProjectName       string          `json:"projectName"`
	ClientName        string          `json:"clientName"`
	CurrencyCode      string          `json:"currencyCode"`
	ContractAmount    decimal.Decimal `json:"contractAmount"`
	CommissionPercent decimal.Decimal `json:"commissionPercent"`
	CommissionTotal   decimal.Decimal `json:"commissionTotal"`
	Received          decimal.Decimal `json:"received"`
	Pending           decimal.Decimal `json:"pending"`
}

// ListCommissionProjectsResponse defines the commission overview with its
// grand totals across all commissionable projects.
type ListCommissionProjectsResponse struct {
	Projects      []CommissionProjectResponse `json:"projects"`
	TotalOwed     decimal.Decimal             `json:"totalOwed"`
	TotalReceived decimal.Decimal             `json:"totalReceived"`
	TotalPending  decimal.Decimal             `json:"totalPending"`
}

func toCommissionStageResponses(stages []domain.CommissionStage) []CommissionStageResponse {
	out := make([]CommissionStageResponse, 0, len(stages))
	for _, s := range stages {
		out = append(out, CommissionStageResponse{
			Title:      s.Title,
			Percent:    s.Percent,
			Amount:     s.Amount,
			Commission: s.Commission,
			Status:     string(s.Status),
			IsPaid:     s.IsPaid,
		})
	}
	return out
}

// ToCommissionStatementResponse converts a derived commission statement.
func ToCommissionStatementResponse(st domain.CommissionStatement) CommissionStatementResponse {
	variations := make([]CommissionVariationResponse, 0, len(st.VariationStages))
	for _, v := range st.VariationStages {
		variations = append(variations, CommissionVariationResponse{
			Title:       v.Title,
			ExtraAmount: v.ExtraAmount,
			Stages:      toCommissionStageResponses(v.Stages),
		})
	}
	return CommissionStatementResponse{
		ProjectID:         st.ProjectID,
		ProjectName:       st.ProjectName,
		CurrencyCode:      st.CurrencyCode,
		ContractAmount:    st.ContractAmount,
		CommissionPercent: st.CommissionPercent,

		ContractStages:  toCommissionStageResponses(st.ContractStages),
		VariationStages: variations,

		TotalCommission:          st.TotalCommission,
		Received:                 st.Received,
		TotalVariationCommission: st.TotalVariationCommission,
		ReceivedFromVariations:   st.ReceivedFromVariations,
		TotalReceived:            st.TotalReceived,
		GrandTotal:               st.GrandTotal,
		GrandPending:             st.GrandPending,
	}
}

// ToListCommissionProjectsResponse converts the commissionable projects and
// sums the grand totals across them.
func ToListCommissionProjectsResponse(projects []domain.Project) ListCommissionProjectsResponse {
	out := make([]CommissionProjectResponse, 0, len(projects))
	owed := decimal.Zero
	received := decimal.Zero
	for i := range projects {
		p := &projects[i]
		total := p.CommissionTotalWithVariations()
		got := p.CommissionReceived().Add(p.CommissionReceivedFromVariations())
		out = append(out, CommissionProjectResponse{
			ProjectID:         p.ProjectID,
			ProjectName:       p.ProjectName,
			ClientName:        p.ClientName,
			CurrencyCode:      p.CurrencyCode,
			ContractAmount:    p.ContractAmount,
			CommissionPercent: p.CommissionPercent,
			CommissionTotal:   total,
			Received:          got,
			Pending:           total.Sub(got),
		})
		owed = owed.Add(total)
		received = received.Add(got)
	}
	return ListCommissionProjectsResponse{
		Projects:      out,
		TotalOwed:     owed,
		TotalReceived: received,
		TotalPending:  owed.Sub(received),
	}
}
