package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// CreateProjectRequest defines the data needed to open a new project.
// Dates travel as YYYY-MM-DD strings.
type CreateProjectRequest struct {
	ProjectName    string          `json:"projectName" binding:"required"`
	ClientName     string          `json:"clientName" binding:"required"`
	LocationText   string          `json:"locationText"`
	ContractAmount decimal.Decimal `json:"contractAmount" binding:"required"`
	CurrencyCode   string          `json:"currencyCode" binding:"omitempty,len=3"`
	StartDate      string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	DurationDays   *int            `json:"durationDays" binding:"omitempty,gt=0"`
	Status         string          `json:"status" binding:"omitempty,oneof=planned active on_hold completed cancelled"`
}

// UpdateProjectRequest edits a project's own fields. Children are managed
// through their own endpoints.
type UpdateProjectRequest struct {
	ProjectName    string          `json:"projectName" binding:"required"`
	ClientName     string          `json:"clientName" binding:"required"`
	LocationText   string          `json:"locationText"`
	ContractAmount decimal.Decimal `json:"contractAmount" binding:"required"`
	CurrencyCode   string          `json:"currencyCode" binding:"omitempty,len=3"`
	StartDate      string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	DurationDays   *int            `json:"durationDays" binding:"omitempty,gt=0"`
	Status         string          `json:"status" binding:"omitempty,oneof=planned active on_hold completed cancelled"`
}

// UpdateProjectStatusRequest moves a project between lifecycle states.
type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=planned active on_hold completed cancelled"`
}

// SetCommissionRequest sets the agent commission rate on a project.
type SetCommissionRequest struct {
	CommissionPercent decimal.Decimal `json:"commissionPercent" binding:"decimalpercent"`
}

// ListProjectsParams defines the query parameters for listing projects.
type ListProjectsParams struct {
	Status    string `form:"status" binding:"omitempty,oneof=planned active on_hold completed cancelled"`
	Search    string `form:"q"`
	Limit     int    `form:"limit,default=25" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ProjectResponse carries a project with every derived financial and
// schedule figure. Nothing here is stored; it is all computed from the
// aggregate on the way out.
type ProjectResponse struct {
	ProjectID      string          `json:"projectID"`
	ProjectName    string          `json:"projectName"`
	ClientName     string          `json:"clientName"`
	LocationText   string          `json:"locationText"`
	ContractAmount decimal.Decimal `json:"contractAmount"`
	CurrencyCode   string          `json:"currencyCode"`
	StartDate      string          `json:"startDate,omitempty"`
	DurationDays   *int            `json:"durationDays,omitempty"`
	EndDate        string          `json:"endDate,omitempty"`
	DaysLeft       *int            `json:"daysLeft,omitempty"`
	DaysElapsed    *int            `json:"daysElapsed,omitempty"`
	Status         string          `json:"status"`

	CommissionPercent decimal.Decimal `json:"commissionPercent"`

	PaymentPercentTotal decimal.Decimal `json:"paymentPercentTotal"`
	PaidPercent         decimal.Decimal `json:"paidPercent"`
	PaidAmount          decimal.Decimal `json:"paidAmount"`

	TotalVariationsAmount decimal.Decimal `json:"totalVariationsAmount"`

	CommissionTotal                  decimal.Decimal `json:"commissionTotal"`
	CommissionReceived               decimal.Decimal `json:"commissionReceived"`
	CommissionPending                decimal.Decimal `json:"commissionPending"`
	CommissionReceivedFromVariations decimal.Decimal `json:"commissionReceivedFromVariations"`
	CommissionTotalWithVariations    decimal.Decimal `json:"commissionTotalWithVariations"`

	PaymentItems []PaymentItemResponse `json:"paymentItems"`
	Variations   []VariationResponse   `json:"variations"`
	Tasks        []TaskResponse        `json:"tasks"`
	Documents    []DocumentResponse    `json:"documents"`

	CreatedAt string `json:"createdAt"`
}

// ProjectSummaryResponse is the lighter shape used by list endpoints.
type ProjectSummaryResponse struct {
	ProjectID      string          `json:"projectID"`
	ProjectName    string          `json:"projectName"`
	ClientName     string          `json:"clientName"`
	ContractAmount decimal.Decimal `json:"contractAmount"`
	CurrencyCode   string          `json:"currencyCode"`
	Status         string          `json:"status"`
	StartDate      string          `json:"startDate,omitempty"`
	EndDate        string          `json:"endDate,omitempty"`
	DaysLeft       *int            `json:"daysLeft,omitempty"`
	PaidPercent    decimal.Decimal `json:"paidPercent"`
	OpenTasks      int             `json:"openTasks"`
}

// ListProjectsResponse defines the response for listing projects.
type ListProjectsResponse struct {
	Projects  []ProjectSummaryResponse `json:"projects"`
	NextToken *string                  `json:"nextToken,omitempty"`
}

// ToProjectResponse converts a fully loaded project aggregate into its
// response shape, computing all derived figures.
func ToProjectResponse(p *domain.Project, today time.Time) ProjectResponse {
	items := make([]PaymentItemResponse, 0, len(p.PaymentItems))
	for i := range p.PaymentItems {
		items = append(items, ToPaymentItemResponse(&p.PaymentItems[i], p.ContractAmount))
	}
	variations := make([]VariationResponse, 0, len(p.Variations))
	for i := range p.Variations {
		variations = append(variations, ToVariationResponse(&p.Variations[i]))
	}
	tasks := make([]TaskResponse, 0, len(p.Tasks))
	for i := range p.Tasks {
		tasks = append(tasks, ToTaskResponse(&p.Tasks[i]))
	}
	documents := make([]DocumentResponse, 0, len(p.Documents))
	for i := range p.Documents {
		documents = append(documents, ToDocumentResponse(&p.Documents[i]))
	}

	return ProjectResponse{
		ProjectID:      p.ProjectID,
		ProjectName:    p.ProjectName,
		ClientName:     p.ClientName,
		LocationText:   p.LocationText,
		ContractAmount: p.ContractAmount,
		CurrencyCode:   p.CurrencyCode,
		StartDate:      FormatDate(p.StartDate),
		DurationDays:   p.DurationDays,
		EndDate:        FormatDate(p.EndDate()),
		DaysLeft:       p.DaysLeft(today),
		DaysElapsed:    p.DaysElapsed(today),
		Status:         string(p.Status),

		CommissionPercent: p.CommissionPercent,

		PaymentPercentTotal: p.PaymentPercentTotal(),
		PaidPercent:         p.PaidPercent(),
		PaidAmount:          p.PaidAmount(),

		TotalVariationsAmount: p.TotalVariationsAmount(),

		CommissionTotal:                  p.CommissionTotal(),
		CommissionReceived:               p.CommissionReceived(),
		CommissionPending:                p.CommissionPending(),
		CommissionReceivedFromVariations: p.CommissionReceivedFromVariations(),
		CommissionTotalWithVariations:    p.CommissionTotalWithVariations(),

		PaymentItems: items,
		Variations:   variations,
		Tasks:        tasks,
		Documents:    documents,

		CreatedAt: p.CreatedAt.Format(DateFormat),
	}
}

// ToProjectSummaryResponse converts a project aggregate into its list shape.
func ToProjectSummaryResponse(p *domain.Project, today time.Time) ProjectSummaryResponse {
	open := 0
	for i := range p.Tasks {
		if p.Tasks[i].Status == domain.TaskOpen {
			open++
		}
	}
	return ProjectSummaryResponse{
		ProjectID:      p.ProjectID,
		ProjectName:    p.ProjectName,
		ClientName:     p.ClientName,
		ContractAmount: p.ContractAmount,
		CurrencyCode:   p.CurrencyCode,
		Status:         string(p.Status),
		StartDate:      FormatDate(p.StartDate),
		EndDate:        FormatDate(p.EndDate()),
		DaysLeft:       p.DaysLeft(today),
		PaidPercent:    p.PaidPercent(),
		OpenTasks:      open,
	}
}

// ToListProjectsResponse converts a page of projects.
func ToListProjectsResponse(projects []domain.Project, today time.Time, nextToken *string) ListProjectsResponse {
	out := make([]ProjectSummaryResponse, 0, len(projects))
	for i := range projects {
		out = append(out, ToProjectSummaryResponse(&projects[i], today))
	}
	return ListProjectsResponse{Projects: out, NextToken: nextToken}
}
