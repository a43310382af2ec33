package dto

import (
	"time"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// CreateLeadRequest defines the data needed to register a new lead.
type CreateLeadRequest struct {
	ClientName         string `json:"clientName" binding:"required"`
	Phone              string `json:"phone"`
	LocationText       string `json:"locationText"`
	RequestDescription string `json:"requestDescription"`
	Source             string `json:"source"`
	Status             string `json:"status" binding:"omitempty,oneof=new in_progress closed"`
	Comment            string `json:"comment"`
}

// UpdateLeadRequest carries the editable lead fields.
type UpdateLeadRequest struct {
	ClientName         string `json:"clientName" binding:"required"`
	Phone              string `json:"phone"`
	LocationText       string `json:"locationText"`
	RequestDescription string `json:"requestDescription"`
	Source             string `json:"source"`
	Comment            string `json:"comment"`
}

// UpdateLeadStatusRequest moves a lead along the intake pipeline.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListLeadsParams are the filter and pagination options for lead listing.
type ListLeadsParams struct {
	Status    string  `form:"status" binding:"omitempty,oneof=new in_progress closed"`
	Source    string  `form:"source"`
	Search    string  `form:"q"`
	Limit     int     `form:"limit,default=25" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// LeadResponse defines the data returned for a lead.
type LeadResponse struct {
	LeadID             string    `json:"leadID"`
	ClientName         string    `json:"clientName"`
	Phone              string    `json:"phone"`
	LocationText       string    `json:"locationText"`
	RequestDescription string    `json:"requestDescription"`
	Source             string    `json:"source"`
	Status             string    `json:"status"`
	Comment            string    `json:"comment"`
	CreatedAt          time.Time `json:"createdAt"`
	LastUpdatedAt      time.Time `json:"lastUpdatedAt"`
}

// ListLeadsResponse is a page of leads plus the cursor for the next page.
type ListLeadsResponse struct {
	Leads     []LeadResponse `json:"leads"`
	Sources   []string       `json:"sources,omitempty"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToLeadResponse converts a domain.Lead to a LeadResponse DTO.
func ToLeadResponse(l *domain.Lead) LeadResponse {
	return LeadResponse{
		LeadID:             l.LeadID,
		ClientName:         l.ClientName,
		Phone:              l.Phone,
		LocationText:       l.LocationText,
		RequestDescription: l.RequestDescription,
		Source:             l.Source,
		Status:             string(l.Status),
		Comment:            l.Comment,
		CreatedAt:          l.CreatedAt,
		LastUpdatedAt:      l.LastUpdatedAt,
	}
}

// ToListLeadsResponse converts a slice of domain leads to the list DTO.
func ToListLeadsResponse(leads []domain.Lead, sources []string, nextToken *string) ListLeadsResponse {
	res := ListLeadsResponse{
		Leads:     make([]LeadResponse, len(leads)),
		Sources:   sources,
		NextToken: nextToken,
	}
	for i := range leads {
		res.Leads[i] = ToLeadResponse(&leads[i])
	}
	return res
}
