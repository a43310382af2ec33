package services

import (
	"context"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
)

// LeadReaderSvc defines read operations for lead data
type LeadReaderSvc interface {
	// GetLeadByID retrieves a lead by ID.
	GetLeadByID(ctx context.Context, leadID string) (*domain.Lead, error)

	// ListLeads retrieves a filtered page of leads together with the
	// distinct sources in use.
	ListLeads(ctx context.Context, params dto.ListLeadsParams) ([]domain.Lead, []string, *string, error)
}

// LeadWriterSvc defines write operations for lead data
type LeadWriterSvc interface {
	// CreateLead creates a new lead.
	CreateLead(ctx context.Context, req dto.CreateLeadRequest, creatorUserID string) (*domain.Lead, error)

	// UpdateLead updates an existing lead.
	UpdateLead(ctx context.Context, leadID string, req dto.UpdateLeadRequest, requestingUserID string) (*domain.Lead, error)

	// UpdateLeadStatus moves a lead between pipeline states.
	UpdateLeadStatus(ctx context.Context, leadID string, req dto.UpdateLeadStatusRequest, requestingUserID string) (*domain.Lead, error)

	// DeleteLead removes a lead permanently.
	DeleteLead(ctx context.Context, leadID string) error
}

// LeadSvcFacade combines all lead-related service interfaces
type LeadSvcFacade interface {
	LeadReaderSvc
	LeadWriterSvc
}
