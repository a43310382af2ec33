package repositories

import (
	"context"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// LeadListFilter narrows a lead listing.
type LeadListFilter struct {
	Status string
	Source string
	Search string
}

// LeadReader defines read operations for lead data
type LeadReader interface {
	// FindLeadByID retrieves a specific lead by its ID.
	FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error)

	// FindLeads retrieves a filtered page of leads ordered newest first.
	// The returned token is non-nil when more rows remain.
	FindLeads(ctx context.Context, filter LeadListFilter, limit int, nextToken string) ([]domain.Lead, *string, error)

	// FindLeadSources retrieves the distinct non-empty sources in use.
	FindLeadSources(ctx context.Context) ([]string, error)
}

// LeadWriter defines write operations for lead data
type LeadWriter interface {
	// SaveLead persists a new lead.
	SaveLead(ctx context.Context, lead domain.Lead) error

	// UpdateLead updates an existing lead.
	UpdateLead(ctx context.Context, lead domain.Lead) error

	// DeleteLead removes a lead permanently.
	DeleteLead(ctx context.Context, leadID string) error
}

// LeadRepositoryFacade combines all lead-related repository interfaces
type LeadRepositoryFacade interface {
	LeadReader
	LeadWriter
}
