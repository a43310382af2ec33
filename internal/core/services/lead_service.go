package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	portsrepo "github.com/stroyhub/fitout_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
)

type leadService struct {
	BaseService
	leadRepo portsrepo.LeadRepositoryFacade
}

// NewLeadService creates a new lead service backed by the given repository.
func NewLeadService(leadRepo portsrepo.LeadRepositoryFacade) portssvc.LeadSvcFacade {
	return &leadService{leadRepo: leadRepo}
}

var _ portssvc.LeadSvcFacade = (*leadService)(nil)

func (s *leadService) CreateLead(ctx context.Context, req dto.CreateLeadRequest, creatorUserID string) (*domain.Lead, error) {
	now := time.Now()

	status := domain.LeadNew
	if req.Status != "" {
		status = domain.LeadStatus(req.Status)
	}

	lead := domain.Lead{
		LeadID:             uuid.NewString(),
		ClientName:         req.ClientName,
		Phone:              req.Phone,
		LocationText:       req.LocationText,
		RequestDescription: req.RequestDescription,
		Source:             req.Source,
		Status:             status,
		Comment:            req.Comment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.leadRepo.SaveLead(ctx, lead); err != nil {
		s.LogError(ctx, err, "Failed to create lead")
		return nil, err
	}

	s.LogInfo(ctx, "Lead created", "lead_id", lead.LeadID)
	return &lead, nil
}

func (s *leadService) GetLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	return s.leadRepo.FindLeadByID(ctx, leadID)
}

func (s *leadService) ListLeads(ctx context.Context, params dto.ListLeadsParams) ([]domain.Lead, []string, *string, error) {
	filter := portsrepo.LeadListFilter{
		Status: params.Status,
		Source: params.Source,
		Search: params.Search,
	}
	leads, nextToken, err := s.leadRepo.FindLeads(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		return nil, nil, nil, err
	}

	sources, err := s.leadRepo.FindLeadSources(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	return leads, sources, nextToken, nil
}

func (s *leadService) UpdateLead(ctx context.Context, leadID string, req dto.UpdateLeadRequest, requestingUserID string) (*domain.Lead, error) {
	lead, err := s.leadRepo.FindLeadByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	lead.ClientName = req.ClientName
	lead.Phone = req.Phone
	lead.LocationText = req.LocationText
	lead.RequestDescription = req.RequestDescription
	lead.Source = req.Source
	lead.Comment = req.Comment
	lead.LastUpdatedAt = time.Now()
	lead.LastUpdatedBy = requestingUserID

	if err := s.leadRepo.UpdateLead(ctx, *lead); err != nil {
		s.LogError(ctx, err, "Failed to update lead", "lead_id", leadID)
		return nil, err
	}
	return lead, nil
}

func (s *leadService) UpdateLeadStatus(ctx context.Context, leadID string, req dto.UpdateLeadStatusRequest, requestingUserID string) (*domain.Lead, error) {
	if !domain.ValidLeadStatus(domain.LeadStatus(req.Status)) {
		return nil, fmt.Errorf("%w: lead status %q", apperrors.ErrInvalidStatus, req.Status)
	}

	lead, err := s.leadRepo.FindLeadByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	lead.Status = domain.LeadStatus(req.Status)
	lead.LastUpdatedAt = time.Now()
	lead.LastUpdatedBy = requestingUserID

	if err := s.leadRepo.UpdateLead(ctx, *lead); err != nil {
		s.LogError(ctx, err, "Failed to update lead status", "lead_id", leadID)
		return nil, err
	}

	s.LogInfo(ctx, "Lead status updated", "lead_id", leadID, "status", req.Status)
	return lead, nil
}

func (s *leadService) DeleteLead(ctx context.Context, leadID string) error {
	if err := s.leadRepo.DeleteLead(ctx, leadID); err != nil {
		s.LogError(ctx, err, "Failed to delete lead", "lead_id", leadID)
		return err
	}
	s.LogInfo(ctx, "Lead deleted", "lead_id", leadID)
	return nil
}
