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

// DefaultCurrencyCode is applied when a project is created without one.
const DefaultCurrencyCode = "AED"

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new project service backed by the given repository.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", apperrors.ErrValidation)
	}

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = DefaultCurrencyCode
	}
	status := domain.ProjectPlanned
	if req.Status != "" {
		status = domain.ProjectStatus(req.Status)
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:      uuid.NewString(),
		ProjectName:    req.ProjectName,
		ClientName:     req.ClientName,
		LocationText:   req.LocationText,
		ContractAmount: req.ContractAmount,
		CurrencyCode:   currencyCode,
		StartDate:      startDate,
		DurationDays:   req.DurationDays,
		Status:         status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to create project")
		return nil, err
	}

	s.LogInfo(ctx, "Project created", "project_id", project.ProjectID)
	return &project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) ListProjects(ctx context.Context, params dto.ListProjectsParams) ([]domain.Project, *string, error) {
	filter := portsrepo.ProjectListFilter{
		Status: params.Status,
		Search: params.Search,
	}
	return s.projectRepo.FindProjects(ctx, filter, params.Limit, params.NextToken)
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", apperrors.ErrValidation)
	}

	project.ProjectName = req.ProjectName
	project.ClientName = req.ClientName
	project.LocationText = req.LocationText
	project.ContractAmount = req.ContractAmount
	if req.CurrencyCode != "" {
		project.CurrencyCode = req.CurrencyCode
	}
	project.StartDate = startDate
	project.DurationDays = req.DurationDays
	if req.Status != "" {
		project.Status = domain.ProjectStatus(req.Status)
	}
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", "project_id", projectID)
		return nil, err
	}
	return project, nil
}

func (s *projectService) UpdateProjectStatus(ctx context.Context, projectID string, req dto.UpdateProjectStatusRequest, requestingUserID string) (*domain.Project, error) {
	if !domain.ValidProjectStatus(domain.ProjectStatus(req.Status)) {
		return nil, fmt.Errorf("%w: project status %q", apperrors.ErrInvalidStatus, req.Status)
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	project.Status = domain.ProjectStatus(req.Status)
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project status", "project_id", projectID)
		return nil, err
	}

	s.LogInfo(ctx, "Project status updated", "project_id", projectID, "status", req.Status)
	return project, nil
}

// ArchiveProject retires a project by moving it to cancelled. The row and
// its children stay in place so historical figures remain derivable.
func (s *projectService) ArchiveProject(ctx context.Context, projectID string, requestingUserID string) error {
	_, err := s.UpdateProjectStatus(ctx, projectID, dto.UpdateProjectStatusRequest{Status: string(domain.ProjectCancelled)}, requestingUserID)
	return err
}

func (s *projectService) SetCommissionPercent(ctx context.Context, projectID string, req dto.SetCommissionRequest, requestingUserID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	project.CommissionPercent = req.CommissionPercent
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to set commission percent", "project_id", projectID)
		return nil, err
	}

	s.LogInfo(ctx, "Commission percent set", "project_id", projectID, "commission_percent", req.CommissionPercent.String())
	return project, nil
}

func (s *projectService) AddPaymentItem(ctx context.Context, projectID string, req dto.CreatePaymentItemRequest, requestingUserID string) (*domain.Project, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	now := time.Now()
	item := domain.PaymentItem{
		ItemID:       uuid.NewString(),
		ProjectID:    projectID,
		Title:        req.Title,
		Percent:      req.Percent,
		DueCondition: req.DueCondition,
		InvoiceTracking: domain.InvoiceTracking{
			InvoiceStatus: domain.NotInvoiced,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.projectRepo.SavePaymentItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to add payment item", "project_id", projectID)
		return nil, err
	}

	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) UpdatePaymentItem(ctx context.Context, projectID, itemID string, req dto.UpdatePaymentItemRequest, requestingUserID string) (*domain.Project, error) {
	item, err := s.projectRepo.FindPaymentItemByID(ctx, projectID, itemID)
	if err != nil {
		return nil, err
	}

	item.Title = req.Title
	item.Percent = req.Percent
	item.DueCondition = req.DueCondition
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdatePaymentItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update payment item", "item_id", itemID)
		return nil, err
	}

	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) DeletePaymentItem(ctx context.Context, projectID, itemID string, requestingUserID string) error {
	if err := s.projectRepo.DeletePaymentItem(ctx, projectID, itemID); err != nil {
		s.LogError(ctx, err, "Failed to delete payment item", "item_id", itemID)
		return err
	}
	return nil
}

// UpdateInvoiceStatus drives a base payment stage through its invoicing
// lifecycle. The date stamping and clearing rules live on the domain type.
func (s *projectService) UpdateInvoiceStatus(ctx context.Context, projectID, itemID string, req dto.UpdateInvoiceStatusRequest, requestingUserID string) (*domain.Project, error) {
	item, err := s.projectRepo.FindPaymentItemByID(ctx, projectID, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.ApplyStatus(domain.InvoiceStatus(req.InvoiceStatus), time.Now()); err != nil {
		return nil, err
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdatePaymentItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update invoice status", "item_id", itemID)
		return nil, err
	}

	s.LogInfo(ctx, "Invoice status updated", "item_id", itemID, "invoice_status", req.InvoiceStatus)
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) AddVariation(ctx context.Context, projectID string, req dto.CreateVariationRequest, requestingUserID string) (*domain.Project, error) {
	status := domain.VariationDraft
	if req.Status != "" {
		status = domain.VariationStatus(req.Status)
		if !domain.ValidVariationStatus(status) {
			return nil, fmt.Errorf("%w: variation status %q", apperrors.ErrInvalidStatus, req.Status)
		}
	}

	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	now := time.Now()
	variation := domain.Variation{
		VariationID: uuid.NewString(),
		ProjectID:   projectID,
		Title:       req.Title,
		ExtraAmount: req.ExtraAmount,
		Status:      status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.projectRepo.SaveVariation(ctx, variation); err != nil {
		s.LogError(ctx, err, "Failed to add variation", "project_id", projectID)
		return nil, err
	}

	s.LogInfo(ctx, "Variation added", "project_id", projectID, "variation_id", variation.VariationID)
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) UpdateVariation(ctx context.Context, projectID, variationID string, req dto.UpdateVariationRequest, requestingUserID string) (*domain.Project, error) {
	if req.Status != "" && !domain.ValidVariationStatus(domain.VariationStatus(req.Status)) {
		return nil, fmt.Errorf("%w: variation status %q", apperrors.ErrInvalidStatus, req.Status)
	}

	variation, err := s.projectRepo.FindVariationByID(ctx, projectID, variationID)
	if err != nil {
		return nil, err
	}

	variation.Title = req.Title
	variation.ExtraAmount = req.ExtraAmount
	if req.Status != "" {
		variation.Status = domain.VariationStatus(req.Status)
	}
	variation.LastUpdatedAt = time.Now()
	variation.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateVariation(ctx, *variation); err != nil {
		s.LogError(ctx, err, "Failed to update variation", "variation_id", variationID)
		return nil, err
	}

	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) DeleteVariation(ctx context.Context, projectID, variationID string, requestingUserID string) error {
	if err := s.projectRepo.DeleteVariation(ctx, projectID, variationID); err != nil {
		s.LogError(ctx, err, "Failed to delete variation", "variation_id", variationID)
		return err
	}
	s.LogInfo(ctx, "Variation deleted", "variation_id", variationID)
	return nil
}

func (s *projectService) AddVariationItem(ctx context.Context, projectID, variationID string, req dto.CreatePaymentItemRequest, requestingUserID string) (*domain.Project, error) {
	if _, err := s.projectRepo.FindVariationByID(ctx, projectID, variationID); err != nil {
		return nil, err
	}

	now := time.Now()
	item := domain.VariationItem{
		ItemID:       uuid.NewString(),
		VariationID:  variationID,
		Title:        req.Title,
		Percent:      req.Percent,
		DueCondition: req.DueCondition,
		InvoiceTracking: domain.InvoiceTracking{
			InvoiceStatus: domain.NotInvoiced,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.projectRepo.SaveVariationItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to add variation item", "variation_id", variationID)
		return nil, err
	}

	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) UpdateVariationItem(ctx context.Context, projectID, variationID, itemID string, req dto.UpdatePaymentItemRequest, requestingUserID string) (*domain.Project, error) {
	if _, err := s.projectRepo.FindVariationByID(ctx, projectID, variationID); err != nil {
		return nil, err
	}
	item, err := s.projectRepo.FindVariationItemByID(ctx, variationID, itemID)
	if err != nil {
		return nil, err
	}

	item.Title = req.Title
	item.Percent = req.Percent
	item.DueCondition = req.DueCondition
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateVariationItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update variation item", "item_id", itemID)
		return nil, err
	}

	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) DeleteVariationItem(ctx context.Context, projectID, variationID, itemID string, requestingUserID string) error {
	if _, err := s.projectRepo.FindVariationByID(ctx, projectID, variationID); err != nil {
		return err
	}
	if err := s.projectRepo.DeleteVariationItem(ctx, variationID, itemID); err != nil {
		s.LogError(ctx, err, "Failed to delete variation item", "item_id", itemID)
		return err
	}
	return nil
}

// UpdateVariationItemInvoiceStatus drives a variation stage through the
// same invoicing lifecycle as a base stage.
func (s *projectService) UpdateVariationItemInvoiceStatus(ctx context.Context, projectID, variationID, itemID string, req dto.UpdateInvoiceStatusRequest, requestingUserID string) (*domain.Project, error) {
	if _, err := s.projectRepo.FindVariationByID(ctx, projectID, variationID); err != nil {
		return nil, err
	}
	item, err := s.projectRepo.FindVariationItemByID(ctx, variationID, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.ApplyStatus(domain.InvoiceStatus(req.InvoiceStatus), time.Now()); err != nil {
		return nil, err
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateVariationItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update variation item invoice status", "item_id", itemID)
		return nil, err
	}

	s.LogInfo(ctx, "Variation item invoice status updated", "item_id", itemID, "invoice_status", req.InvoiceStatus)
	return s.projectRepo.FindProjectByID(ctx, projectID)
}
