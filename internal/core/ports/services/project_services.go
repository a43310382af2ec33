package services

import (
	"context"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
)

// ProjectReaderSvc defines read operations for project data
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a full project aggregate by ID.
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves a filtered page of project aggregates.
	ListProjects(ctx context.Context, params dto.ListProjectsParams) ([]domain.Project, *string, error)
}

// ProjectWriterSvc defines write operations for project data
type ProjectWriterSvc interface {
	// CreateProject creates a new project.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)

	// UpdateProject updates an existing project's own fields.
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error)

	// UpdateProjectStatus moves a project between lifecycle states.
	UpdateProjectStatus(ctx context.Context, projectID string, req dto.UpdateProjectStatusRequest, requestingUserID string) (*domain.Project, error)

	// ArchiveProject retires a project by moving it to cancelled. Nothing
	// is ever physically deleted.
	ArchiveProject(ctx context.Context, projectID string, requestingUserID string) error

	// SetCommissionPercent sets the agent commission rate.
	SetCommissionPercent(ctx context.Context, projectID string, req dto.SetCommissionRequest, requestingUserID string) (*domain.Project, error)
}

// PaymentPlanSvc defines operations on a project's base payment plan
type PaymentPlanSvc interface {
	AddPaymentItem(ctx context.Context, projectID string, req dto.CreatePaymentItemRequest, requestingUserID string) (*domain.Project, error)
	UpdatePaymentItem(ctx context.Context, projectID, itemID string, req dto.UpdatePaymentItemRequest, requestingUserID string) (*domain.Project, error)
	DeletePaymentItem(ctx context.Context, projectID, itemID string, requestingUserID string) error

	// UpdateInvoiceStatus drives the invoicing lifecycle of a stage,
	// stamping or clearing its dates as the transition requires.
	UpdateInvoiceStatus(ctx context.Context, projectID, itemID string, req dto.UpdateInvoiceStatusRequest, requestingUserID string) (*domain.Project, error)
}

// VariationSvc defines operations on variations and their payment items
type VariationSvc interface {
	AddVariation(ctx context.Context, projectID string, req dto.CreateVariationRequest, requestingUserID string) (*domain.Project, error)
	UpdateVariation(ctx context.Context, projectID, variationID string, req dto.UpdateVariationRequest, requestingUserID string) (*domain.Project, error)
	DeleteVariation(ctx context.Context, projectID, variationID string, requestingUserID string) error

	AddVariationItem(ctx context.Context, projectID, variationID string, req dto.CreatePaymentItemRequest, requestingUserID string) (*domain.Project, error)
	UpdateVariationItem(ctx context.Context, projectID, variationID, itemID string, req dto.UpdatePaymentItemRequest, requestingUserID string) (*domain.Project, error)
	DeleteVariationItem(ctx context.Context, projectID, variationID, itemID string, requestingUserID string) error

	// UpdateVariationItemInvoiceStatus drives the invoicing lifecycle of a
	// variation stage.
	UpdateVariationItemInvoiceStatus(ctx context.Context, projectID, variationID, itemID string, req dto.UpdateInvoiceStatusRequest, requestingUserID string) (*domain.Project, error)
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
	PaymentPlanSvc
	VariationSvc
}
