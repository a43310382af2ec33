package repositories

import (
	"context"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// ProjectListFilter narrows a project listing.
type ProjectListFilter struct {
	Status string
	Search string
	// CommissionOnly restricts to projects with a non-zero commission rate.
	CommissionOnly bool
}

// ProjectReader defines read operations for project data. Reads return the
// full aggregate: payment plan, variations with their items, tasks and
// documents, so derived figures can be computed without further queries.
type ProjectReader interface {
	// FindProjectByID retrieves a project aggregate by its ID.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjects retrieves a filtered page of project aggregates ordered
	// newest first. The returned token is non-nil when more rows remain.
	FindProjects(ctx context.Context, filter ProjectListFilter, limit int, nextToken string) ([]domain.Project, *string, error)

	// FindCommissionProjects retrieves every project carrying a non-zero
	// commission rate, unpaginated, for the commission overview.
	FindCommissionProjects(ctx context.Context) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProject updates a project's own columns. Children are written
	// through their dedicated methods.
	UpdateProject(ctx context.Context, project domain.Project) error
}

// PaymentItemWriter defines write operations for a project's payment plan
type PaymentItemWriter interface {
	SavePaymentItem(ctx context.Context, item domain.PaymentItem) error
	UpdatePaymentItem(ctx context.Context, item domain.PaymentItem) error
	DeletePaymentItem(ctx context.Context, projectID, itemID string) error
}

// PaymentItemReader defines read operations for individual plan stages
type PaymentItemReader interface {
	FindPaymentItemByID(ctx context.Context, projectID, itemID string) (*domain.PaymentItem, error)
}

// VariationWriter defines write operations for variations and their items
type VariationWriter interface {
	SaveVariation(ctx context.Context, variation domain.Variation) error
	UpdateVariation(ctx context.Context, variation domain.Variation) error
	DeleteVariation(ctx context.Context, projectID, variationID string) error

	SaveVariationItem(ctx context.Context, item domain.VariationItem) error
	UpdateVariationItem(ctx context.Context, item domain.VariationItem) error
	DeleteVariationItem(ctx context.Context, variationID, itemID string) error
}

// VariationReader defines read operations for variations
type VariationReader interface {
	FindVariationByID(ctx context.Context, projectID, variationID string) (*domain.Variation, error)
	FindVariationItemByID(ctx context.Context, variationID, itemID string) (*domain.VariationItem, error)
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
	PaymentItemReader
	PaymentItemWriter
	VariationReader
	VariationWriter
}
