package services

import (
	"context"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// CommissionSvcFacade derives agent commission figures. Everything it
// returns is computed from project aggregates; nothing is stored.
type CommissionSvcFacade interface {
	// GetStatement builds the per-project commission breakdown.
	GetStatement(ctx context.Context, projectID string) (*domain.CommissionStatement, error)

	// ListCommissionProjects retrieves every project with a non-zero
	// commission rate for the cross-project overview.
	ListCommissionProjects(ctx context.Context) ([]domain.Project, error)

	// ExportStatementXLSX renders a project's commission statement as an
	// Excel workbook and returns the file bytes.
	ExportStatementXLSX(ctx context.Context, projectID string) ([]byte, string, error)
}
