package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	portsrepo "github.com/stroyhub/fitout_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/reports/excel"
)

type commissionService struct {
	BaseService
	projectRepo portsrepo.ProjectReader
}

// NewCommissionService creates a new commission service backed by the given
// project repository.
func NewCommissionService(projectRepo portsrepo.ProjectReader) portssvc.CommissionSvcFacade {
	return &commissionService{projectRepo: projectRepo}
}

var _ portssvc.CommissionSvcFacade = (*commissionService)(nil)

func (s *commissionService) GetStatement(ctx context.Context, projectID string) (*domain.CommissionStatement, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	statement := domain.NewCommissionStatement(*project)
	return &statement, nil
}

func (s *commissionService) ListCommissionProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.FindCommissionProjects(ctx)
}

func (s *commissionService) ExportStatementXLSX(ctx context.Context, projectID string) ([]byte, string, error) {
	statement, err := s.GetStatement(ctx, projectID)
	if err != nil {
		return nil, "", err
	}

	content, err := excel.GenerateCommissionStatement(*statement)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate commission workbook", "project_id", projectID)
		return nil, "", err
	}

	filename := fmt.Sprintf("commission_%s_%s.xlsx", statement.ProjectID, time.Now().Format("2006-01-02"))
	return content, filename, nil
}
