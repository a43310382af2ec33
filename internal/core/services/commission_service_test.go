package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/core/services"
)

// --- Test Suite ---
type CommissionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProjectRepository
	service  portssvc.CommissionSvcFacade
}

func (suite *CommissionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProjectRepository)
	suite.service = services.NewCommissionService(suite.mockRepo)
}

func (suite *CommissionServiceTestSuite) commissionProject() *domain.Project {
	return &domain.Project{
		ProjectID:         uuid.NewString(),
		ProjectName:       "Marina Tower Fit-Out",
		CurrencyCode:      "AED",
		ContractAmount:    dec(100000),
		CommissionPercent: dec(5),
		PaymentItems: []domain.PaymentItem{
			{ItemID: uuid.NewString(), Title: "Mobilisation", Percent: dec(40), InvoiceTracking: domain.InvoiceTracking{InvoiceStatus: domain.Paid}},
			{ItemID: uuid.NewString(), Title: "Handover", Percent: dec(60), InvoiceTracking: domain.InvoiceTracking{InvoiceStatus: domain.NotInvoiced}},
		},
	}
}

// --- Test Cases ---

func (suite *CommissionServiceTestSuite) TestGetStatement_Success() {
	ctx := context.Background()
	project := suite.commissionProject()

	suite.mockRepo.On("FindProjectByID", ctx, project.ProjectID).Return(project, nil).Once()

	statement, err := suite.service.GetStatement(ctx, project.ProjectID)

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.Equal(project.ProjectID, statement.ProjectID)
	suite.Len(statement.ContractStages, 2)
	suite.True(statement.TotalCommission.Equal(dec(5000)), "total was %s", statement.TotalCommission)
	suite.True(statement.Received.Equal(dec(2000)), "received was %s", statement.Received)
	suite.True(statement.GrandPending.Equal(dec(3000)), "pending was %s", statement.GrandPending)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CommissionServiceTestSuite) TestGetStatement_ZeroPercent() {
	ctx := context.Background()
	project := suite.commissionProject()
	project.CommissionPercent = decimal.Zero

	suite.mockRepo.On("FindProjectByID", ctx, project.ProjectID).Return(project, nil).Once()

	statement, err := suite.service.GetStatement(ctx, project.ProjectID)

	suite.Require().NoError(err)
	suite.True(statement.TotalCommission.IsZero())
	suite.True(statement.GrandTotal.IsZero())
}

func (suite *CommissionServiceTestSuite) TestGetStatement_ProjectNotFound() {
	ctx := context.Background()
	projectID := uuid.NewString()

	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(nil, apperrors.ErrNotFound).Once()

	statement, err := suite.service.GetStatement(ctx, projectID)

	suite.Require().Error(err)
	suite.Nil(statement)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CommissionServiceTestSuite) TestListCommissionProjects() {
	ctx := context.Background()
	expected := []domain.Project{*suite.commissionProject()}

	suite.mockRepo.On("FindCommissionProjects", ctx).Return(expected, nil).Once()

	projects, err := suite.service.ListCommissionProjects(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, projects)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CommissionServiceTestSuite) TestExportStatementXLSX() {
	ctx := context.Background()
	project := suite.commissionProject()

	suite.mockRepo.On("FindProjectByID", ctx, project.ProjectID).Return(project, nil).Once()

	content, filename, err := suite.service.ExportStatementXLSX(ctx, project.ProjectID)

	suite.Require().NoError(err)
	suite.NotEmpty(content)
	suite.Contains(filename, project.ProjectID)
	suite.Contains(filename, ".xlsx")
}

// --- Run Suite ---
func TestCommissionService(t *testing.T) {
	suite.Run(t, new(CommissionServiceTestSuite))
}
