package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	portsrepo "github.com/stroyhub/fitout_crm_backend/internal/core/ports/repositories"
	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/core/services"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
)

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjects(ctx context.Context, filter portsrepo.ProjectListFilter, limit int, nextToken string) ([]domain.Project, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Project), token, args.Error(2)
}

func (m *MockProjectRepository) FindCommissionProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindPaymentItemByID(ctx context.Context, projectID, itemID string) (*domain.PaymentItem, error) {
	args := m.Called(ctx, projectID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentItem), args.Error(1)
}

func (m *MockProjectRepository) SavePaymentItem(ctx context.Context, item domain.PaymentItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdatePaymentItem(ctx context.Context, item domain.PaymentItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockProjectRepository) DeletePaymentItem(ctx context.Context, projectID, itemID string) error {
	args := m.Called(ctx, projectID, itemID)
	return args.Error(0)
}

func (m *MockProjectRepository) FindVariationByID(ctx context.Context, projectID, variationID string) (*domain.Variation, error) {
	args := m.Called(ctx, projectID, variationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Variation), args.Error(1)
}

func (m *MockProjectRepository) FindVariationItemByID(ctx context.Context, variationID, itemID string) (*domain.VariationItem, error) {
	args := m.Called(ctx, variationID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VariationItem), args.Error(1)
}

func (m *MockProjectRepository) SaveVariation(ctx context.Context, variation domain.Variation) error {
	args := m.Called(ctx, variation)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateVariation(ctx context.Context, variation domain.Variation) error {
	args := m.Called(ctx, variation)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteVariation(ctx context.Context, projectID, variationID string) error {
	args := m.Called(ctx, projectID, variationID)
	return args.Error(0)
}

func (m *MockProjectRepository) SaveVariationItem(ctx context.Context, item domain.VariationItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateVariationItem(ctx context.Context, item domain.VariationItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteVariationItem(ctx context.Context, variationID, itemID string) error {
	args := m.Called(ctx, variationID, itemID)
	return args.Error(0)
}

// --- Test Suite ---
type ProjectServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProjectRepository
	service  portssvc.ProjectSvcFacade
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProjectRepository)
	suite.service = services.NewProjectService(suite.mockRepo)
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// --- Test Cases ---

func (suite *ProjectServiceTestSuite) TestCreateProject_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateProjectRequest{
		ProjectName:    "Villa fit-out",
		ClientName:     "Al Mansoori",
		ContractAmount: dec(250000),
		StartDate:      "2026-03-01",
	}

	suite.mockRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.ProjectName == req.ProjectName &&
			p.CurrencyCode == services.DefaultCurrencyCode &&
			p.Status == domain.ProjectPlanned &&
			p.StartDate != nil && p.StartDate.Format("2006-01-02") == "2026-03-01" &&
			p.CreatedBy == creatorUserID
	})).Return(nil).Once()

	project, err := suite.service.CreateProject(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(project)
	suite.NotEmpty(project.ProjectID)
	suite.Equal(services.DefaultCurrencyCode, project.CurrencyCode)
	suite.Equal(domain.ProjectPlanned, project.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_BadStartDate() {
	ctx := context.Background()
	req := dto.CreateProjectRequest{
		ProjectName:    "Villa fit-out",
		ClientName:     "Al Mansoori",
		ContractAmount: dec(250000),
		StartDate:      "01/03/2026",
	}

	project, err := suite.service.CreateProject(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProject")
}

func (suite *ProjectServiceTestSuite) TestArchiveProject_MovesToCancelled() {
	ctx := context.Background()
	projectID := uuid.NewString()
	existing := &domain.Project{ProjectID: projectID, Status: domain.ProjectActive}

	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Status == domain.ProjectCancelled
	})).Return(nil).Once()

	err := suite.service.ArchiveProject(ctx, projectID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectStatus_RejectsUnknownStatus() {
	ctx := context.Background()
	projectID := uuid.NewString()

	project, err := suite.service.UpdateProjectStatus(ctx, projectID, dto.UpdateProjectStatusRequest{Status: "archived"}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindProjectByID")
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProject")
}

func (suite *ProjectServiceTestSuite) TestUpdateVariation_RejectsUnknownStatus() {
	ctx := context.Background()
	projectID := uuid.NewString()
	variationID := uuid.NewString()
	req := dto.UpdateVariationRequest{Title: "Extra joinery", ExtraAmount: dec(20000), Status: "rejected"}

	project, err := suite.service.UpdateVariation(ctx, projectID, variationID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateVariation")
}

func (suite *ProjectServiceTestSuite) TestSetCommissionPercent_Success() {
	ctx := context.Background()
	projectID := uuid.NewString()
	existing := &domain.Project{ProjectID: projectID, Status: domain.ProjectActive}
	req := dto.SetCommissionRequest{CommissionPercent: dec(5)}

	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.CommissionPercent.Equal(dec(5))
	})).Return(nil).Once()

	project, err := suite.service.SetCommissionPercent(ctx, projectID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(project.CommissionPercent.Equal(dec(5)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestAddPaymentItem_ReturnsRefreshedAggregate() {
	ctx := context.Background()
	projectID := uuid.NewString()
	existing := &domain.Project{ProjectID: projectID}
	refreshed := &domain.Project{
		ProjectID:    projectID,
		PaymentItems: []domain.PaymentItem{{Title: "Advance", Percent: dec(40)}},
	}
	req := dto.CreatePaymentItemRequest{Title: "Advance", Percent: dec(40)}

	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(existing, nil).Once()
	suite.mockRepo.On("SavePaymentItem", ctx, mock.MatchedBy(func(item domain.PaymentItem) bool {
		return item.ProjectID == projectID &&
			item.Title == "Advance" &&
			item.InvoiceStatus == domain.NotInvoiced &&
			item.InvoiceDate == nil && item.PaidDate == nil
	})).Return(nil).Once()
	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(refreshed, nil).Once()

	project, err := suite.service.AddPaymentItem(ctx, projectID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Len(project.PaymentItems, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestAddPaymentItem_ProjectNotFound() {
	ctx := context.Background()
	projectID := uuid.NewString()

	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(nil, apperrors.ErrNotFound).Once()

	project, err := suite.service.AddPaymentItem(ctx, projectID, dto.CreatePaymentItemRequest{Title: "Advance", Percent: dec(40)}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePaymentItem")
}

func (suite *ProjectServiceTestSuite) TestUpdateInvoiceStatus_StampsPaidDate() {
	ctx := context.Background()
	projectID := uuid.NewString()
	itemID := uuid.NewString()
	item := &domain.PaymentItem{
		ItemID:    itemID,
		ProjectID: projectID,
		Percent:   dec(40),
		InvoiceTracking: domain.InvoiceTracking{
			InvoiceStatus: domain.Invoiced,
		},
	}

	suite.mockRepo.On("FindPaymentItemByID", ctx, projectID, itemID).Return(item, nil).Once()
	suite.mockRepo.On("UpdatePaymentItem", ctx, mock.MatchedBy(func(i domain.PaymentItem) bool {
		return i.InvoiceStatus == domain.Paid && i.PaidDate != nil
	})).Return(nil).Once()
	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(&domain.Project{ProjectID: projectID}, nil).Once()

	project, err := suite.service.UpdateInvoiceStatus(ctx, projectID, itemID, dto.UpdateInvoiceStatusRequest{InvoiceStatus: "paid"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotNil(project)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestUpdateInvoiceStatus_RejectsUnknownStatus() {
	ctx := context.Background()
	projectID := uuid.NewString()
	itemID := uuid.NewString()
	item := &domain.PaymentItem{ItemID: itemID, ProjectID: projectID}

	suite.mockRepo.On("FindPaymentItemByID", ctx, projectID, itemID).Return(item, nil).Once()

	project, err := suite.service.UpdateInvoiceStatus(ctx, projectID, itemID, dto.UpdateInvoiceStatusRequest{InvoiceStatus: "settled"}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePaymentItem")
}

func (suite *ProjectServiceTestSuite) TestAddVariationItem_VariationNotFound() {
	ctx := context.Background()
	projectID := uuid.NewString()
	variationID := uuid.NewString()

	suite.mockRepo.On("FindVariationByID", ctx, projectID, variationID).Return(nil, apperrors.ErrNotFound).Once()

	project, err := suite.service.AddVariationItem(ctx, projectID, variationID, dto.CreatePaymentItemRequest{Title: "Stage 1", Percent: dec(50)}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(project)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveVariationItem")
}

func (suite *ProjectServiceTestSuite) TestUpdateVariationItemInvoiceStatus_Success() {
	ctx := context.Background()
	projectID := uuid.NewString()
	variationID := uuid.NewString()
	itemID := uuid.NewString()

	variation := &domain.Variation{VariationID: variationID, ProjectID: projectID}
	item := &domain.VariationItem{
		ItemID:      itemID,
		VariationID: variationID,
		Percent:     dec(100),
	}

	suite.mockRepo.On("FindVariationByID", ctx, projectID, variationID).Return(variation, nil).Once()
	suite.mockRepo.On("FindVariationItemByID", ctx, variationID, itemID).Return(item, nil).Once()
	suite.mockRepo.On("UpdateVariationItem", ctx, mock.MatchedBy(func(i domain.VariationItem) bool {
		return i.InvoiceStatus == domain.Invoiced && i.InvoiceDate != nil
	})).Return(nil).Once()
	suite.mockRepo.On("FindProjectByID", ctx, projectID).Return(&domain.Project{ProjectID: projectID}, nil).Once()

	project, err := suite.service.UpdateVariationItemInvoiceStatus(ctx, projectID, variationID, itemID, dto.UpdateInvoiceStatusRequest{InvoiceStatus: "invoiced"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotNil(project)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestDeleteVariation_RepoError() {
	ctx := context.Background()
	projectID := uuid.NewString()
	variationID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("DeleteVariation", ctx, projectID, variationID).Return(expectedErr).Once()

	err := suite.service.DeleteVariation(ctx, projectID, variationID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestListProjects_PassesFilter() {
	ctx := context.Background()
	params := dto.ListProjectsParams{Status: "active", Search: "villa", Limit: 10}
	token := "next"
	expected := []domain.Project{{ProjectID: uuid.NewString()}}

	suite.mockRepo.On("FindProjects", ctx, portsrepo.ProjectListFilter{Status: "active", Search: "villa"}, 10, "").Return(expected, &token, nil).Once()

	projects, nextToken, err := suite.service.ListProjects(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(expected, projects)
	suite.Require().NotNil(nextToken)
	suite.Equal("next", *nextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
