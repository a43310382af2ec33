package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
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

// --- Mock LeadRepository ---
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindLeads(ctx context.Context, filter portsrepo.LeadListFilter, limit int, nextToken string) ([]domain.Lead, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Lead), token, args.Error(2)
}

func (m *MockLeadRepository) FindLeadSources(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLeadRepository) SaveLead(ctx context.Context, lead domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) DeleteLead(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

// --- Test Suite ---
type LeadServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLeadRepository
	service  portssvc.LeadSvcFacade
}

func (suite *LeadServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLeadRepository)
	suite.service = services.NewLeadService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *LeadServiceTestSuite) TestCreateLead_DefaultsToNew() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateLeadRequest{
		ClientName: "Al Futtaim",
		Phone:      "+971501234567",
		Source:     "instagram",
	}

	suite.mockRepo.On("SaveLead", ctx, mock.MatchedBy(func(l domain.Lead) bool {
		return l.ClientName == req.ClientName && l.Status == domain.LeadNew && l.CreatedBy == creatorUserID
	})).Return(nil).Once()

	lead, err := suite.service.CreateLead(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(lead)
	suite.NotEmpty(lead.LeadID)
	suite.Equal(domain.LeadNew, lead.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeadServiceTestSuite) TestListLeads_ReturnsSources() {
	ctx := context.Background()
	params := dto.ListLeadsParams{Status: "new", Limit: 25}
	expected := []domain.Lead{{LeadID: uuid.NewString()}}
	sources := []string{"instagram", "referral"}

	suite.mockRepo.On("FindLeads", ctx, portsrepo.LeadListFilter{Status: "new"}, 25, "").Return(expected, nil, nil).Once()
	suite.mockRepo.On("FindLeadSources", ctx).Return(sources, nil).Once()

	leads, gotSources, nextToken, err := suite.service.ListLeads(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(expected, leads)
	suite.Equal(sources, gotSources)
	suite.Nil(nextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeadServiceTestSuite) TestUpdateLeadStatus_RejectsUnknownStatus() {
	ctx := context.Background()
	leadID := uuid.NewString()

	lead, err := suite.service.UpdateLeadStatus(ctx, leadID, dto.UpdateLeadStatusRequest{Status: "archived"}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(lead)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateLead")
}

func (suite *LeadServiceTestSuite) TestUpdateLeadStatus_Success() {
	ctx := context.Background()
	leadID := uuid.NewString()
	existing := &domain.Lead{LeadID: leadID, Status: domain.LeadNew}

	suite.mockRepo.On("FindLeadByID", ctx, leadID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateLead", ctx, mock.MatchedBy(func(l domain.Lead) bool {
		return l.Status == domain.LeadInProgress
	})).Return(nil).Once()

	lead, err := suite.service.UpdateLeadStatus(ctx, leadID, dto.UpdateLeadStatusRequest{Status: "in_progress"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.LeadInProgress, lead.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeadServiceTestSuite) TestDeleteLead_RepoError() {
	ctx := context.Background()
	leadID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("DeleteLead", ctx, leadID).Return(expectedErr).Once()

	err := suite.service.DeleteLead(ctx, leadID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestLeadService(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}
