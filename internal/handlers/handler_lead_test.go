package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
	"github.com/stroyhub/fitout_crm_backend/internal/handlers"
	"github.com/stroyhub/fitout_crm_backend/internal/middleware"
)

// --- Mock LeadService ---
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) GetLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadService) ListLeads(ctx context.Context, params dto.ListLeadsParams) ([]domain.Lead, []string, *string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	var token *string
	if args.Get(2) != nil {
		token = args.Get(2).(*string)
	}
	return args.Get(0).([]domain.Lead), args.Get(1).([]string), token, args.Error(3)
}

func (m *MockLeadService) CreateLead(ctx context.Context, req dto.CreateLeadRequest, creatorUserID string) (*domain.Lead, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadService) UpdateLead(ctx context.Context, leadID string, req dto.UpdateLeadRequest, requestingUserID string) (*domain.Lead, error) {
	args := m.Called(ctx, leadID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadService) UpdateLeadStatus(ctx context.Context, leadID string, req dto.UpdateLeadStatusRequest, requestingUserID string) (*domain.Lead, error) {
	args := m.Called(ctx, leadID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadService) DeleteLead(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.LeadSvcFacade = (*MockLeadService)(nil)

// --- Test Suite ---
type LeadHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockLeadService *MockLeadService
	jwtSecret       string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *LeadHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "crm-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LeadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLeadService = new(MockLeadService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterLeadRoutes(v1, suite.mockLeadService)
}

func (suite *LeadHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	return req
}

// --- Test Cases ---

func (suite *LeadHandlerTestSuite) TestListLeads_Success() {
	expectedLeads := []domain.Lead{
		{LeadID: uuid.NewString(), ClientName: "Al Habtoor", Status: domain.LeadNew},
		{LeadID: uuid.NewString(), ClientName: "Emaar", Status: domain.LeadInProgress},
	}
	sources := []string{"instagram", "referral"}

	suite.mockLeadService.On("ListLeads",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(p dto.ListLeadsParams) bool {
			return p.Status == "new" && p.Limit == 10
		}),
	).Return(expectedLeads, sources, nil, nil).Once()

	req := suite.authedRequest(http.MethodGet, "/api/v1/leads?status=new&limit=10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListLeadsResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Len(responseBody.Leads, 2)
	suite.Equal(expectedLeads[0].LeadID, responseBody.Leads[0].LeadID)
	suite.Equal(sources, responseBody.Sources)
	suite.Nil(responseBody.NextToken)

	suite.mockLeadService.AssertExpectations(suite.T())
}

func (suite *LeadHandlerTestSuite) TestCreateLead_Success() {
	requestingUserID := uuid.NewString()
	reqBody := dto.CreateLeadRequest{
		ClientName: "Al Habtoor",
		Phone:      "+971501234567",
		Source:     "instagram",
	}
	created := &domain.Lead{
		LeadID:     uuid.NewString(),
		ClientName: reqBody.ClientName,
		Phone:      reqBody.Phone,
		Source:     reqBody.Source,
		Status:     domain.LeadNew,
	}

	suite.mockLeadService.On("CreateLead",
		mock.AnythingOfType("*context.valueCtx"),
		reqBody,
		requestingUserID,
	).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/leads", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.LeadResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Equal(created.LeadID, responseBody.LeadID)
	suite.Equal(string(domain.LeadNew), responseBody.Status)

	suite.mockLeadService.AssertExpectations(suite.T())
}

func (suite *LeadHandlerTestSuite) TestCreateLead_MissingClientName() {
	body := []byte(`{"phone":"+971501234567"}`)
	req := suite.authedRequest(http.MethodPost, "/api/v1/leads", body)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLeadService.AssertNotCalled(suite.T(), "CreateLead")
}

func (suite *LeadHandlerTestSuite) TestGetLeadByID_NotFound() {
	leadID := uuid.NewString()

	suite.mockLeadService.On("GetLeadByID",
		mock.AnythingOfType("*context.valueCtx"),
		leadID,
	).Return(nil, apperrors.ErrNotFound).Once()

	req := suite.authedRequest(http.MethodGet, fmt.Sprintf("/api/v1/leads/%s", leadID), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLeadService.AssertExpectations(suite.T())
}

func (suite *LeadHandlerTestSuite) TestUpdateLeadStatus_InvalidStatus() {
	leadID := uuid.NewString()

	suite.mockLeadService.On("UpdateLeadStatus",
		mock.AnythingOfType("*context.valueCtx"),
		leadID,
		dto.UpdateLeadStatusRequest{Status: "archived"},
		mock.AnythingOfType("string"),
	).Return(nil, fmt.Errorf("%w: lead status %q", apperrors.ErrInvalidStatus, "archived")).Once()

	body := []byte(`{"status":"archived"}`)
	req := suite.authedRequest(http.MethodPatch, fmt.Sprintf("/api/v1/leads/%s/status", leadID), body)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLeadService.AssertExpectations(suite.T())
}

func (suite *LeadHandlerTestSuite) TestListLeads_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLeadService.AssertNotCalled(suite.T(), "ListLeads")
}

// --- Run Test Suite ---
func TestLeadHandler(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}
