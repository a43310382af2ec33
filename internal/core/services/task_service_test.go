package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	portssvc "github.com/stroyhub/fitout_crm_backend/internal/core/ports/services"
	"github.com/stroyhub/fitout_crm_backend/internal/core/services"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
)

// --- Mock TaskRepository ---
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) FindTaskByID(ctx context.Context, projectID, taskID string) (*domain.ProjectTask, error) {
	args := m.Called(ctx, projectID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectTask), args.Error(1)
}

func (m *MockTaskRepository) FindTasksByProject(ctx context.Context, projectID string) ([]domain.ProjectTask, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectTask), args.Error(1)
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task domain.ProjectTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task domain.ProjectTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, projectID, taskID string) error {
	args := m.Called(ctx, projectID, taskID)
	return args.Error(0)
}

// --- Test Suite ---
type TaskServiceTestSuite struct {
	suite.Suite
	mockTaskRepo    *MockTaskRepository
	mockProjectRepo *MockProjectRepository
	service         portssvc.TaskSvcFacade
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.mockTaskRepo = new(MockTaskRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.service = services.NewTaskService(suite.mockTaskRepo, suite.mockProjectRepo)
}

// --- Test Cases ---

func (suite *TaskServiceTestSuite) TestCreateTask_Success() {
	ctx := context.Background()
	projectID := uuid.NewString()
	creatorUserID := uuid.NewString()
	req := dto.CreateTaskRequest{Title: "Order joinery", DeadlineDate: "2026-09-15"}

	suite.mockProjectRepo.On("FindProjectByID", ctx, projectID).Return(&domain.Project{ProjectID: projectID}, nil).Once()
	suite.mockTaskRepo.On("SaveTask", ctx, mock.MatchedBy(func(t domain.ProjectTask) bool {
		return t.ProjectID == projectID &&
			t.Title == req.Title &&
			t.Status == domain.TaskOpen &&
			t.DeadlineDate != nil && t.DeadlineDate.Format("2006-01-02") == "2026-09-15"
	})).Return(nil).Once()

	task, err := suite.service.CreateTask(ctx, projectID, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(task)
	suite.Equal(domain.TaskOpen, task.Status)
	suite.mockTaskRepo.AssertExpectations(suite.T())
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestUpdateTaskStatus_RejectsUnknownStatus() {
	ctx := context.Background()

	task, err := suite.service.UpdateTaskStatus(ctx, uuid.NewString(), uuid.NewString(), dto.UpdateTaskStatusRequest{Status: "paused"}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(task)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "FindTaskByID")
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "UpdateTask")
}

func (suite *TaskServiceTestSuite) TestUpdateTaskStatus_StampsCompletedAt() {
	ctx := context.Background()
	projectID := uuid.NewString()
	taskID := uuid.NewString()
	existing := &domain.ProjectTask{TaskID: taskID, ProjectID: projectID, Status: domain.TaskOpen}

	suite.mockTaskRepo.On("FindTaskByID", ctx, projectID, taskID).Return(existing, nil).Once()
	suite.mockTaskRepo.On("UpdateTask", ctx, mock.MatchedBy(func(t domain.ProjectTask) bool {
		return t.Status == domain.TaskDone && t.CompletedAt != nil
	})).Return(nil).Once()

	task, err := suite.service.UpdateTaskStatus(ctx, projectID, taskID, dto.UpdateTaskStatusRequest{Status: "done"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(task.CompletedAt)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestUpdateTaskStatus_ReopenClearsCompletedAt() {
	ctx := context.Background()
	projectID := uuid.NewString()
	taskID := uuid.NewString()
	done := time.Now()
	existing := &domain.ProjectTask{TaskID: taskID, ProjectID: projectID, Status: domain.TaskDone, CompletedAt: &done}

	suite.mockTaskRepo.On("FindTaskByID", ctx, projectID, taskID).Return(existing, nil).Once()
	suite.mockTaskRepo.On("UpdateTask", ctx, mock.MatchedBy(func(t domain.ProjectTask) bool {
		return t.Status == domain.TaskOpen && t.CompletedAt == nil
	})).Return(nil).Once()

	task, err := suite.service.UpdateTaskStatus(ctx, projectID, taskID, dto.UpdateTaskStatusRequest{Status: "open"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Nil(task.CompletedAt)
	suite.mockTaskRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestTaskService(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
