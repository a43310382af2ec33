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

type taskService struct {
	BaseService
	taskRepo    portsrepo.TaskRepositoryFacade
	projectRepo portsrepo.ProjectReader
}

// NewTaskService creates a new task service backed by the given repositories.
func NewTaskService(taskRepo portsrepo.TaskRepositoryFacade, projectRepo portsrepo.ProjectReader) portssvc.TaskSvcFacade {
	return &taskService{taskRepo: taskRepo, projectRepo: projectRepo}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) GetTaskByID(ctx context.Context, projectID, taskID string) (*domain.ProjectTask, error) {
	return s.taskRepo.FindTaskByID(ctx, projectID, taskID)
}

func (s *taskService) ListTasks(ctx context.Context, projectID string) ([]domain.ProjectTask, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.taskRepo.FindTasksByProject(ctx, projectID)
}

func (s *taskService) CreateTask(ctx context.Context, projectID string, req dto.CreateTaskRequest, creatorUserID string) (*domain.ProjectTask, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	deadline, err := dto.ParseDate(req.DeadlineDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid deadline date", apperrors.ErrValidation)
	}

	now := time.Now()
	task := domain.ProjectTask{
		TaskID:       uuid.NewString(),
		ProjectID:    projectID,
		Title:        req.Title,
		Description:  req.Description,
		DeadlineDate: deadline,
		Status:       domain.TaskOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to create task", "project_id", projectID)
		return nil, err
	}
	return &task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, projectID, taskID string, req dto.UpdateTaskRequest, requestingUserID string) (*domain.ProjectTask, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	deadline, err := dto.ParseDate(req.DeadlineDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid deadline date", apperrors.ErrValidation)
	}

	task.Title = req.Title
	task.Description = req.Description
	task.DeadlineDate = deadline
	task.LastUpdatedAt = time.Now()
	task.LastUpdatedBy = requestingUserID

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task", "task_id", taskID)
		return nil, err
	}
	return task, nil
}

func (s *taskService) UpdateTaskStatus(ctx context.Context, projectID, taskID string, req dto.UpdateTaskStatusRequest, requestingUserID string) (*domain.ProjectTask, error) {
	if !domain.ValidTaskStatus(domain.TaskStatus(req.Status)) {
		return nil, fmt.Errorf("%w: task status %q", apperrors.ErrInvalidStatus, req.Status)
	}

	task, err := s.taskRepo.FindTaskByID(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	newStatus := domain.TaskStatus(req.Status)
	now := time.Now()
	switch {
	case newStatus == domain.TaskDone && task.Status != domain.TaskDone:
		task.CompletedAt = &now
	case newStatus != domain.TaskDone:
		task.CompletedAt = nil
	}
	task.Status = newStatus
	task.LastUpdatedAt = now
	task.LastUpdatedBy = requestingUserID

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task status", "task_id", taskID)
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, projectID, taskID string) error {
	if err := s.taskRepo.DeleteTask(ctx, projectID, taskID); err != nil {
		s.LogError(ctx, err, "Failed to delete task", "task_id", taskID)
		return err
	}
	return nil
}
