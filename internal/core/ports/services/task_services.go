package services

import (
	"context"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	"github.com/stroyhub/fitout_crm_backend/internal/dto"
)

// TaskReaderSvc defines read operations for project tasks
type TaskReaderSvc interface {
	// GetTaskByID retrieves a task by ID.
	GetTaskByID(ctx context.Context, projectID, taskID string) (*domain.ProjectTask, error)

	// ListTasks retrieves every task of a project.
	ListTasks(ctx context.Context, projectID string) ([]domain.ProjectTask, error)
}

// TaskWriterSvc defines write operations for project tasks
type TaskWriterSvc interface {
	// CreateTask adds a task to a project.
	CreateTask(ctx context.Context, projectID string, req dto.CreateTaskRequest, creatorUserID string) (*domain.ProjectTask, error)

	// UpdateTask edits a task's title and due date.
	UpdateTask(ctx context.Context, projectID, taskID string, req dto.UpdateTaskRequest, requestingUserID string) (*domain.ProjectTask, error)

	// UpdateTaskStatus moves a task between its states, stamping the
	// completion time when it is first done.
	UpdateTaskStatus(ctx context.Context, projectID, taskID string, req dto.UpdateTaskStatusRequest, requestingUserID string) (*domain.ProjectTask, error)

	// DeleteTask removes a task permanently.
	DeleteTask(ctx context.Context, projectID, taskID string) error
}

// TaskSvcFacade combines all task-related service interfaces
type TaskSvcFacade interface {
	TaskReaderSvc
	TaskWriterSvc
}
