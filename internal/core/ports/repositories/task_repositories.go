package repositories

import (
	"context"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// TaskReader defines read operations for project tasks
type TaskReader interface {
	// FindTaskByID retrieves a specific task by its ID.
	FindTaskByID(ctx context.Context, projectID, taskID string) (*domain.ProjectTask, error)

	// FindTasksByProject retrieves every task of a project ordered by deadline.
	FindTasksByProject(ctx context.Context, projectID string) ([]domain.ProjectTask, error)
}

// TaskWriter defines write operations for project tasks
type TaskWriter interface {
	// SaveTask persists a new task.
	SaveTask(ctx context.Context, task domain.ProjectTask) error

	// UpdateTask updates an existing task.
	UpdateTask(ctx context.Context, task domain.ProjectTask) error

	// DeleteTask removes a task permanently.
	DeleteTask(ctx context.Context, projectID, taskID string) error
}

// TaskRepositoryFacade combines all task-related repository interfaces
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
