package dto

import (
	"time"

	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
)

// CreateTaskRequest defines the data needed to add a task to a project.
type CreateTaskRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	DeadlineDate string `json:"deadlineDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTaskRequest edits a task's title, description and deadline.
type UpdateTaskRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	DeadlineDate string `json:"deadlineDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTaskStatusRequest moves a task between its states.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open done cancelled"`
}

// TaskResponse defines the data returned for a project task.
type TaskResponse struct {
	TaskID       string `json:"taskID"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DeadlineDate string `json:"deadlineDate,omitempty"`
	Status       string `json:"status"`
	CompletedAt  string `json:"completedAt,omitempty"`
	Overdue      bool   `json:"overdue"`
}

func ToTaskResponse(t *domain.ProjectTask) TaskResponse {
	return TaskResponse{
		TaskID:       t.TaskID,
		Title:        t.Title,
		Description:  t.Description,
		DeadlineDate: FormatDate(t.DeadlineDate),
		Status:       string(t.Status),
		CompletedAt:  FormatDate(t.CompletedAt),
		Overdue:      t.IsOverdue(time.Now().UTC()),
	}
}
