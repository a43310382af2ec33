package domain

import "time"

// TaskStatus is the lifecycle state of a project task.
type TaskStatus string

const (
	TaskOpen      TaskStatus = "open"
	TaskDone      TaskStatus = "done"
	TaskCancelled TaskStatus = "cancelled"
)

// ValidTaskStatus reports whether s is one of the allowed states.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskOpen, TaskDone, TaskCancelled:
		return true
	}
	return false
}

// ProjectTask is a unit of work tracked against a project.
type ProjectTask struct {
	TaskID       string     `json:"taskID"` // Primary Key (UUID)
	ProjectID    string     `json:"projectID"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DeadlineDate *time.Time `json:"deadlineDate,omitempty"`
	Status       TaskStatus `json:"status"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	AuditFields
}

// IsOverdue reports whether an open task has slipped past its deadline.
func (t ProjectTask) IsOverdue(today time.Time) bool {
	if t.DeadlineDate == nil || t.Status != TaskOpen {
		return false
	}
	return t.DeadlineDate.Before(today)
}
