package models

import "time"

// ProjectTask represents a row of the project_tasks table.
type ProjectTask struct {
	TaskID       string     `db:"task_id"`
	ProjectID    string     `db:"project_id"`
	Title        string     `db:"title"`
	Description  string     `db:"description"`
	DeadlineDate *time.Time `db:"deadline_date"`
	Status       string     `db:"status"`
	CompletedAt  *time.Time `db:"completed_at"`
	AuditFields
}
