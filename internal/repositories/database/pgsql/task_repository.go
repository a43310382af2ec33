package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	portsrepo "github.com/stroyhub/fitout_crm_backend/internal/core/ports/repositories"
	"github.com/stroyhub/fitout_crm_backend/internal/models"
	"github.com/stroyhub/fitout_crm_backend/internal/utils/mapping"
)

type PgxTaskRepository struct {
	BaseRepository
}

func newPgxTaskRepository(db *pgxpool.Pool) *PgxTaskRepository {
	return &PgxTaskRepository{BaseRepository{Pool: db}}
}

// Ensure PgxTaskRepository implements portsrepo.TaskRepositoryFacade
var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

const taskColumns = `task_id, project_id, title, description, deadline_date, status, completed_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanTask(row pgx.Row) (models.ProjectTask, error) {
	var m models.ProjectTask
	err := row.Scan(
		&m.TaskID,
		&m.ProjectID,
		&m.Title,
		&m.Description,
		&m.DeadlineDate,
		&m.Status,
		&m.CompletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.ProjectTask) error {
	m := mapping.ToModelTask(task)
	query := `
        INSERT INTO project_tasks (task_id, project_id, title, description, deadline_date, status, completed_at,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TaskID,
		m.ProjectID,
		m.Title,
		m.Description,
		m.DeadlineDate,
		m.Status,
		m.CompletedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: project %s does not exist", apperrors.ErrNotFound, m.ProjectID)
		}
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, projectID, taskID string) (*domain.ProjectTask, error) {
	query := `SELECT ` + taskColumns + ` FROM project_tasks WHERE project_id = $1 AND task_id = $2;`
	m, err := scanTask(r.Pool.QueryRow(ctx, query, projectID, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task %s: %w", taskID, err)
	}
	d := mapping.ToDomainTask(m)
	return &d, nil
}

func (r *PgxTaskRepository) FindTasksByProject(ctx context.Context, projectID string) ([]domain.ProjectTask, error) {
	query := `SELECT ` + taskColumns + ` FROM project_tasks WHERE project_id = $1 ORDER BY deadline_date NULLS LAST, created_at;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	modelTasks := []models.ProjectTask{}
	for rows.Next() {
		m, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		modelTasks = append(modelTasks, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", rows.Err())
	}
	return mapping.ToDomainTaskSlice(modelTasks), nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.ProjectTask) error {
	m := mapping.ToModelTask(task)
	query := `
        UPDATE project_tasks
        SET title = $1, description = $2, deadline_date = $3, status = $4, completed_at = $5,
            last_updated_at = $6, last_updated_by = $7
        WHERE project_id = $8 AND task_id = $9;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title,
		m.Description,
		m.DeadlineDate,
		m.Status,
		m.CompletedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ProjectID,
		m.TaskID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update task query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("task not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, projectID, taskID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM project_tasks WHERE project_id = $1 AND task_id = $2;`, projectID, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("task not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
