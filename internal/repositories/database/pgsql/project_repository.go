package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	portsrepo "github.com/stroyhub/fitout_crm_backend/internal/core/ports/repositories"
	"github.com/stroyhub/fitout_crm_backend/internal/models"
	"github.com/stroyhub/fitout_crm_backend/internal/utils/mapping"
	"github.com/stroyhub/fitout_crm_backend/internal/utils/pagination"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(db *pgxpool.Pool) *PgxProjectRepository {
	return &PgxProjectRepository{BaseRepository{Pool: db}}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, project_name, client_name, location_text, contract_amount,
	currency_code, start_date, duration_days, status, commission_percent,
	created_at, created_by, last_updated_at, last_updated_by`

const paymentItemColumns = `item_id, project_id, title, percent, due_condition,
	invoice_status, invoice_date, paid_date,
	created_at, created_by, last_updated_at, last_updated_by`

const variationColumns = `variation_id, project_id, title, extra_amount, status,
	created_at, created_by, last_updated_at, last_updated_by`

const variationItemColumns = `item_id, variation_id, title, percent, due_condition,
	invoice_status, invoice_date, paid_date,
	created_at, created_by, last_updated_at, last_updated_by`

func scanProject(row pgx.Row) (models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.ProjectName,
		&m.ClientName,
		&m.LocationText,
		&m.ContractAmount,
		&m.CurrencyCode,
		&m.StartDate,
		&m.DurationDays,
		&m.Status,
		&m.CommissionPercent,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanPaymentItem(row pgx.Row) (models.PaymentItem, error) {
	var m models.PaymentItem
	err := row.Scan(
		&m.ItemID,
		&m.ProjectID,
		&m.Title,
		&m.Percent,
		&m.DueCondition,
		&m.InvoiceStatus,
		&m.InvoiceDate,
		&m.PaidDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanVariation(row pgx.Row) (models.Variation, error) {
	var m models.Variation
	err := row.Scan(
		&m.VariationID,
		&m.ProjectID,
		&m.Title,
		&m.ExtraAmount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanVariationItem(row pgx.Row) (models.VariationItem, error) {
	var m models.VariationItem
	err := row.Scan(
		&m.ItemID,
		&m.VariationID,
		&m.Title,
		&m.Percent,
		&m.DueCondition,
		&m.InvoiceStatus,
		&m.InvoiceDate,
		&m.PaidDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`
	m, err := scanProject(r.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}

	projects := []domain.Project{mapping.ToDomainProject(m)}
	if err := r.loadChildren(ctx, projects); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

// FindProjects pages through projects ordered by (created_at DESC,
// project_id DESC) using a cursor token, then loads children for the page.
func (r *PgxProjectRepository) FindProjects(ctx context.Context, filter portsrepo.ProjectListFilter, limit int, nextToken string) ([]domain.Project, *string, error) {
	if limit <= 0 {
		limit = 25
	}

	query := `SELECT ` + projectColumns + ` FROM projects WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Status != "" {
		query += ` AND status = $` + strconv.Itoa(argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Search != "" {
		query += ` AND (project_name ILIKE $` + strconv.Itoa(argPos) + ` OR client_name ILIKE $` + strconv.Itoa(argPos) + `)`
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.CommissionOnly {
		query += ` AND commission_percent <> 0`
	}
	if nextToken != "" {
		cursorTime, cursorID, err := pagination.DecodeCursor(nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, project_id) < ($` + strconv.Itoa(argPos) + `, $` + strconv.Itoa(argPos+1) + `)`
		args = append(args, cursorTime, cursorID)
		argPos += 2
	}

	query += ` ORDER BY created_at DESC, project_id DESC LIMIT $` + strconv.Itoa(argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	modelProjects := []models.Project{}
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		modelProjects = append(modelProjects, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating project rows: %w", rows.Err())
	}

	var token *string
	if len(modelProjects) > limit {
		modelProjects = modelProjects[:limit]
		last := modelProjects[len(modelProjects)-1]
		t := pagination.EncodeCursor(last.CreatedAt, last.ProjectID)
		token = &t
	}

	projects := make([]domain.Project, len(modelProjects))
	for i, m := range modelProjects {
		projects[i] = mapping.ToDomainProject(m)
	}
	if err := r.loadChildren(ctx, projects); err != nil {
		return nil, nil, err
	}
	return projects, token, nil
}

func (r *PgxProjectRepository) FindCommissionProjects(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE commission_percent <> 0 ORDER BY created_at DESC, project_id DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query commission projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, mapping.ToDomainProject(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", rows.Err())
	}

	if err := r.loadChildren(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// loadChildren populates payment plans, variations with their items, tasks
// and documents for the given projects in four batched queries.
func (r *PgxProjectRepository) loadChildren(ctx context.Context, projects []domain.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]string, len(projects))
	index := make(map[string]*domain.Project, len(projects))
	for i := range projects {
		ids[i] = projects[i].ProjectID
		index[projects[i].ProjectID] = &projects[i]
	}

	itemRows, err := r.Pool.Query(ctx,
		`SELECT `+paymentItemColumns+` FROM payment_items WHERE project_id = ANY($1) ORDER BY created_at, item_id;`, ids)
	if err != nil {
		return fmt.Errorf("failed to query payment items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		m, err := scanPaymentItem(itemRows)
		if err != nil {
			return fmt.Errorf("failed to scan payment item row: %w", err)
		}
		if p, ok := index[m.ProjectID]; ok {
			p.PaymentItems = append(p.PaymentItems, mapping.ToDomainPaymentItem(m))
		}
	}
	if itemRows.Err() != nil {
		return fmt.Errorf("error iterating payment item rows: %w", itemRows.Err())
	}

	variationRows, err := r.Pool.Query(ctx,
		`SELECT `+variationColumns+` FROM variations WHERE project_id = ANY($1) ORDER BY created_at, variation_id;`, ids)
	if err != nil {
		return fmt.Errorf("failed to query variations: %w", err)
	}
	defer variationRows.Close()
	for variationRows.Next() {
		m, err := scanVariation(variationRows)
		if err != nil {
			return fmt.Errorf("failed to scan variation row: %w", err)
		}
		if p, ok := index[m.ProjectID]; ok {
			p.Variations = append(p.Variations, mapping.ToDomainVariation(m))
		}
	}
	if variationRows.Err() != nil {
		return fmt.Errorf("error iterating variation rows: %w", variationRows.Err())
	}

	// Index variations only after all appends are done so the pointers
	// survive slice growth.
	variationIndex := map[string]*domain.Variation{}
	variationIDs := []string{}
	for i := range projects {
		for j := range projects[i].Variations {
			v := &projects[i].Variations[j]
			variationIndex[v.VariationID] = v
			variationIDs = append(variationIDs, v.VariationID)
		}
	}

	if len(variationIDs) > 0 {
		variationItemRows, err := r.Pool.Query(ctx,
			`SELECT `+variationItemColumns+` FROM variation_items WHERE variation_id = ANY($1) ORDER BY created_at, item_id;`, variationIDs)
		if err != nil {
			return fmt.Errorf("failed to query variation items: %w", err)
		}
		defer variationItemRows.Close()
		for variationItemRows.Next() {
			m, err := scanVariationItem(variationItemRows)
			if err != nil {
				return fmt.Errorf("failed to scan variation item row: %w", err)
			}
			if v, ok := variationIndex[m.VariationID]; ok {
				v.Items = append(v.Items, mapping.ToDomainVariationItem(m))
			}
		}
		if variationItemRows.Err() != nil {
			return fmt.Errorf("error iterating variation item rows: %w", variationItemRows.Err())
		}
	}

	taskRows, err := r.Pool.Query(ctx,
		`SELECT `+taskColumns+` FROM project_tasks WHERE project_id = ANY($1) ORDER BY deadline_date NULLS LAST, created_at;`, ids)
	if err != nil {
		return fmt.Errorf("failed to query project tasks: %w", err)
	}
	defer taskRows.Close()
	for taskRows.Next() {
		m, err := scanTask(taskRows)
		if err != nil {
			return fmt.Errorf("failed to scan task row: %w", err)
		}
		if p, ok := index[m.ProjectID]; ok {
			p.Tasks = append(p.Tasks, mapping.ToDomainTask(m))
		}
	}
	if taskRows.Err() != nil {
		return fmt.Errorf("error iterating task rows: %w", taskRows.Err())
	}

	documentRows, err := r.Pool.Query(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE project_id = ANY($1) ORDER BY created_at, document_id;`, ids)
	if err != nil {
		return fmt.Errorf("failed to query documents: %w", err)
	}
	defer documentRows.Close()
	for documentRows.Next() {
		m, err := scanDocument(documentRows)
		if err != nil {
			return fmt.Errorf("failed to scan document row: %w", err)
		}
		if p, ok := index[m.ProjectID]; ok {
			p.Documents = append(p.Documents, mapping.ToDomainDocument(m))
		}
	}
	if documentRows.Err() != nil {
		return fmt.Errorf("error iterating document rows: %w", documentRows.Err())
	}

	return nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
        INSERT INTO projects (project_id, project_name, client_name, location_text, contract_amount,
            currency_code, start_date, duration_days, status, commission_percent,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.ProjectName,
		m.ClientName,
		m.LocationText,
		m.ContractAmount,
		m.CurrencyCode,
		m.StartDate,
		m.DurationDays,
		m.Status,
		m.CommissionPercent,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return fmt.Errorf("%w: project with ID %s already exists", apperrors.ErrDuplicate, m.ProjectID)
			}
			if pgErr.Code == "23503" && pgErr.ConstraintName == "fk_projects_currency" {
				return fmt.Errorf("%w: currency code %s does not exist", apperrors.ErrValidation, m.CurrencyCode)
			}
		}
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
        UPDATE projects
        SET project_name = $1, client_name = $2, location_text = $3, contract_amount = $4,
            currency_code = $5, start_date = $6, duration_days = $7, status = $8,
            commission_percent = $9, last_updated_at = $10, last_updated_by = $11
        WHERE project_id = $12;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ProjectName,
		m.ClientName,
		m.LocationText,
		m.ContractAmount,
		m.CurrencyCode,
		m.StartDate,
		m.DurationDays,
		m.Status,
		m.CommissionPercent,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ProjectID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" && pgErr.ConstraintName == "fk_projects_currency" {
			return fmt.Errorf("%w: currency code %s does not exist", apperrors.ErrValidation, m.CurrencyCode)
		}
		return fmt.Errorf("failed to execute update project query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProjectRepository) FindPaymentItemByID(ctx context.Context, projectID, itemID string) (*domain.PaymentItem, error) {
	query := `SELECT ` + paymentItemColumns + ` FROM payment_items WHERE project_id = $1 AND item_id = $2;`
	m, err := scanPaymentItem(r.Pool.QueryRow(ctx, query, projectID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment item %s: %w", itemID, err)
	}
	d := mapping.ToDomainPaymentItem(m)
	return &d, nil
}

func (r *PgxProjectRepository) SavePaymentItem(ctx context.Context, item domain.PaymentItem) error {
	m := mapping.ToModelPaymentItem(item)
	query := `
        INSERT INTO payment_items (item_id, project_id, title, percent, due_condition,
            invoice_status, invoice_date, paid_date,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.ProjectID,
		m.Title,
		m.Percent,
		m.DueCondition,
		m.InvoiceStatus,
		m.InvoiceDate,
		m.PaidDate,
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
		return fmt.Errorf("failed to save payment item: %w", err)
	}
	return nil
}

func (r *PgxProjectRepository) UpdatePaymentItem(ctx context.Context, item domain.PaymentItem) error {
	m := mapping.ToModelPaymentItem(item)
	query := `
        UPDATE payment_items
        SET title = $1, percent = $2, due_condition = $3, invoice_status = $4,
            invoice_date = $5, paid_date = $6, last_updated_at = $7, last_updated_by = $8
        WHERE project_id = $9 AND item_id = $10;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title,
		m.Percent,
		m.DueCondition,
		m.InvoiceStatus,
		m.InvoiceDate,
		m.PaidDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ProjectID,
		m.ItemID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update payment item query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment item not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProjectRepository) DeletePaymentItem(ctx context.Context, projectID, itemID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM payment_items WHERE project_id = $1 AND item_id = $2;`, projectID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete payment item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payment item not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProjectRepository) FindVariationByID(ctx context.Context, projectID, variationID string) (*domain.Variation, error) {
	query := `SELECT ` + variationColumns + ` FROM variations WHERE project_id = $1 AND variation_id = $2;`
	m, err := scanVariation(r.Pool.QueryRow(ctx, query, projectID, variationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find variation %s: %w", variationID, err)
	}
	d := mapping.ToDomainVariation(m)

	rows, err := r.Pool.Query(ctx,
		`SELECT `+variationItemColumns+` FROM variation_items WHERE variation_id = $1 ORDER BY created_at, item_id;`, variationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query variation items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		im, err := scanVariationItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan variation item row: %w", err)
		}
		d.Items = append(d.Items, mapping.ToDomainVariationItem(im))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating variation item rows: %w", rows.Err())
	}
	return &d, nil
}

func (r *PgxProjectRepository) SaveVariation(ctx context.Context, variation domain.Variation) error {
	m := mapping.ToModelVariation(variation)
	query := `
        INSERT INTO variations (variation_id, project_id, title, extra_amount, status,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.VariationID,
		m.ProjectID,
		m.Title,
		m.ExtraAmount,
		m.Status,
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
		return fmt.Errorf("failed to save variation: %w", err)
	}
	return nil
}

func (r *PgxProjectRepository) UpdateVariation(ctx context.Context, variation domain.Variation) error {
	m := mapping.ToModelVariation(variation)
	query := `
        UPDATE variations
        SET title = $1, extra_amount = $2, status = $3, last_updated_at = $4, last_updated_by = $5
        WHERE project_id = $6 AND variation_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title,
		m.ExtraAmount,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ProjectID,
		m.VariationID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update variation query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("variation not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProjectRepository) DeleteVariation(ctx context.Context, projectID, variationID string) error {
	// variation_items go with it via ON DELETE CASCADE
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM variations WHERE project_id = $1 AND variation_id = $2;`, projectID, variationID)
	if err != nil {
		return fmt.Errorf("failed to delete variation: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("variation not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProjectRepository) FindVariationItemByID(ctx context.Context, variationID, itemID string) (*domain.VariationItem, error) {
	query := `SELECT ` + variationItemColumns + ` FROM variation_items WHERE variation_id = $1 AND item_id = $2;`
	m, err := scanVariationItem(r.Pool.QueryRow(ctx, query, variationID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find variation item %s: %w", itemID, err)
	}
	d := mapping.ToDomainVariationItem(m)
	return &d, nil
}

func (r *PgxProjectRepository) SaveVariationItem(ctx context.Context, item domain.VariationItem) error {
	m := mapping.ToModelVariationItem(item)
	query := `
        INSERT INTO variation_items (item_id, variation_id, title, percent, due_condition,
            invoice_status, invoice_date, paid_date,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.VariationID,
		m.Title,
		m.Percent,
		m.DueCondition,
		m.InvoiceStatus,
		m.InvoiceDate,
		m.PaidDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: variation %s does not exist", apperrors.ErrNotFound, m.VariationID)
		}
		return fmt.Errorf("failed to save variation item: %w", err)
	}
	return nil
}

func (r *PgxProjectRepository) UpdateVariationItem(ctx context.Context, item domain.VariationItem) error {
	m := mapping.ToModelVariationItem(item)
	query := `
        UPDATE variation_items
        SET title = $1, percent = $2, due_condition = $3, invoice_status = $4,
            invoice_date = $5, paid_date = $6, last_updated_at = $7, last_updated_by = $8
        WHERE variation_id = $9 AND item_id = $10;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title,
		m.Percent,
		m.DueCondition,
		m.InvoiceStatus,
		m.InvoiceDate,
		m.PaidDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.VariationID,
		m.ItemID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update variation item query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("variation item not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProjectRepository) DeleteVariationItem(ctx context.Context, variationID, itemID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM variation_items WHERE variation_id = $1 AND item_id = $2;`, variationID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete variation item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("variation item not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
