package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stroyhub/fitout_crm_backend/internal/apperrors"
	"github.com/stroyhub/fitout_crm_backend/internal/core/domain"
	portsrepo "github.com/stroyhub/fitout_crm_backend/internal/core/ports/repositories"
	"github.com/stroyhub/fitout_crm_backend/internal/models"
	"github.com/stroyhub/fitout_crm_backend/internal/utils/mapping"
	"github.com/stroyhub/fitout_crm_backend/internal/utils/pagination"
)

type PgxLeadRepository struct {
	BaseRepository
}

func newPgxLeadRepository(db *pgxpool.Pool) *PgxLeadRepository {
	return &PgxLeadRepository{BaseRepository{Pool: db}}
}

// Ensure PgxLeadRepository implements portsrepo.LeadRepositoryFacade
var _ portsrepo.LeadRepositoryFacade = (*PgxLeadRepository)(nil)

const leadColumns = `lead_id, client_name, phone, location_text, request_description,
	source, status, comment, created_at, created_by, last_updated_at, last_updated_by`

func scanLead(row pgx.Row) (models.Lead, error) {
	var m models.Lead
	err := row.Scan(
		&m.LeadID,
		&m.ClientName,
		&m.Phone,
		&m.LocationText,
		&m.RequestDescription,
		&m.Source,
		&m.Status,
		&m.Comment,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLeadRepository) SaveLead(ctx context.Context, lead domain.Lead) error {
	m := mapping.ToModelLead(lead)
	query := `
        INSERT INTO leads (lead_id, client_name, phone, location_text, request_description,
            source, status, comment, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.LeadID,
		m.ClientName,
		m.Phone,
		m.LocationText,
		m.RequestDescription,
		m.Source,
		m.Status,
		m.Comment,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}
	return nil
}

func (r *PgxLeadRepository) FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE lead_id = $1;`
	m, err := scanLead(r.Pool.QueryRow(ctx, query, leadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find lead by ID %s: %w", leadID, err)
	}
	d := mapping.ToDomainLead(m)
	return &d, nil
}

// FindLeads pages through leads ordered by (created_at DESC, lead_id DESC)
// using a cursor token. One extra row is fetched to decide whether a next
// page exists.
func (r *PgxLeadRepository) FindLeads(ctx context.Context, filter portsrepo.LeadListFilter, limit int, nextToken string) ([]domain.Lead, *string, error) {
	if limit <= 0 {
		limit = 25
	}

	query := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Status != "" {
		query += ` AND status = $` + strconv.Itoa(argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Source != "" {
		query += ` AND source = $` + strconv.Itoa(argPos)
		args = append(args, filter.Source)
		argPos++
	}
	if filter.Search != "" {
		query += ` AND (client_name ILIKE $` + strconv.Itoa(argPos) + ` OR phone ILIKE $` + strconv.Itoa(argPos) + ` OR request_description ILIKE $` + strconv.Itoa(argPos) + `)`
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if nextToken != "" {
		cursorTime, cursorID, err := pagination.DecodeCursor(nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, lead_id) < ($` + strconv.Itoa(argPos) + `, $` + strconv.Itoa(argPos+1) + `)`
		args = append(args, cursorTime, cursorID)
		argPos += 2
	}

	query += ` ORDER BY created_at DESC, lead_id DESC LIMIT $` + strconv.Itoa(argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	modelLeads := []models.Lead{}
	for rows.Next() {
		m, err := scanLead(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan lead row: %w", err)
		}
		modelLeads = append(modelLeads, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating lead rows: %w", rows.Err())
	}

	var token *string
	if len(modelLeads) > limit {
		modelLeads = modelLeads[:limit]
		last := modelLeads[len(modelLeads)-1]
		t := pagination.EncodeCursor(last.CreatedAt, last.LeadID)
		token = &t
	}

	return mapping.ToDomainLeadSlice(modelLeads), token, nil
}

func (r *PgxLeadRepository) FindLeadSources(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT source FROM leads WHERE source <> '' ORDER BY source;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lead sources: %w", err)
	}
	defer rows.Close()

	sources := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan lead source: %w", err)
		}
		sources = append(sources, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating lead sources: %w", rows.Err())
	}
	return sources, nil
}

func (r *PgxLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	m := mapping.ToModelLead(lead)
	query := `
        UPDATE leads
        SET client_name = $1, phone = $2, location_text = $3, request_description = $4,
            source = $5, status = $6, comment = $7, last_updated_at = $8, last_updated_by = $9
        WHERE lead_id = $10;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ClientName,
		m.Phone,
		m.LocationText,
		m.RequestDescription,
		m.Source,
		m.Status,
		m.Comment,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.LeadID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update lead query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("lead not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxLeadRepository) DeleteLead(ctx context.Context, leadID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM leads WHERE lead_id = $1;`, leadID)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("lead not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
