package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo implementación de MaintenanceRepository (usable con pool o tx).
type MaintenanceRepo struct {
	q Querier
}

// NewMaintenanceRepository construye el adaptador.
func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

const maintenanceSelect = `
	SELECT id, title, description, platform, status, planned_start_time, planned_end_time,
		actual_start_time, actual_end_time, show_message, block_access, access_level,
		allowed_companies, created_by, created_at, updated_at
	FROM maintenance_modes`

// GetByID obtiene una ventana por ID.
func (r *MaintenanceRepo) GetByID(ctx context.Context, id string) (*entity.MaintenanceMode, error) {
	m, err := scanMaintenance(r.q.QueryRow(ctx, maintenanceSelect+` WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance: %w", err)
	}
	return m, nil
}

// ListInProgress devuelve las ventanas en curso; la compuerta decide cuál está activa.
func (r *MaintenanceRepo) ListInProgress(ctx context.Context) ([]*entity.MaintenanceMode, error) {
	rows, err := r.q.Query(ctx, maintenanceSelect+` WHERE status = $1 ORDER BY actual_start_time DESC, id`, entity.MaintenanceInProgress)
	if err != nil {
		return nil, fmt.Errorf("list maintenance in progress: %w", err)
	}
	return collectMaintenance(rows)
}

// List devuelve las ventanas por inicio planificado descendente.
func (r *MaintenanceRepo) List(ctx context.Context, limit, offset int) ([]*entity.MaintenanceMode, error) {
	rows, err := r.q.Query(ctx, maintenanceSelect+` ORDER BY planned_start_time DESC, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list maintenance: %w", err)
	}
	return collectMaintenance(rows)
}

// Update persiste las transiciones de estado.
func (r *MaintenanceRepo) Update(ctx context.Context, m *entity.MaintenanceMode) error {
	query := `
		UPDATE maintenance_modes SET status = $2, actual_start_time = $3, actual_end_time = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, m.ID, m.Status, m.ActualStartTime, m.ActualEndTime, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update maintenance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update maintenance: %w", domain.ErrNotFound)
	}
	return nil
}

func collectMaintenance(rows pgx.Rows) ([]*entity.MaintenanceMode, error) {
	defer rows.Close()
	var list []*entity.MaintenanceMode
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMaintenance(row pgx.Row) (*entity.MaintenanceMode, error) {
	var (
		m     entity.MaintenanceMode
		level string
	)
	err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.Platform, &m.Status, &m.PlannedStartTime, &m.PlannedEndTime,
		&m.ActualStartTime, &m.ActualEndTime, &m.ShowMessage, &m.BlockAccess, &level,
		&m.AllowedCompanies, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.AccessLevel = entity.AccessLevel(level)
	return &m, nil
}
