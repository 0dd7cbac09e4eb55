package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo append-only sobre audit_logs.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador. Dentro de una mutación se pasa la tx.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

const auditLogSelect = `
	SELECT a.id, a.user_id, a.company_id, a.action, a.entity_type, a.object_id, a.object_repr,
		a.changes, COALESCE(a.ip_address, ''), a.user_agent, a.created_at
	FROM audit_logs a`

// Insert agrega un registro.
func (r *AuditLogRepo) Insert(ctx context.Context, e *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, user_id, company_id, action, entity_type, object_id, object_repr,
			changes, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.UserID, e.CompanyID, e.Action, string(e.EntityType), e.ObjectID, e.ObjectRepr,
		string(e.Changes), nullable(e.IPAddress), e.UserAgent, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *AuditLogRepo) GetByID(ctx context.Context, id string) (*entity.AuditLog, error) {
	e, err := scanAuditLog(r.q.QueryRow(ctx, auditLogSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get audit log: %w", err)
	}
	return e, nil
}

// List devuelve los registros visibles, más recientes primero.
func (r *AuditLogRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.AuditLog, error) {
	where, args, pos, err := scopedWhere(entity.EntityAuditLog, q, nil)
	if err != nil {
		return nil, err
	}
	page, args := paginate(q, args, pos)
	rows, err := r.q.Query(ctx, auditLogSelect+where+` ORDER BY a.created_at DESC, a.id`+page, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditLog
	for rows.Next() {
		e, err := scanAuditLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanAuditLog(row pgx.Row) (*entity.AuditLog, error) {
	var (
		e          entity.AuditLog
		entityType string
		changes    string
	)
	err := row.Scan(
		&e.ID, &e.UserID, &e.CompanyID, &e.Action, &entityType, &e.ObjectID, &e.ObjectRepr,
		&changes, &e.IPAddress, &e.UserAgent, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.EntityType = entity.EntityType(entityType)
	e.Changes = []byte(changes)
	return &e, nil
}
