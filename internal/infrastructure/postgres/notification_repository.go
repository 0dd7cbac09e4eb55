package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository (usable con pool o tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste la notificación.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, title, message, type, scope, company_id, branch_id, created_by,
			reference_model, reference_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.Title, n.Message, n.Type, n.Scope, n.CompanyID, n.BranchID, n.CreatedBy,
		nullable(n.ReferenceModel), nullable(n.ReferenceID), n.IsActive, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// List devuelve las notificaciones activas visibles, más recientes primero.
// Las de alcance "all" no tienen empresa y las ve cualquier principal.
func (r *NotificationRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.Notification, error) {
	where, args, pos, err := scopedWhere(entity.EntityNotification, q, nil)
	if err != nil {
		return nil, err
	}
	page, args := paginate(q, args, pos)
	query := `
		SELECT n.id, n.title, n.message, n.type, n.scope, n.company_id, n.branch_id, n.created_by,
			COALESCE(n.reference_model, ''), COALESCE(n.reference_id, ''), n.is_active, n.created_at
		FROM notifications n` + where + ` AND n.is_active ORDER BY n.created_at DESC` + page
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(
			&n.ID, &n.Title, &n.Message, &n.Type, &n.Scope, &n.CompanyID, &n.BranchID, &n.CreatedBy,
			&n.ReferenceModel, &n.ReferenceID, &n.IsActive, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
