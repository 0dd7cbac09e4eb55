package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

var _ repository.AnnouncementRepository = (*AnnouncementRepo)(nil)

// AnnouncementRepo implementación de AnnouncementRepository.
type AnnouncementRepo struct {
	q Querier
}

// NewAnnouncementRepository construye el adaptador.
func NewAnnouncementRepository(q Querier) *AnnouncementRepo {
	return &AnnouncementRepo{q: q}
}

// List devuelve los comunicados por fecha de publicación descendente y, a igualdad, por prioridad.
func (r *AnnouncementRepo) List(ctx context.Context) ([]*entity.Announcement, error) {
	query := `
		SELECT an.id, an.title, an.content, an.priority, an.target_role, an.target_companies,
			an.publish_date, an.end_date, an.created_by, an.is_active, an.created_at
		FROM announcements an
		ORDER BY an.publish_date DESC,
			CASE an.priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END,
			an.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Announcement
	for rows.Next() {
		var a entity.Announcement
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Content, &a.Priority, &a.TargetRole, &a.TargetCompanies,
			&a.PublishDate, &a.EndDate, &a.CreatedBy, &a.IsActive, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
