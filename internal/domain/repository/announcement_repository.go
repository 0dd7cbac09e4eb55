package repository

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// AnnouncementRepository lectura de comunicados (entidad global).
type AnnouncementRepository interface {
	// List devuelve todos los comunicados; la visibilidad por principal la decide access.CanViewAnnouncement.
	List(ctx context.Context) ([]*entity.Announcement, error)
}
