package repository

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// MaintenanceRepository define el puerto de persistencia para MaintenanceMode.
type MaintenanceRepository interface {
	GetByID(ctx context.Context, id string) (*entity.MaintenanceMode, error)
	// ListInProgress devuelve los candidatos a ventana activa (status in_progress).
	ListInProgress(ctx context.Context) ([]*entity.MaintenanceMode, error)
	List(ctx context.Context, limit, offset int) ([]*entity.MaintenanceMode, error)
	Update(ctx context.Context, m *entity.MaintenanceMode) error
}
