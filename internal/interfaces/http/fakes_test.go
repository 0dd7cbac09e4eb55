package http_test

import (
	"context"
	"time"

	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

// principals resuelve usuarios desde un mapa.
type principals map[string]*entity.Principal

func (p principals) Resolve(_ context.Context, userID string) (*entity.Principal, error) {
	if pr, ok := p[userID]; ok {
		return pr, nil
	}
	return nil, domain.ErrUnauthorized
}

type maintenanceRepo struct {
	windows []*entity.MaintenanceMode
}

func (r *maintenanceRepo) GetByID(context.Context, string) (*entity.MaintenanceMode, error) { return nil, nil }
func (r *maintenanceRepo) ListInProgress(context.Context) ([]*entity.MaintenanceMode, error) {
	return r.windows, nil
}
func (r *maintenanceRepo) List(context.Context, int, int) ([]*entity.MaintenanceMode, error) {
	return r.windows, nil
}
func (r *maintenanceRepo) Update(context.Context, *entity.MaintenanceMode) error { return nil }

type subscriptionRepo struct {
	byCompany map[string][]*entity.Subscription
}

func (r *subscriptionRepo) Create(context.Context, *entity.Subscription) error { return nil }
func (r *subscriptionRepo) GetByID(context.Context, string) (*entity.Subscription, error) {
	return nil, nil
}
func (r *subscriptionRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Subscription, error) {
	return r.byCompany[companyID], nil
}
func (r *subscriptionRepo) Update(context.Context, *entity.Subscription) error { return nil }
func (r *subscriptionRepo) List(context.Context, repository.ListQuery) ([]*entity.Subscription, error) {
	return nil, nil
}

type announcementRepo struct {
	items []*entity.Announcement
}

func (r *announcementRepo) List(context.Context) ([]*entity.Announcement, error) { return r.items, nil }

func activeWindow(now time.Time, level entity.AccessLevel) *entity.MaintenanceMode {
	start := now.Add(-time.Hour)
	return &entity.MaintenanceMode{
		ID:              "m1",
		Title:           "Migración de base de datos",
		Description:     "Actualización del motor",
		Status:          entity.MaintenanceInProgress,
		PlannedEndTime:  now.Add(2 * time.Hour).Truncate(time.Second),
		ActualStartTime: &start,
		BlockAccess:     true,
		AccessLevel:     level,
	}
}
