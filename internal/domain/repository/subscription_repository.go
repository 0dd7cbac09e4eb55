package repository

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// PlanRepository lectura de planes (entidad global).
type PlanRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Plan, error)
	// GetTrialPlan devuelve el plan de prueba activo o (nil, nil).
	GetTrialPlan(ctx context.Context) (*entity.Plan, error)
}

// SubscriptionRepository define el puerto de persistencia para Subscription.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	GetByID(ctx context.Context, id string) (*entity.Subscription, error)
	// ListByCompany devuelve todas las suscripciones de la empresa; la compuerta elige la vigente.
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Subscription, error)
	Update(ctx context.Context, sub *entity.Subscription) error
	List(ctx context.Context, q ListQuery) ([]*entity.Subscription, error)
}
