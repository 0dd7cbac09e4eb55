package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

var (
	_ repository.PlanRepository         = (*PlanRepo)(nil)
	_ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)
)

// PlanRepo lectura de planes.
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador.
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

const planSelect = `
	SELECT id, name, slug, price, currency, max_users, max_storage, features,
		is_trial, is_active, created_at, updated_at
	FROM plans`

// GetByID obtiene un plan por ID.
func (r *PlanRepo) GetByID(ctx context.Context, id string) (*entity.Plan, error) {
	p, err := scanPlan(r.q.QueryRow(ctx, planSelect+` WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

// GetTrialPlan devuelve el plan de prueba activo más antiguo.
func (r *PlanRepo) GetTrialPlan(ctx context.Context) (*entity.Plan, error) {
	p, err := scanPlan(r.q.QueryRow(ctx, planSelect+` WHERE is_trial AND is_active ORDER BY created_at LIMIT 1`))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trial plan: %w", err)
	}
	return p, nil
}

func scanPlan(row pgx.Row) (*entity.Plan, error) {
	var p entity.Plan
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Price, &p.Currency, &p.MaxUsers, &p.MaxStorage, &p.Features,
		&p.IsTrial, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SubscriptionRepo implementación de SubscriptionRepository (usable con pool o tx).
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

const subscriptionSelect = `
	SELECT s.id, s.company_id, s.plan_id, s.status, s.start_date, s.end_date, s.is_trial,
		s.trial_ends, s.canceled_at, s.is_active, s.created_at, s.updated_at
	FROM subscriptions s`

// Create persiste la suscripción.
func (r *SubscriptionRepo) Create(ctx context.Context, s *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, company_id, plan_id, status, start_date, end_date, is_trial,
			trial_ends, canceled_at, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CompanyID, s.PlanID, s.Status, s.StartDate, s.EndDate, s.IsTrial,
		s.TrialEnds, s.CanceledAt, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

// GetByID obtiene una suscripción por ID.
func (r *SubscriptionRepo) GetByID(ctx context.Context, id string) (*entity.Subscription, error) {
	s, err := scanSubscription(r.q.QueryRow(ctx, subscriptionSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return s, nil
}

// ListByCompany devuelve todas las suscripciones de la empresa, más recientes primero.
func (r *SubscriptionRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Subscription, error) {
	rows, err := r.q.Query(ctx, subscriptionSelect+` WHERE s.company_id = $1 ORDER BY s.start_date DESC, s.id`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions by company: %w", err)
	}
	return collectSubscriptions(rows)
}

// Update actualiza estado y vigencia.
func (r *SubscriptionRepo) Update(ctx context.Context, s *entity.Subscription) error {
	query := `
		UPDATE subscriptions SET status = $2, end_date = $3, canceled_at = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, s.ID, s.Status, s.EndDate, s.CanceledAt, s.IsActive, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update subscription: %w", domain.ErrNotFound)
	}
	return nil
}

// List devuelve las suscripciones visibles para el alcance.
func (r *SubscriptionRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.Subscription, error) {
	where, args, pos, err := scopedWhere(entity.EntitySubscription, q, nil)
	if err != nil {
		return nil, err
	}
	page, args := paginate(q, args, pos)
	rows, err := r.q.Query(ctx, subscriptionSelect+where+` ORDER BY s.start_date DESC, s.id`+page, args...)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return collectSubscriptions(rows)
}

func collectSubscriptions(rows pgx.Rows) ([]*entity.Subscription, error) {
	defer rows.Close()
	var list []*entity.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSubscription(row pgx.Row) (*entity.Subscription, error) {
	var s entity.Subscription
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.PlanID, &s.Status, &s.StartDate, &s.EndDate, &s.IsTrial,
		&s.TrialEnds, &s.CanceledAt, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
