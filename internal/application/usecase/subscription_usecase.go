package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/jhoicas/Saas-api/internal/application/audit"
	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/access"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
	"github.com/jhoicas/Saas-api/pkg/clock"
)

// SubscriptionUseCase consulta, cancelación y extensión de suscripciones.
type SubscriptionUseCase struct {
	subscriptions repository.SubscriptionRepository
	invoices      repository.InvoiceRepository
	access        *AccessService
	audit         *audit.Recorder
	clock         clock.Clock
}

// NewSubscriptionUseCase construye el caso de uso.
func NewSubscriptionUseCase(
	subscriptions repository.SubscriptionRepository,
	invoices repository.InvoiceRepository,
	accessSvc *AccessService,
	recorder *audit.Recorder,
	clk clock.Clock,
) *SubscriptionUseCase {
	return &SubscriptionUseCase{subscriptions: subscriptions, invoices: invoices, access: accessSvc, audit: recorder, clock: clk}
}

// List lista las suscripciones visibles; companyID opcional.
func (uc *SubscriptionUseCase) List(ctx context.Context, p *entity.Principal, companyID string, page dto.PageRequest) (*dto.SubscriptionListResponse, error) {
	q := uc.access.ListQuery(p, entity.EntitySubscription, page)
	q.CompanyID = companyID
	list, err := uc.subscriptions.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.SubscriptionListResponse{
		Items: lo.Map(list, func(s *entity.Subscription, _ int) dto.SubscriptionResponse { return dto.SubscriptionFromEntity(s) }),
		Page:  pageOf(q),
	}, nil
}

// Get obtiene una suscripción por ID.
func (uc *SubscriptionUseCase) Get(ctx context.Context, p *entity.Principal, id string) (*dto.SubscriptionResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntitySubscription, id, access.OpRead); err != nil {
		return nil, err
	}
	sub, err := uc.subscriptions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.SubscriptionFromEntity(sub)
	return &out, nil
}

// Cancel cancela la suscripción y avisa a la empresa. Cancelar dos veces es domain.ErrConflict.
func (uc *SubscriptionUseCase) Cancel(ctx context.Context, p *entity.Principal, id string, meta audit.Meta) (*dto.SubscriptionResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntitySubscription, id, access.OpUpdate); err != nil {
		return nil, err
	}
	var out dto.SubscriptionResponse
	err := uc.audit.RunAudited(ctx, func(repos repository.TxRepos) (*audit.Entry, error) {
		sub, err := mustSubscription(ctx, repos.Subscriptions, id)
		if err != nil {
			return nil, err
		}
		if sub.Status == entity.SubscriptionCanceled {
			return nil, domain.ErrConflict
		}
		now := uc.clock.Now()
		sub.Status = entity.SubscriptionCanceled
		sub.CanceledAt = &now
		sub.UpdatedAt = now
		if err := repos.Subscriptions.Update(ctx, sub); err != nil {
			return nil, err
		}

		companyID := sub.CompanyID
		note := &entity.Notification{
			ID:             uuid.New().String(),
			Title:          "Cancelación de suscripción",
			Message:        "La suscripción de la empresa fue cancelada.",
			Type:           entity.NotificationWarning,
			Scope:          entity.NotificationScopeCompany,
			CompanyID:      &companyID,
			ReferenceModel: "Subscription",
			ReferenceID:    sub.ID,
			IsActive:       true,
			CreatedAt:      now,
		}
		if uid := p.UserID(); uid != "" {
			note.CreatedBy = &uid
		}
		if err := repos.Notifications.Create(ctx, note); err != nil {
			return nil, err
		}
		out = dto.SubscriptionFromEntity(sub)
		return subscriptionEntry(p, sub, map[string]any{"status": sub.Status, "canceled_at": now}, meta), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Extend suma 30 días por mes a la fecha de fin. Solo superusuarios y staff.
func (uc *SubscriptionUseCase) Extend(ctx context.Context, p *entity.Principal, id string, in dto.ExtendSubscriptionRequest, meta audit.Meta) (*dto.SubscriptionResponse, error) {
	if !p.IsPrivileged() {
		return nil, domain.ErrForbidden
	}
	if in.Months < 1 {
		return nil, fmt.Errorf("%w: months debe ser al menos 1", domain.ErrInvalidInput)
	}
	if err := uc.access.Authorize(ctx, p, entity.EntitySubscription, id, access.OpUpdate); err != nil {
		return nil, err
	}
	var out dto.SubscriptionResponse
	err := uc.audit.RunAudited(ctx, func(repos repository.TxRepos) (*audit.Entry, error) {
		sub, err := mustSubscription(ctx, repos.Subscriptions, id)
		if err != nil {
			return nil, err
		}
		sub.EndDate = sub.EndDate.AddDate(0, 0, 30*in.Months)
		sub.UpdatedAt = uc.clock.Now()
		if err := repos.Subscriptions.Update(ctx, sub); err != nil {
			return nil, err
		}
		out = dto.SubscriptionFromEntity(sub)
		return subscriptionEntry(p, sub, map[string]any{"months": in.Months, "end_date": sub.EndDate}, meta), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvoices lista las facturas visibles.
func (uc *SubscriptionUseCase) ListInvoices(ctx context.Context, p *entity.Principal, page dto.PageRequest) (*dto.InvoiceListResponse, error) {
	q := uc.access.ListQuery(p, entity.EntityInvoice, page)
	list, err := uc.invoices.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceListResponse{
		Items: lo.Map(list, func(i *entity.Invoice, _ int) dto.InvoiceResponse { return dto.InvoiceFromEntity(i) }),
		Page:  pageOf(q),
	}, nil
}

// GetInvoice obtiene una factura por ID.
func (uc *SubscriptionUseCase) GetInvoice(ctx context.Context, p *entity.Principal, id string) (*dto.InvoiceResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntityInvoice, id, access.OpRead); err != nil {
		return nil, err
	}
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.InvoiceFromEntity(inv)
	return &out, nil
}

func mustSubscription(ctx context.Context, repo repository.SubscriptionRepository, id string) (*entity.Subscription, error) {
	sub, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	return sub, nil
}

func subscriptionEntry(p *entity.Principal, s *entity.Subscription, payload any, meta audit.Meta) *audit.Entry {
	return &audit.Entry{
		Principal: p,
		Action:    entity.AuditUpdate,
		Target:    audit.Target{Type: entity.EntitySubscription, ID: s.ID, Repr: s.Status, CompanyID: s.CompanyID},
		Payload:   payload,
		Meta:      meta,
	}
}
