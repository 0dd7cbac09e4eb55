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
	"github.com/jhoicas/Saas-api/pkg/slug"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	companies repository.CompanyRepository
	plans     repository.PlanRepository
	auditLogs repository.AuditLogRepository
	access    *AccessService
	audit     *audit.Recorder
	clock     clock.Clock
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	plans repository.PlanRepository,
	auditLogs repository.AuditLogRepository,
	accessSvc *AccessService,
	recorder *audit.Recorder,
	clk clock.Clock,
) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, plans: plans, auditLogs: auditLogs, access: accessSvc, audit: recorder, clock: clk}
}

// List lista las empresas visibles para el principal.
func (uc *CompanyUseCase) List(ctx context.Context, p *entity.Principal, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	q := uc.access.ListQuery(p, entity.EntityCompany, page)
	list, err := uc.companies.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyListResponse{
		Items: lo.Map(list, func(c *entity.Company, _ int) dto.CompanyResponse { return dto.CompanyFromEntity(c) }),
		Page:  pageOf(q),
	}, nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, p *entity.Principal, id string) (*dto.CompanyResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntityCompany, id, access.OpRead); err != nil {
		return nil, err
	}
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.CompanyFromEntity(company)
	return &out, nil
}

// CreateCompanyWithMainBranch crea la empresa, su sucursal principal y una suscripción de prueba
// con el plan de prueba activo, todo en una transacción auditada. Devuelve domain.ErrTrialPlanMissing
// si no hay plan de prueba.
func (uc *CompanyUseCase) CreateCompanyWithMainBranch(ctx context.Context, p *entity.Principal, in dto.CreateCompanyRequest, meta audit.Meta) (*dto.CompanyCreatedResponse, error) {
	if err := uc.access.AuthorizeCreate(ctx, p, entity.EntityCompany, "", ""); err != nil {
		return nil, err
	}
	plan, err := uc.plans.GetTrialPlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("buscar plan de prueba: %w", err)
	}
	if plan == nil {
		return nil, domain.ErrTrialPlanMissing
	}

	now := uc.clock.Now()
	var out *dto.CompanyCreatedResponse
	err = uc.audit.RunAudited(ctx, func(repos repository.TxRepos) (*audit.Entry, error) {
		companySlug, err := slug.Unique(slugOr(in.Name, "empresa"), func(s string) (bool, error) {
			return repos.Companies.SlugExists(ctx, s)
		})
		if err != nil {
			return nil, err
		}
		company := &entity.Company{
			ID:          uuid.New().String(),
			Name:        in.Name,
			Slug:        companySlug,
			CompanyType: in.CompanyType,
			TaxNumber:   in.TaxNumber,
			TaxOffice:   in.TaxOffice,
			Phone:       in.Phone,
			Email:       in.Email,
			Address:     in.Address,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repos.Companies.Create(ctx, company); err != nil {
			return nil, err
		}

		branch := &entity.Branch{
			ID:           uuid.New().String(),
			CompanyID:    company.ID,
			Name:         entity.MainBranchName,
			Slug:         slug.Make(company.Name + " " + entity.MainBranchName),
			Phone:        company.Phone,
			Email:        company.Email,
			Address:      company.Address,
			IsMainBranch: true,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repos.Branches.Create(ctx, branch); err != nil {
			return nil, err
		}

		trialEnds := now.AddDate(0, 0, entity.TrialDays)
		sub := &entity.Subscription{
			ID:        uuid.New().String(),
			CompanyID: company.ID,
			PlanID:    plan.ID,
			Status:    entity.SubscriptionActive,
			StartDate: now,
			EndDate:   trialEnds,
			IsTrial:   true,
			TrialEnds: &trialEnds,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
			Plan:      plan,
		}
		if err := repos.Subscriptions.Create(ctx, sub); err != nil {
			return nil, err
		}

		for _, e := range []audit.Entry{
			{Principal: p, Action: entity.AuditCreate, Target: audit.Target{Type: entity.EntityBranch, ID: branch.ID, Repr: branch.Name, CompanyID: company.ID}, Payload: dto.BranchFromEntity(branch), Meta: meta},
			{Principal: p, Action: entity.AuditCreate, Target: audit.Target{Type: entity.EntitySubscription, ID: sub.ID, Repr: plan.Name, CompanyID: company.ID}, Payload: dto.SubscriptionFromEntity(sub), Meta: meta},
		} {
			if err := uc.audit.Record(ctx, repos.AuditLogs, e); err != nil {
				return nil, err
			}
		}

		out = &dto.CompanyCreatedResponse{
			CompanyResponse: dto.CompanyFromEntity(company),
			MainBranch:      dto.BranchFromEntity(branch),
			Subscription:    dto.SubscriptionFromEntity(sub),
		}
		return &audit.Entry{
			Principal: p,
			Action:    entity.AuditCreate,
			Target:    audit.Target{Type: entity.EntityCompany, ID: company.ID, Repr: company.Name, CompanyID: company.ID},
			Payload:   in,
			Meta:      meta,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update modifica los campos informados de la empresa.
func (uc *CompanyUseCase) Update(ctx context.Context, p *entity.Principal, id string, in dto.UpdateCompanyRequest, meta audit.Meta) (*dto.CompanyResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntityCompany, id, access.OpUpdate); err != nil {
		return nil, err
	}
	var out dto.CompanyResponse
	err := uc.audit.RunAudited(ctx, func(repos repository.TxRepos) (*audit.Entry, error) {
		company, err := repos.Companies.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound
		}
		setIf(&company.Name, in.Name)
		setIf(&company.TaxOffice, in.TaxOffice)
		setIf(&company.Phone, in.Phone)
		setIf(&company.Email, in.Email)
		setIf(&company.Address, in.Address)
		setIf(&company.IsActive, in.IsActive)
		company.UpdatedAt = uc.clock.Now()
		if err := repos.Companies.Update(ctx, company); err != nil {
			return nil, err
		}
		out = dto.CompanyFromEntity(company)
		return &audit.Entry{
			Principal: p,
			Action:    entity.AuditUpdate,
			Target:    audit.Target{Type: entity.EntityCompany, ID: company.ID, Repr: company.Name, CompanyID: company.ID},
			Payload:   in,
			Meta:      meta,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAuditLogs lista la auditoría de una empresa, dentro del alcance del principal.
func (uc *CompanyUseCase) ListAuditLogs(ctx context.Context, p *entity.Principal, companyID string, page dto.PageRequest) (*dto.AuditLogListResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntityCompany, companyID, access.OpRead); err != nil {
		return nil, err
	}
	q := uc.access.ListQuery(p, entity.EntityAuditLog, page)
	q.CompanyID = companyID
	list, err := uc.auditLogs.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.AuditLogListResponse{
		Items: lo.Map(list, func(a *entity.AuditLog, _ int) dto.AuditLogResponse { return dto.AuditLogFromEntity(a) }),
		Page:  pageOf(q),
	}, nil
}

// setIf asigna *v en dst si v no es nil.
func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// slugOr slug de s, o fallback si s no deja caracteres utilizables.
func slugOr(s, fallback string) string {
	if out := slug.Make(s); out != "" {
		return out
	}
	return fallback
}
