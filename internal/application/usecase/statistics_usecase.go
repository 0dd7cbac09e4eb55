package usecase

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/domain/access"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
	"github.com/jhoicas/Saas-api/pkg/clock"
)

// StatisticsUseCase resumen por empresa.
type StatisticsUseCase struct {
	stats         repository.StatisticsRepository
	subscriptions repository.SubscriptionRepository
	plans         repository.PlanRepository
	access        *AccessService
	clock         clock.Clock
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(
	stats repository.StatisticsRepository,
	subscriptions repository.SubscriptionRepository,
	plans repository.PlanRepository,
	accessSvc *AccessService,
	clk clock.Clock,
) *StatisticsUseCase {
	return &StatisticsUseCase{stats: stats, subscriptions: subscriptions, plans: plans, access: accessSvc, clock: clk}
}

// Company devuelve el resumen de la empresa; lo ve quien puede leer la empresa.
func (uc *StatisticsUseCase) Company(ctx context.Context, p *entity.Principal, companyID string) (*dto.CompanyStatisticsResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntityCompany, companyID, access.OpRead); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	st, err := uc.stats.CompanyStatistics(ctx, companyID, now)
	if err != nil {
		return nil, err
	}
	subs, err := uc.subscriptions.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := &dto.CompanyStatisticsResponse{
		General: dto.GeneralStatistics{
			TotalBranches:   st.TotalBranches,
			TotalEmployees:  st.TotalEmployees,
			ActiveEmployees: st.ActiveEmployees,
		},
		Subscription: dto.SubscriptionStatistics{
			UsageStats: dto.UsageStats{StorageUsed: st.StorageUsed, APICallsToday: st.APICallsToday},
		},
		Financial: dto.FinancialStatistics{
			TotalInvoices:   st.TotalInvoices,
			PendingInvoices: st.PendingInvoices,
		},
	}

	sub := access.CurrentSubscription(subs, now)
	if sub == nil {
		return out, nil
	}
	out.Subscription.RemainingDays = sub.RemainingDays(now)
	plan := sub.Plan
	if plan == nil {
		if plan, err = uc.plans.GetByID(ctx, sub.PlanID); err != nil {
			return nil, err
		}
	}
	if plan != nil {
		pr := dto.PlanFromEntity(plan)
		out.Subscription.CurrentPlan = &pr
	}
	return out, nil
}
