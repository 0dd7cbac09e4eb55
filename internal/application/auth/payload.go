package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

func (uc *AuthUseCase) buildUser(ctx context.Context, p *entity.Principal, sub *entity.Subscription, now time.Time) (dto.LoginUser, error) {
	u := p.User
	out := dto.LoginUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Personal: dto.UserPersonal{
			FirstName:  u.FirstName,
			LastName:   u.LastName,
			FullName:   u.FullName(),
			DateJoined: u.DateJoined,
			LastLogin:  u.LastLogin,
		},
		Permissions: dto.UserPermissions{
			IsActive:    u.IsActive,
			IsStaff:     u.IsStaff,
			IsSuperuser: u.IsSuperuser,
		},
	}
	aff := p.Affiliation
	if aff == nil {
		return out, nil
	}

	out.Employee = employeeSummary(aff.Employee, now)
	branch := dto.BranchFromEntity(aff.Branch)
	out.Branch = &branch

	company := &dto.LoginCompany{CompanyResponse: dto.CompanyFromEntity(aff.Company)}
	if sub != nil {
		s, err := uc.subscriptionSummary(ctx, sub, now)
		if err != nil {
			return dto.LoginUser{}, err
		}
		company.Subscription = s
	}
	branding, err := uc.branding.GetByCompanyID(ctx, aff.Company.ID)
	if err != nil {
		return dto.LoginUser{}, fmt.Errorf("buscar marca: %w", err)
	}
	if branding != nil {
		company.Branding = &dto.BrandingResponse{
			PrimaryColor:   branding.PrimaryColor,
			SecondaryColor: branding.SecondaryColor,
			LogoURL:        branding.LogoURL,
			FaviconURL:     branding.FaviconURL,
		}
	}
	out.Company = company
	return out, nil
}

func employeeSummary(e *entity.Employee, now time.Time) *dto.LoginEmployee {
	return &dto.LoginEmployee{
		ID:             e.ID,
		Role:           dto.RoleCodeDisplay(e.Role),
		IdentityNumber: e.MaskedIdentity(),
		Personal: dto.EmployeePersonal{
			BirthDate: e.BirthDate,
			Gender:    e.Gender,
			Phone:     e.Phone,
		},
		Employment: dto.EmployeeEmployment{
			HireDate:        e.HireDate,
			TerminationDate: e.TerminationDate,
			IsActive:        e.IsActive,
			Tenure:          dto.TenureDays(e.HireDate, now),
		},
		Address: e.Address,
	}
}

func (uc *AuthUseCase) subscriptionSummary(ctx context.Context, s *entity.Subscription, now time.Time) (*dto.LoginSubscription, error) {
	plan := s.Plan
	if plan == nil {
		var err error
		if plan, err = uc.plans.GetByID(ctx, s.PlanID); err != nil {
			return nil, fmt.Errorf("buscar plan: %w", err)
		}
	}
	out := &dto.LoginSubscription{
		ID:     s.ID,
		Status: dto.SubscriptionStatusDisplay(s.Status),
		Dates: dto.SubscriptionDates{
			Start:     s.StartDate,
			End:       s.EndDate,
			TrialEnds: s.TrialEnds,
		},
		IsTrial:       s.IsTrial,
		RemainingDays: remainingDays(s.EndDate, now),
	}
	if plan != nil {
		out.Plan = dto.PlanFromEntity(plan)
	}
	return out, nil
}

// remainingDays días de calendario entre hoy y end.
func remainingDays(end, now time.Time) int {
	y1, m1, d1 := end.UTC().Date()
	y2, m2, d2 := now.UTC().Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}
