package usecase

import (
	"context"

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

// BranchUseCase casos de uso de sucursales.
type BranchUseCase struct {
	branches repository.BranchRepository
	access   *AccessService
	audit    *audit.Recorder
	clock    clock.Clock
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(branches repository.BranchRepository, accessSvc *AccessService, recorder *audit.Recorder, clk clock.Clock) *BranchUseCase {
	return &BranchUseCase{branches: branches, access: accessSvc, audit: recorder, clock: clk}
}

// List lista las sucursales visibles; companyID opcional restringe a una empresa.
func (uc *BranchUseCase) List(ctx context.Context, p *entity.Principal, companyID string, page dto.PageRequest) (*dto.BranchListResponse, error) {
	q := uc.access.ListQuery(p, entity.EntityBranch, page)
	q.CompanyID = companyID
	list, err := uc.branches.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.BranchListResponse{
		Items: lo.Map(list, func(b *entity.Branch, _ int) dto.BranchResponse { return dto.BranchFromEntity(b) }),
		Page:  pageOf(q),
	}, nil
}

// Get obtiene una sucursal por ID.
func (uc *BranchUseCase) Get(ctx context.Context, p *entity.Principal, id string) (*dto.BranchResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntityBranch, id, access.OpRead); err != nil {
		return nil, err
	}
	branch, err := uc.branches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.BranchFromEntity(branch)
	return &out, nil
}

// Create crea una sucursal secundaria. El slug es único dentro de la empresa.
func (uc *BranchUseCase) Create(ctx context.Context, p *entity.Principal, in dto.CreateBranchRequest, meta audit.Meta) (*dto.BranchResponse, error) {
	if err := uc.access.AuthorizeCreate(ctx, p, entity.EntityBranch, entity.EntityCompany, in.CompanyID); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	var out dto.BranchResponse
	err := uc.audit.RunAudited(ctx, func(repos repository.TxRepos) (*audit.Entry, error) {
		branchSlug, err := slug.Unique(slugOr(in.Name, "sucursal"), func(s string) (bool, error) {
			return repos.Branches.SlugExists(ctx, in.CompanyID, s)
		})
		if err != nil {
			return nil, err
		}
		branch := &entity.Branch{
			ID:        uuid.New().String(),
			CompanyID: in.CompanyID,
			Name:      in.Name,
			Slug:      branchSlug,
			Phone:     in.Phone,
			Email:     in.Email,
			Address:   in.Address,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repos.Branches.Create(ctx, branch); err != nil {
			return nil, err
		}
		out = dto.BranchFromEntity(branch)
		return branchEntry(p, entity.AuditCreate, branch, in, meta), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifica los campos informados de la sucursal.
func (uc *BranchUseCase) Update(ctx context.Context, p *entity.Principal, id string, in dto.UpdateBranchRequest, meta audit.Meta) (*dto.BranchResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntityBranch, id, access.OpUpdate); err != nil {
		return nil, err
	}
	var out dto.BranchResponse
	err := uc.audit.RunAudited(ctx, func(repos repository.TxRepos) (*audit.Entry, error) {
		branch, err := mustBranch(ctx, repos.Branches, id)
		if err != nil {
			return nil, err
		}
		setIf(&branch.Name, in.Name)
		setIf(&branch.Phone, in.Phone)
		setIf(&branch.Email, in.Email)
		setIf(&branch.Address, in.Address)
		setIf(&branch.IsActive, in.IsActive)
		branch.UpdatedAt = uc.clock.Now()
		if err := repos.Branches.Update(ctx, branch); err != nil {
			return nil, err
		}
		out = dto.BranchFromEntity(branch)
		return branchEntry(p, entity.AuditUpdate, branch, in, meta), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina una sucursal junto con sus empleados (cascada); la entrada de auditoría
// lista los empleados eliminados. La sucursal principal no se elimina (domain.ErrConflict).
func (uc *BranchUseCase) Delete(ctx context.Context, p *entity.Principal, id string, meta audit.Meta) error {
	if err := uc.access.Authorize(ctx, p, entity.EntityBranch, id, access.OpDelete); err != nil {
		return err
	}
	return uc.audit.RunAudited(ctx, func(repos repository.TxRepos) (*audit.Entry, error) {
		branch, err := mustBranch(ctx, repos.Branches, id)
		if err != nil {
			return nil, err
		}
		if branch.IsMainBranch {
			return nil, domain.ErrConflict
		}
		employees, err := repos.Employees.ListByBranch(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := repos.Branches.Delete(ctx, id); err != nil {
			return nil, err
		}
		payload := dto.DeletedBranchAudit{
			Branch:           dto.BranchFromEntity(branch),
			RemovedEmployees: lo.Map(employees, func(e *entity.Employee, _ int) string { return e.ID }),
		}
		return branchEntry(p, entity.AuditDelete, branch, payload, meta), nil
	})
}

func mustBranch(ctx context.Context, repo repository.BranchRepository, id string) (*entity.Branch, error) {
	branch, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return branch, nil
}

func branchEntry(p *entity.Principal, action string, b *entity.Branch, payload any, meta audit.Meta) *audit.Entry {
	return &audit.Entry{
		Principal: p,
		Action:    action,
		Target:    audit.Target{Type: entity.EntityBranch, ID: b.ID, Repr: b.Name, CompanyID: b.CompanyID},
		Payload:   payload,
		Meta:      meta,
	}
}
