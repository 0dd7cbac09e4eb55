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

// EmployeeUseCase casos de uso de empleados. El listado respeta el alcance por rol:
// company_admin ve la empresa, branch_admin su sucursal y employee solo su registro.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	users     repository.UserRepository
	branches  repository.BranchRepository
	access    *AccessService
	audit     *audit.Recorder
	clock     clock.Clock
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(
	employees repository.EmployeeRepository,
	users repository.UserRepository,
	branches repository.BranchRepository,
	accessSvc *AccessService,
	recorder *audit.Recorder,
	clk clock.Clock,
) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, users: users, branches: branches, access: accessSvc, audit: recorder, clock: clk}
}

// List lista los empleados visibles para el principal.
func (uc *EmployeeUseCase) List(ctx context.Context, p *entity.Principal, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	q := uc.access.ListQuery(p, entity.EntityEmployee, page)
	list, err := uc.employees.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeeListResponse{
		Items: lo.Map(list, func(e *entity.Employee, _ int) dto.EmployeeResponse { return dto.EmployeeFromEntity(e) }),
		Page:  pageOf(q),
	}, nil
}

// Get obtiene un empleado por ID.
func (uc *EmployeeUseCase) Get(ctx context.Context, p *entity.Principal, id string) (*dto.EmployeeResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntityEmployee, id, access.OpRead); err != nil {
		return nil, err
	}
	emp, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.EmployeeFromEntity(emp)
	return &out, nil
}

// Create vincula un usuario existente con una sucursal. Un usuario tiene a lo sumo un registro
// de empleado (domain.ErrDuplicate) y nadie asigna un rol superior al propio (domain.ErrForbidden).
func (uc *EmployeeUseCase) Create(ctx context.Context, p *entity.Principal, in dto.CreateEmployeeRequest, meta audit.Meta) (*dto.EmployeeResponse, error) {
	if err := uc.access.AuthorizeCreate(ctx, p, entity.EntityEmployee, entity.EntityBranch, in.BranchID); err != nil {
		return nil, err
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if !canAssign(p, role) {
		return nil, domain.ErrForbidden
	}
	user, err := uc.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %s no existe", domain.ErrInvalidInput, in.UserID)
	}
	existing, err := uc.employees.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	branch, err := mustBranch(ctx, uc.branches, in.BranchID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	emp := &entity.Employee{
		ID:             uuid.New().String(),
		UserID:         user.ID,
		BranchID:       branch.ID,
		Slug:           slugOr(user.Username, user.ID),
		IdentityNumber: in.IdentityNumber,
		Phone:          in.Phone,
		Address:        in.Address,
		Gender:         in.Gender,
		BirthDate:      in.BirthDate,
		Role:           role,
		HireDate:       in.HireDate,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
		Username:       user.Username,
		FullName:       user.FullName(),
		Email:          user.Email,
	}
	err = uc.audit.RunAudited(ctx, func(repos repository.TxRepos) (*audit.Entry, error) {
		if err := repos.Employees.Create(ctx, emp); err != nil {
			return nil, err
		}
		return employeeEntry(p, entity.AuditCreate, emp, branch.CompanyID, in, meta), nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.EmployeeFromEntity(emp)
	return &out, nil
}

// Update modifica rol, contacto, baja o estado del empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, p *entity.Principal, id string, in dto.UpdateEmployeeRequest, meta audit.Meta) (*dto.EmployeeResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntityEmployee, id, access.OpUpdate); err != nil {
		return nil, err
	}
	var out dto.EmployeeResponse
	err := uc.audit.RunAudited(ctx, func(repos repository.TxRepos) (*audit.Entry, error) {
		emp, err := repos.Employees.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if emp == nil {
			return nil, domain.ErrNotFound
		}
		if in.Role != nil {
			role, err := entity.ParseRole(*in.Role)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
			}
			if !canAssign(p, role) {
				return nil, domain.ErrForbidden
			}
			emp.Role = role
		}
		setIf(&emp.Phone, in.Phone)
		setIf(&emp.Address, in.Address)
		setIf(&emp.IsActive, in.IsActive)
		if in.TerminationDate != nil {
			emp.TerminationDate = in.TerminationDate
		}
		emp.UpdatedAt = uc.clock.Now()
		if err := repos.Employees.Update(ctx, emp); err != nil {
			return nil, err
		}
		branch, err := mustBranch(ctx, repos.Branches, emp.BranchID)
		if err != nil {
			return nil, err
		}
		out = dto.EmployeeFromEntity(emp)
		return employeeEntry(p, entity.AuditUpdate, emp, branch.CompanyID, in, meta), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// canAssign: superusuarios y staff asignan cualquier rol; el resto, hasta el propio.
func canAssign(p *entity.Principal, role entity.Role) bool {
	if p.IsPrivileged() {
		return true
	}
	if p == nil || p.Affiliation == nil || p.Affiliation.Employee == nil {
		return false
	}
	return role <= p.Affiliation.Employee.Role
}

func employeeEntry(p *entity.Principal, action string, e *entity.Employee, companyID string, payload any, meta audit.Meta) *audit.Entry {
	repr := e.FullName
	if repr == "" {
		repr = e.Slug
	}
	return &audit.Entry{
		Principal: p,
		Action:    action,
		Target:    audit.Target{Type: entity.EntityEmployee, ID: e.ID, Repr: repr, CompanyID: companyID},
		Payload:   payload,
		Meta:      meta,
	}
}
