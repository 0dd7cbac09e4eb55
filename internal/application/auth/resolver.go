package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

// PrincipalResolver convierte credenciales o un ID de usuario en un Principal con su afiliación.
// Solo lee; no modifica nada.
type PrincipalResolver struct {
	users     repository.UserRepository
	employees repository.EmployeeRepository
	branches  repository.BranchRepository
	companies repository.CompanyRepository
}

// NewPrincipalResolver construye el resolvedor.
func NewPrincipalResolver(
	users repository.UserRepository,
	employees repository.EmployeeRepository,
	branches repository.BranchRepository,
	companies repository.CompanyRepository,
) *PrincipalResolver {
	return &PrincipalResolver{users: users, employees: employees, branches: branches, companies: companies}
}

// Authenticate verifica usuario y contraseña. Usuario inexistente y contraseña incorrecta
// devuelven el mismo domain.ErrInvalidCredentials. No mira IsActive: eso lo decide el flujo de login.
func (r *PrincipalResolver) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := r.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// ResolveAffiliation devuelve empleado, sucursal y empresa del usuario, o nil si no es empleado.
func (r *PrincipalResolver) ResolveAffiliation(ctx context.Context, user *entity.User) (*entity.Affiliation, error) {
	emp, err := r.employees.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("buscar empleado: %w", err)
	}
	if emp == nil {
		return nil, nil
	}
	branch, err := r.branches.GetByID(ctx, emp.BranchID)
	if err != nil {
		return nil, fmt.Errorf("buscar sucursal: %w", err)
	}
	if branch == nil {
		return nil, fmt.Errorf("empleado %s sin sucursal %s: %w", emp.ID, emp.BranchID, domain.ErrNotFound)
	}
	company, err := r.companies.GetByID(ctx, branch.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("buscar empresa: %w", err)
	}
	if company == nil {
		return nil, fmt.Errorf("sucursal %s sin empresa %s: %w", branch.ID, branch.CompanyID, domain.ErrNotFound)
	}
	return &entity.Affiliation{Employee: emp, Branch: branch, Company: company}, nil
}

// Principal arma el principal de un usuario ya autenticado.
func (r *PrincipalResolver) Principal(ctx context.Context, user *entity.User) (*entity.Principal, error) {
	aff, err := r.ResolveAffiliation(ctx, user)
	if err != nil {
		return nil, err
	}
	return &entity.Principal{User: user, Affiliation: aff}, nil
}

// Resolve arma el principal a partir del ID de usuario de un token.
// Devuelve domain.ErrUnauthorized si el usuario ya no existe.
func (r *PrincipalResolver) Resolve(ctx context.Context, userID string) (*entity.Principal, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return r.Principal(ctx, user)
}
