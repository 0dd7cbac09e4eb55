package access

import (
	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// ScopeKind tipo de alcance de un principal sobre una entidad.
type ScopeKind int

const (
	ScopeNone    ScopeKind = iota // ninguna fila del tenant
	ScopeAll                      // sin restricción
	ScopeCompany                  // filas de una empresa
	ScopeBranch                   // filas de una sucursal
	ScopeSelf                     // solo el propio empleado
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeAll:
		return "all"
	case ScopeCompany:
		return "company"
	case ScopeBranch:
		return "branch"
	case ScopeSelf:
		return "self"
	}
	return "none"
}

// Operation operación solicitada sobre una entidad.
type Operation string

const (
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Scope describe el conjunto de filas visibles. Se traduce a SQL en la capa de persistencia
// y se evalúa en memoria con Allows; ambos caminos deben coincidir.
type Scope struct {
	Kind       ScopeKind
	CompanyID  string
	BranchID   string
	EmployeeID string
}

// ScopeFor calcula el alcance de lectura del principal sobre el tipo de entidad.
//
// Superusuarios y staff no tienen restricción. Las entidades globales se leen sin restricción.
// Sin afiliación el alcance es vacío. Employee depende del rol; el resto de entidades del
// tenant heredan el alcance de empresa por su cadena de claves foráneas.
func ScopeFor(principal *entity.Principal, et entity.EntityType) Scope {
	if principal == nil || principal.User == nil {
		return Scope{Kind: ScopeNone}
	}
	if principal.IsPrivileged() {
		return Scope{Kind: ScopeAll}
	}
	if et.IsGlobal() {
		return Scope{Kind: ScopeAll}
	}
	aff := affiliation(principal)
	if aff == nil {
		return Scope{Kind: ScopeNone}
	}
	if et == entity.EntityEmployee {
		return employeeScope(aff)
	}
	return Scope{Kind: ScopeCompany, CompanyID: aff.Company.ID}
}

// WriteScope calcula el alcance de escritura de un principal afiliado y no privilegiado.
// company_admin escribe en toda su empresa; branch_admin solo en su sucursal (la propia fila
// de sucursal y sus empleados); employee solo en su propio registro.
func WriteScope(principal *entity.Principal, et entity.EntityType) Scope {
	aff := affiliation(principal)
	if aff == nil {
		return Scope{Kind: ScopeNone}
	}
	switch aff.Employee.Role {
	case entity.RoleCompanyAdmin:
		return Scope{Kind: ScopeCompany, CompanyID: aff.Company.ID}
	case entity.RoleBranchAdmin:
		if et == entity.EntityBranch || et == entity.EntityEmployee {
			return Scope{Kind: ScopeBranch, CompanyID: aff.Company.ID, BranchID: aff.Branch.ID}
		}
	case entity.RoleEmployee:
		if et == entity.EntityEmployee {
			return employeeScope(aff)
		}
	}
	return Scope{Kind: ScopeNone}
}

func affiliation(principal *entity.Principal) *entity.Affiliation {
	if principal == nil || principal.User == nil {
		return nil
	}
	aff := principal.Affiliation
	if aff == nil || aff.Employee == nil || aff.Branch == nil || aff.Company == nil {
		return nil
	}
	return aff
}

func employeeScope(aff *entity.Affiliation) Scope {
	switch aff.Employee.Role {
	case entity.RoleCompanyAdmin:
		return Scope{Kind: ScopeCompany, CompanyID: aff.Company.ID}
	case entity.RoleBranchAdmin:
		return Scope{Kind: ScopeBranch, CompanyID: aff.Company.ID, BranchID: aff.Branch.ID}
	case entity.RoleEmployee:
		return Scope{Kind: ScopeSelf, CompanyID: aff.Company.ID, BranchID: aff.Branch.ID, EmployeeID: aff.Employee.ID}
	}
	return Scope{Kind: ScopeNone}
}

// Contains informa si la fila ubicada por o cae dentro del alcance del tenant.
func (s Scope) Contains(o entity.Ownership) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeCompany:
		return o.CompanyID != "" && o.CompanyID == s.CompanyID
	case ScopeBranch:
		return o.BranchID != "" && o.BranchID == s.BranchID
	case ScopeSelf:
		return o.EmployeeID != "" && o.EmployeeID == s.EmployeeID
	}
	return false
}

// Allows es el predicado de lectura sobre filas de tipo et: filas dentro del alcance o, si et
// admite filas sin tenant (notificaciones globales), esas filas para cualquier principal afiliado.
func (s Scope) Allows(et entity.EntityType, o entity.Ownership) bool {
	if s.Contains(o) {
		return true
	}
	return s.Kind != ScopeNone && et.HasTenantlessRows() && o.IsTenantless()
}

// Decide autoriza op sobre una fila ya ubicada (o sobre el padre, si op es OpCreate).
// Devuelve nil, domain.ErrForbidden o domain.ErrAuditImmutable.
func Decide(principal *entity.Principal, et entity.EntityType, op Operation, o entity.Ownership) error {
	if principal == nil || principal.User == nil {
		return domain.ErrForbidden
	}
	if et == entity.EntityAuditLog && op != OpRead {
		return domain.ErrAuditImmutable
	}
	scope := ScopeFor(principal, et)
	if op == OpRead {
		if scope.Allows(et, o) {
			return nil
		}
		return domain.ErrForbidden
	}
	if principal.IsPrivileged() {
		return nil
	}
	// Entidades globales y filas sin tenant solo las modifica el staff.
	if et.IsGlobal() || o.IsTenantless() {
		return domain.ErrForbidden
	}
	if WriteScope(principal, et).Contains(o) {
		return nil
	}
	return domain.ErrForbidden
}
