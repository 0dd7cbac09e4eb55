package entity

import (
	"fmt"
	"time"
)

// Role es el rol de un empleado dentro de su empresa. Es una variante cerrada:
// cualquier switch sobre Role debe cubrir los tres valores.
type Role int

const (
	RoleEmployee Role = iota + 1
	RoleBranchAdmin
	RoleCompanyAdmin
)

// Códigos persistidos en employees.role.
const (
	RoleCodeEmployee     = "employee"
	RoleCodeBranchAdmin  = "branch_admin"
	RoleCodeCompanyAdmin = "company_admin"
)

// ParseRole convierte el código persistido en Role.
func ParseRole(code string) (Role, error) {
	switch code {
	case RoleCodeEmployee:
		return RoleEmployee, nil
	case RoleCodeBranchAdmin:
		return RoleBranchAdmin, nil
	case RoleCodeCompanyAdmin:
		return RoleCompanyAdmin, nil
	}
	return 0, fmt.Errorf("rol desconocido %q", code)
}

// String devuelve el código persistido del rol.
func (r Role) String() string {
	switch r {
	case RoleEmployee:
		return RoleCodeEmployee
	case RoleBranchAdmin:
		return RoleCodeBranchAdmin
	case RoleCompanyAdmin:
		return RoleCodeCompanyAdmin
	}
	return ""
}

// Display devuelve la etiqueta legible del rol.
func (r Role) Display() string {
	switch r {
	case RoleEmployee:
		return "Empleado"
	case RoleBranchAdmin:
		return "Administrador de sucursal"
	case RoleCompanyAdmin:
		return "Administrador de empresa"
	}
	return ""
}

// Employee vincula un User con una Branch (la sucursal es dueña del empleado).
type Employee struct {
	ID              string
	UserID          string
	BranchID        string
	Slug            string
	IdentityNumber  string
	Phone           string
	Address         string
	Gender          string // M, F, O
	BirthDate       *time.Time
	Role            Role
	HireDate        time.Time
	TerminationDate *time.Time // no nil = no puede abrir sesiones nuevas
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Datos del usuario, cargados por los listados.
	Username string
	FullName string
	Email    string
}

// IsTerminated informa si el empleado tiene fecha de baja.
func (e *Employee) IsTerminated() bool {
	return e.TerminationDate != nil
}

// MaskedIdentity devuelve los últimos cuatro dígitos del documento seguidos de asteriscos.
// Con cuatro caracteres o menos no se revela ninguno.
func (e *Employee) MaskedIdentity() string {
	n := len(e.IdentityNumber)
	if n <= 4 {
		return "****"
	}
	return e.IdentityNumber[n-4:] + "****"
}
