package entity

import "time"

// User representa la identidad que inicia sesión. Se crea y elimina fuera del núcleo de acceso.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca en texto plano
	FirstName    string
	LastName     string
	IsActive     bool
	IsSuperuser  bool
	IsStaff      bool
	DateJoined   time.Time
	LastLogin    *time.Time
}

// FullName devuelve nombre y apellido separados por espacio.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Affiliation agrupa el empleado de un usuario con su sucursal y empresa.
type Affiliation struct {
	Employee *Employee
	Branch   *Branch
	Company  *Company
}

// Principal es la identidad autenticada que ejecuta una operación.
// Affiliation es nil cuando el usuario no tiene registro de empleado.
type Principal struct {
	User        *User
	Affiliation *Affiliation
}

// IsPrivileged informa si el principal es superusuario o staff.
func (p *Principal) IsPrivileged() bool {
	return p != nil && p.User != nil && (p.User.IsSuperuser || p.User.IsStaff)
}

// IsSuperuser informa si el principal es superusuario.
func (p *Principal) IsSuperuser() bool {
	return p != nil && p.User != nil && p.User.IsSuperuser
}

// CompanyID devuelve la empresa afiliada o "" si no hay afiliación.
func (p *Principal) CompanyID() string {
	if p == nil || p.Affiliation == nil || p.Affiliation.Company == nil {
		return ""
	}
	return p.Affiliation.Company.ID
}

// UserID devuelve el ID del usuario o "" para un principal vacío.
func (p *Principal) UserID() string {
	if p == nil || p.User == nil {
		return ""
	}
	return p.User.ID
}
