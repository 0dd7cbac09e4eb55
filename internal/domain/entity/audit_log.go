package entity

import "time"

// Acciones de AuditLog.
const (
	AuditCreate = "create"
	AuditUpdate = "update"
	AuditDelete = "delete"
	AuditLogin  = "login"
	AuditLogout = "logout"
	AuditOther  = "other"
)

// AuditLog registro inmutable de una operación. Solo lo inserta el registrador de auditoría.
type AuditLog struct {
	ID         string
	UserID     *string
	CompanyID  *string // nil si el objetivo no pertenece a ninguna empresa
	Action     string
	EntityType EntityType
	ObjectID   string
	ObjectRepr string
	Changes    []byte // JSON
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time
}
