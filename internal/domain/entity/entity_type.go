package entity

// EntityType identifica una tabla sujeta a control de acceso.
type EntityType string

// Entidades del tenant (alcanzan una Company por su cadena de claves foráneas).
const (
	EntityCompany         EntityType = "company"
	EntityBranch          EntityType = "branch"
	EntityEmployee        EntityType = "employee"
	EntitySubscription    EntityType = "subscription"
	EntityInvoice         EntityType = "invoice"
	EntityNotification    EntityType = "notification"
	EntityCompanyBranding EntityType = "company_branding"
	EntityIntegration     EntityType = "integration"
	EntityFileStorage     EntityType = "file_storage"
	EntityAPIUsage        EntityType = "api_usage"
	EntityAuditLog        EntityType = "audit_log"
)

// Entidades globales (no pertenecen a ningún tenant).
const (
	EntityPlan         EntityType = "plan"
	EntityMaintenance  EntityType = "maintenance_mode"
	EntityAnnouncement EntityType = "announcement"
)

// EntityUser la identidad de acceso; no pertenece al árbol del tenant y solo aparece como objetivo de auditoría.
const EntityUser EntityType = "user"

// IsGlobal informa si la entidad no pertenece a ningún tenant.
func (t EntityType) IsGlobal() bool {
	switch t {
	case EntityPlan, EntityMaintenance, EntityAnnouncement:
		return true
	}
	return false
}

// HasTenantlessRows informa si el tipo admite filas sin empresa visibles para todo principal afiliado.
// Solo las notificaciones globales; una fila de auditoría sin empresa (acción de staff) no es pública.
func (t EntityType) HasTenantlessRows() bool {
	return t == EntityNotification
}

// Ownership ubica una fila dentro del árbol del tenant. Los campos vacíos no aplican
// (por ejemplo BranchID para una Subscription).
type Ownership struct {
	CompanyID  string
	BranchID   string
	EmployeeID string
}

// IsTenantless informa si la fila no pertenece a ninguna empresa (p. ej. una notificación global).
func (o Ownership) IsTenantless() bool {
	return o.CompanyID == ""
}
