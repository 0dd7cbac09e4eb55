package entity

import "time"

// Estados de MaintenanceMode.
const (
	MaintenanceScheduled  = "scheduled"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
	MaintenanceCanceled   = "canceled"
)

// AccessLevel define quién puede entrar durante un mantenimiento.
type AccessLevel string

const (
	AccessNone         AccessLevel = "none"
	AccessSuperuser    AccessLevel = "superuser"
	AccessStaff        AccessLevel = "staff"
	AccessCompanyAdmin AccessLevel = "company_admin"
	AccessAll          AccessLevel = "all"
)

// MaintenanceMode ventana de mantenimiento del sistema.
type MaintenanceMode struct {
	ID               string
	Title            string
	Description      string
	Platform         string // all, web, mobile, api
	Status           string
	PlannedStartTime time.Time
	PlannedEndTime   time.Time
	ActualStartTime  *time.Time
	ActualEndTime    *time.Time
	ShowMessage      bool
	BlockAccess      bool
	AccessLevel      AccessLevel
	AllowedCompanies []string // IDs; vacío = todas
	CreatedBy        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsActiveAt: status in_progress, iniciado en o antes de now y sin fin o con fin posterior a now.
func (m *MaintenanceMode) IsActiveAt(now time.Time) bool {
	if m.Status != MaintenanceInProgress || m.ActualStartTime == nil {
		return false
	}
	if m.ActualStartTime.After(now) {
		return false
	}
	return m.ActualEndTime == nil || m.ActualEndTime.After(now)
}
