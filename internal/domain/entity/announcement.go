package entity

import "time"

// Rol destinatario de un Announcement.
const (
	AnnouncementTargetAll          = "all"
	AnnouncementTargetCompanyAdmin = "company_admin"
	AnnouncementTargetBranchAdmin  = "branch_admin"
	AnnouncementTargetEmployee     = "employee"
)

// Prioridades de Announcement.
const (
	AnnouncementLow    = "low"
	AnnouncementMedium = "medium"
	AnnouncementHigh   = "high"
	AnnouncementUrgent = "urgent"
)

// Announcement comunicado del operador del sistema. Entidad global: TargetCompanies vacío
// significa todas las empresas.
type Announcement struct {
	ID              string
	Title           string
	Content         string
	Priority        string
	TargetRole      string
	TargetCompanies []string
	PublishDate     time.Time
	EndDate         *time.Time // nil: sin vencimiento
	CreatedBy       *string
	IsActive        bool
	CreatedAt       time.Time
}

// IsPublishedAt informa si el comunicado está en publicación en now.
func (a *Announcement) IsPublishedAt(now time.Time) bool {
	if !a.IsActive || a.PublishDate.After(now) {
		return false
	}
	return a.EndDate == nil || !a.EndDate.Before(now)
}
