package access

import (
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// CanViewAnnouncement decide si el principal ve el comunicado en now.
// Superusuarios y staff ven todos, incluso programados o vencidos. El resto necesita
// registro de empleado, comunicado en publicación, empresa dentro de TargetCompanies
// (vacío = todas) y rol coincidente con TargetRole.
func CanViewAnnouncement(a *entity.Announcement, principal *entity.Principal, now time.Time) bool {
	if a == nil || principal == nil || principal.User == nil {
		return false
	}
	if principal.IsPrivileged() {
		return true
	}
	aff := affiliation(principal)
	if aff == nil {
		return false
	}
	if !a.IsPublishedAt(now) {
		return false
	}
	if len(a.TargetCompanies) > 0 && !lo.Contains(a.TargetCompanies, aff.Company.ID) {
		return false
	}

	switch a.TargetRole {
	case entity.AnnouncementTargetAll:
		return true
	case entity.AnnouncementTargetCompanyAdmin:
		return aff.Employee.Role == entity.RoleCompanyAdmin
	case entity.AnnouncementTargetBranchAdmin:
		return aff.Employee.Role == entity.RoleBranchAdmin
	case entity.AnnouncementTargetEmployee:
		return aff.Employee.Role == entity.RoleEmployee
	}
	return false
}
