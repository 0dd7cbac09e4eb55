// Package access contiene las decisiones puras de acceso: compuertas de mantenimiento y suscripción
// y resolución de alcance por tenant. No consulta la base de datos ni el reloj; todo llega por parámetro.
package access

import (
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// CurrentMaintenance selecciona la ventana activa en now entre los candidatos.
// Si varias están activas gana la iniciada más recientemente; a igualdad, el menor ID.
func CurrentMaintenance(candidates []*entity.MaintenanceMode, now time.Time) *entity.MaintenanceMode {
	active := lo.Filter(candidates, func(m *entity.MaintenanceMode, _ int) bool {
		return m != nil && m.IsActiveAt(now)
	})
	if len(active) == 0 {
		return nil
	}
	return lo.MaxBy(active, func(a, b *entity.MaintenanceMode) bool {
		if a.ActualStartTime.Equal(*b.ActualStartTime) {
			return a.ID < b.ID
		}
		return a.ActualStartTime.After(*b.ActualStartTime)
	})
}

// CanAccess decide si el principal puede usar el sistema durante la ventana.
// principal nil representa una petición sin autenticar.
func CanAccess(window *entity.MaintenanceMode, principal *entity.Principal) bool {
	if window == nil || !window.BlockAccess {
		return true
	}
	if principal == nil || principal.User == nil {
		return false
	}
	if principal.IsSuperuser() {
		return true
	}

	switch window.AccessLevel {
	case entity.AccessNone, entity.AccessSuperuser:
		return false
	case entity.AccessStaff:
		return principal.User.IsStaff
	case entity.AccessCompanyAdmin:
		aff := principal.Affiliation
		if aff == nil || aff.Employee == nil || aff.Employee.Role != entity.RoleCompanyAdmin {
			return false
		}
		return companyAllowed(window, principal.CompanyID())
	case entity.AccessAll:
		if principal.Affiliation == nil {
			return true
		}
		return companyAllowed(window, principal.CompanyID())
	}
	return false
}

func companyAllowed(window *entity.MaintenanceMode, companyID string) bool {
	if len(window.AllowedCompanies) == 0 {
		return true
	}
	return lo.Contains(window.AllowedCompanies, companyID)
}
