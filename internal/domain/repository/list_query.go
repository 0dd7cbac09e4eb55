package repository

import "github.com/jhoicas/Saas-api/internal/domain/access"

// ListQuery filtro común de los listados: alcance del principal más paginación.
// La implementación traduce Scope al mismo predicado que access.Scope.Allows.
type ListQuery struct {
	Scope     access.Scope
	CompanyID string // filtro adicional opcional
	Limit     int
	Offset    int
}
