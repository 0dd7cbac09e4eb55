package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/access"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

// ownershipChain expresiones SQL que ubican una fila en el árbol del tenant.
// Las columnas vacías no aplican a la entidad.
type ownershipChain struct {
	from     string
	id       string
	company  string
	branch   string
	employee string
}

// ownershipChains cadena de claves foráneas de cada entidad. Los listados (ScopeFilter) y la
// autorización por ID (OwnershipResolver) salen de esta misma tabla.
var ownershipChains = map[entity.EntityType]ownershipChain{
	entity.EntityCompany:         {from: "companies c", id: "c.id", company: "c.id"},
	entity.EntityBranch:          {from: "branches b", id: "b.id", company: "b.company_id", branch: "b.id"},
	entity.EntityEmployee:        {from: "employees e JOIN branches b ON b.id = e.branch_id", id: "e.id", company: "b.company_id", branch: "e.branch_id", employee: "e.id"},
	entity.EntitySubscription:    {from: "subscriptions s", id: "s.id", company: "s.company_id"},
	entity.EntityInvoice:         {from: "invoices i JOIN subscriptions s ON s.id = i.subscription_id", id: "i.id", company: "s.company_id"},
	entity.EntityNotification:    {from: "notifications n", id: "n.id", company: "n.company_id", branch: "n.branch_id"},
	entity.EntityCompanyBranding: {from: "company_brandings cb", id: "cb.company_id", company: "cb.company_id"},
	entity.EntityIntegration:     {from: "integrations ig", id: "ig.id", company: "ig.company_id"},
	entity.EntityFileStorage:     {from: "file_storages fs", id: "fs.id", company: "fs.company_id"},
	entity.EntityAPIUsage:        {from: "api_usages au", id: "au.id", company: "au.company_id"},
	entity.EntityAuditLog:        {from: "audit_logs a", id: "a.id", company: "a.company_id"},
	entity.EntityPlan:            {from: "plans p", id: "p.id"},
	entity.EntityMaintenance:     {from: "maintenance_modes m", id: "m.id"},
	entity.EntityAnnouncement:    {from: "announcements an", id: "an.id"},
}

func chainFor(et entity.EntityType) (ownershipChain, error) {
	chain, ok := ownershipChains[et]
	if !ok {
		return ownershipChain{}, fmt.Errorf("entidad sin cadena de pertenencia: %s", et)
	}
	return chain, nil
}

// ScopeFilter traduce el predicado de lectura access.Scope.Allows a SQL sobre la cadena de la entidad:
// filas dentro del alcance y, solo si la entidad admite filas globales, también las que no tienen empresa.
// argPos es la posición del primer parámetro ($n) a usar.
func ScopeFilter(et entity.EntityType, scope access.Scope, argPos int) (string, []any, error) {
	chain, err := chainFor(et)
	if err != nil {
		return "", nil, err
	}
	if chain.company == "" || scope.Kind == access.ScopeAll {
		return "TRUE", nil, nil
	}
	if scope.Kind == access.ScopeNone {
		return "FALSE", nil, nil
	}

	var col, val string
	switch scope.Kind {
	case access.ScopeCompany:
		col, val = chain.company, scope.CompanyID
	case access.ScopeBranch:
		col, val = chain.branch, scope.BranchID
	case access.ScopeSelf:
		col, val = chain.employee, scope.EmployeeID
	}
	tenantless := ""
	if et.HasTenantlessRows() {
		tenantless = chain.company + " IS NULL"
	}
	switch {
	case (col == "" || val == "") && tenantless == "":
		return "FALSE", nil, nil
	case col == "" || val == "":
		return tenantless, nil, nil
	case tenantless == "":
		return col + " = $" + strconv.Itoa(argPos), []any{val}, nil
	}
	return "(" + col + " = $" + strconv.Itoa(argPos) + " OR " + tenantless + ")", []any{val}, nil
}

// scopedWhere arma el WHERE de un listado: alcance más filtro opcional de empresa.
// Devuelve también la posición del siguiente parámetro.
func scopedWhere(et entity.EntityType, q repository.ListQuery, args []any) (string, []any, int, error) {
	filter, extra, err := ScopeFilter(et, q.Scope, len(args)+1)
	if err != nil {
		return "", nil, 0, err
	}
	args = append(args, extra...)
	where := " WHERE " + filter
	if q.CompanyID != "" {
		chain := ownershipChains[et]
		if chain.company != "" {
			args = append(args, q.CompanyID)
			where += " AND " + chain.company + " = $" + strconv.Itoa(len(args))
		}
	}
	return where, args, len(args) + 1, nil
}

// paginate agrega LIMIT/OFFSET a partir de la posición pos.
func paginate(q repository.ListQuery, args []any, pos int) (string, []any) {
	return " LIMIT $" + strconv.Itoa(pos) + " OFFSET $" + strconv.Itoa(pos+1), append(args, q.Limit, q.Offset)
}

var _ repository.OwnershipResolver = (*OwnershipResolver)(nil)

// OwnershipResolver ubica filas siguiendo ownershipChains.
type OwnershipResolver struct {
	q Querier
}

// NewOwnershipResolver construye el resolvedor.
func NewOwnershipResolver(q Querier) *OwnershipResolver {
	return &OwnershipResolver{q: q}
}

// Resolve devuelve la pertenencia de la fila o domain.ErrNotFound.
func (r *OwnershipResolver) Resolve(ctx context.Context, et entity.EntityType, id string) (entity.Ownership, error) {
	chain, err := chainFor(et)
	if err != nil {
		return entity.Ownership{}, err
	}
	query := "SELECT " + colOrNull(chain.company) + ", " + colOrNull(chain.branch) + ", " + colOrNull(chain.employee) +
		" FROM " + chain.from + " WHERE " + chain.id + " = $1"
	var company, branch, employee *string
	if err := r.q.QueryRow(ctx, query, id).Scan(&company, &branch, &employee); err != nil {
		if isNoRows(err) {
			return entity.Ownership{}, domain.ErrNotFound
		}
		return entity.Ownership{}, fmt.Errorf("resolver pertenencia %s: %w", et, err)
	}
	return entity.Ownership{CompanyID: deref(company), BranchID: deref(branch), EmployeeID: deref(employee)}, nil
}

func colOrNull(col string) string {
	if col == "" {
		return "NULL::text"
	}
	return col + "::text"
}
