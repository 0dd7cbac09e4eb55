package usecase

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/domain/access"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

// AccessService autoriza operaciones por tenant. Ubica la fila con la misma cadena de claves
// foráneas que usan los listados, así un objeto es legible por ID si y solo si aparece en el listado.
type AccessService struct {
	owners repository.OwnershipResolver
}

// NewAccessService construye el servicio de acceso.
func NewAccessService(owners repository.OwnershipResolver) *AccessService {
	return &AccessService{owners: owners}
}

// Authorize decide si principal puede aplicar op sobre la fila targetID de tipo et.
// Devuelve nil, domain.ErrNotFound, domain.ErrForbidden o domain.ErrAuditImmutable.
func (s *AccessService) Authorize(ctx context.Context, principal *entity.Principal, et entity.EntityType, targetID string, op access.Operation) error {
	owner, err := s.owners.Resolve(ctx, et, targetID)
	if err != nil {
		return err
	}
	return access.Decide(principal, et, op, owner)
}

// AuthorizeCreate decide si principal puede crear una fila de tipo et bajo el padre indicado.
// Sin padre (parentType vacío) la fila no tendría tenant y solo la crean superusuarios y staff.
func (s *AccessService) AuthorizeCreate(ctx context.Context, principal *entity.Principal, et, parentType entity.EntityType, parentID string) error {
	var owner entity.Ownership
	if parentType != "" {
		var err error
		if owner, err = s.owners.Resolve(ctx, parentType, parentID); err != nil {
			return err
		}
	}
	return access.Decide(principal, et, access.OpCreate, owner)
}

// ListQuery arma el filtro de un listado con el alcance de lectura del principal.
func (s *AccessService) ListQuery(principal *entity.Principal, et entity.EntityType, page dto.PageRequest) repository.ListQuery {
	page.DefaultPage()
	return repository.ListQuery{
		Scope:  access.ScopeFor(principal, et),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}
