package repository

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// OwnershipResolver ubica una fila en el árbol del tenant siguiendo su cadena de claves foráneas.
// Devuelve domain.ErrNotFound si la fila no existe.
type OwnershipResolver interface {
	Resolve(ctx context.Context, et entity.EntityType, id string) (entity.Ownership, error)
}
