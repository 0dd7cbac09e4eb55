package repository

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// UserRepository define el puerto de lectura de usuarios. Los usuarios se crean fuera del núcleo.
// Los Get devuelven (nil, nil) si no existe la fila.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
