package repository

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para Branch.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id string) (*entity.Branch, error)
	SlugExists(ctx context.Context, companyID, slug string) (bool, error)
	Update(ctx context.Context, branch *entity.Branch) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q ListQuery) ([]*entity.Branch, error)
}
