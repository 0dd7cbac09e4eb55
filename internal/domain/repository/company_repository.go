package repository

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, q ListQuery) ([]*entity.Company, error)
}

// BrandingRepository lectura de la marca de una empresa ((nil, nil) si no tiene).
type BrandingRepository interface {
	GetByCompanyID(ctx context.Context, companyID string) (*entity.CompanyBranding, error)
}
