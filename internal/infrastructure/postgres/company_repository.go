package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)
var _ repository.BrandingRepository = (*BrandingRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `c.id, c.name, c.slug, c.company_type, c.tax_number, c.tax_office,
	c.phone, c.email, c.address, c.is_active, c.created_at, c.updated_at`

// Create persiste una nueva empresa. Un slug repetido devuelve domain.ErrDuplicate.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, slug, company_type, tax_number, tax_office, phone, email, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.Slug, company.CompanyType, company.TaxNumber, company.TaxOffice,
		company.Phone, company.Email, company.Address, company.IsActive,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert company: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies c WHERE c.id = $1`, id).Scan(companyDest(&c)...)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// SlugExists informa si el slug ya está tomado.
func (r *CompanyRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE slug = $1)`, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("check company slug: %w", err)
	}
	return exists, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, company_type = $3, tax_number = $4, tax_office = $5,
			phone = $6, email = $7, address = $8, is_active = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.CompanyType, company.TaxNumber, company.TaxOffice,
		company.Phone, company.Email, company.Address, company.IsActive, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update company: %w", domain.ErrNotFound)
	}
	return nil
}

// List devuelve las empresas visibles para el alcance, más recientes primero.
func (r *CompanyRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.Company, error) {
	where, args, pos, err := scopedWhere(entity.EntityCompany, q, nil)
	if err != nil {
		return nil, err
	}
	page, args := paginate(q, args, pos)
	rows, err := r.q.Query(ctx, `SELECT `+companyColumns+` FROM companies c`+where+` ORDER BY c.created_at DESC`+page, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(companyDest(&c)...); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func companyDest(c *entity.Company) []any {
	return []any{
		&c.ID, &c.Name, &c.Slug, &c.CompanyType, &c.TaxNumber, &c.TaxOffice,
		&c.Phone, &c.Email, &c.Address, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	}
}

// BrandingRepo lectura de company_brandings.
type BrandingRepo struct {
	q Querier
}

// NewBrandingRepository construye el adaptador.
func NewBrandingRepository(q Querier) *BrandingRepo {
	return &BrandingRepo{q: q}
}

// GetByCompanyID devuelve la marca de la empresa o (nil, nil).
func (r *BrandingRepo) GetByCompanyID(ctx context.Context, companyID string) (*entity.CompanyBranding, error) {
	query := `
		SELECT company_id, primary_color, secondary_color, COALESCE(logo_url, ''), COALESCE(favicon_url, '')
		FROM company_brandings WHERE company_id = $1`
	var b entity.CompanyBranding
	err := r.q.QueryRow(ctx, query, companyID).Scan(&b.CompanyID, &b.PrimaryColor, &b.SecondaryColor, &b.LogoURL, &b.FaviconURL)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branding: %w", err)
	}
	return &b, nil
}
