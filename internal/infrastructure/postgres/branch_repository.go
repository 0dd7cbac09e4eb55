package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación de BranchRepository (usable con pool o tx).
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

const branchColumns = `b.id, b.company_id, b.name, b.slug, b.phone, b.email, b.address,
	b.is_main_branch, b.is_active, b.created_at, b.updated_at`

// Create persiste la sucursal. El índice parcial de sucursal principal y el slug por empresa
// se reportan como domain.ErrDuplicate.
func (r *BranchRepo) Create(ctx context.Context, branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, company_id, name, slug, phone, email, address, is_main_branch, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		branch.ID, branch.CompanyID, branch.Name, branch.Slug, branch.Phone, branch.Email, branch.Address,
		branch.IsMainBranch, branch.IsActive, branch.CreatedAt, branch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert branch: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID.
func (r *BranchRepo) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	var b entity.Branch
	err := r.q.QueryRow(ctx, `SELECT `+branchColumns+` FROM branches b WHERE b.id = $1`, id).Scan(branchDest(&b)...)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// SlugExists informa si el slug ya existe dentro de la empresa.
func (r *BranchRepo) SlugExists(ctx context.Context, companyID, slug string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM branches WHERE company_id = $1 AND slug = $2)`, companyID, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check branch slug: %w", err)
	}
	return exists, nil
}

// Update actualiza los datos editables de la sucursal.
func (r *BranchRepo) Update(ctx context.Context, branch *entity.Branch) error {
	query := `
		UPDATE branches SET name = $2, phone = $3, email = $4, address = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		branch.ID, branch.Name, branch.Phone, branch.Email, branch.Address, branch.IsActive, branch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update branch: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete elimina la sucursal; sus empleados caen en cascada (employees.branch_id ON DELETE CASCADE).
func (r *BranchRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete branch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete branch: %w", domain.ErrNotFound)
	}
	return nil
}

// List devuelve las sucursales visibles; la principal primero.
func (r *BranchRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.Branch, error) {
	where, args, pos, err := scopedWhere(entity.EntityBranch, q, nil)
	if err != nil {
		return nil, err
	}
	page, args := paginate(q, args, pos)
	rows, err := r.q.Query(ctx, `SELECT `+branchColumns+` FROM branches b`+where+` ORDER BY b.is_main_branch DESC, b.name`+page, args...)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(branchDest(&b)...); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func branchDest(b *entity.Branch) []any {
	return []any{
		&b.ID, &b.CompanyID, &b.Name, &b.Slug, &b.Phone, &b.Email, &b.Address,
		&b.IsMainBranch, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	}
}
