package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Los listados y Get cargan además usuario y nombre desde users.
const employeeSelect = `
	SELECT e.id, e.user_id, e.branch_id, e.slug, e.identity_number, e.phone, e.address,
		COALESCE(e.gender, ''), e.birth_date, e.role, e.hire_date, e.termination_date,
		e.is_active, e.created_at, e.updated_at,
		u.username, u.first_name, u.last_name, u.email
	FROM employees e
	JOIN branches b ON b.id = e.branch_id
	JOIN users u ON u.id = e.user_id`

// Create persiste el empleado. Un segundo registro para el mismo usuario devuelve domain.ErrDuplicate.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, user_id, branch_id, slug, identity_number, phone, address, gender,
			birth_date, role, hire_date, termination_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.UserID, e.BranchID, e.Slug, e.IdentityNumber, e.Phone, e.Address, nullable(e.Gender),
		e.BirthDate, e.Role.String(), e.HireDate, e.TerminationDate, e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert employee: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// GetByUserID devuelve el registro de empleado del usuario.
func (r *EmployeeRepo) GetByUserID(ctx context.Context, userID string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, employeeSelect+` WHERE e.user_id = $1`, userID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by user: %w", err)
	}
	return e, nil
}

// Update actualiza rol, contacto, estado y fecha de baja.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET phone = $2, address = $3, role = $4, termination_date = $5,
			is_active = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		e.ID, e.Phone, e.Address, e.Role.String(), e.TerminationDate, e.IsActive, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update employee: %w", domain.ErrNotFound)
	}
	return nil
}

// List devuelve los empleados visibles para el alcance, ordenados por fecha de ingreso.
func (r *EmployeeRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.Employee, error) {
	where, args, pos, err := scopedWhere(entity.EntityEmployee, q, nil)
	if err != nil {
		return nil, err
	}
	page, args := paginate(q, args, pos)
	rows, err := r.q.Query(ctx, employeeSelect+where+` ORDER BY e.hire_date, e.id`+page, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ListByBranch devuelve los empleados de la sucursal (los que arrastra su borrado).
func (r *EmployeeRepo) ListByBranch(ctx context.Context, branchID string) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, employeeSelect+` WHERE e.branch_id = $1 ORDER BY e.hire_date, e.id`, branchID)
	if err != nil {
		return nil, fmt.Errorf("list employees by branch: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var (
		e                   entity.Employee
		role                string
		firstName, lastName string
	)
	err := row.Scan(
		&e.ID, &e.UserID, &e.BranchID, &e.Slug, &e.IdentityNumber, &e.Phone, &e.Address,
		&e.Gender, &e.BirthDate, &role, &e.HireDate, &e.TerminationDate,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
		&e.Username, &firstName, &lastName, &e.Email,
	)
	if err != nil {
		return nil, err
	}
	if e.Role, err = entity.ParseRole(role); err != nil {
		return nil, err
	}
	e.FullName = (&entity.User{FirstName: firstName, LastName: lastName}).FullName()
	return &e, nil
}
