package repository

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	// GetByUserID devuelve el registro de empleado del usuario, si existe.
	GetByUserID(ctx context.Context, userID string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	List(ctx context.Context, q ListQuery) ([]*entity.Employee, error)
	// ListByBranch devuelve todos los empleados de la sucursal, sin paginar.
	ListByBranch(ctx context.Context, branchID string) ([]*entity.Employee, error)
}
