package dto

import "time"

// CreateEmployeeRequest vincula un usuario existente con una sucursal.
type CreateEmployeeRequest struct {
	UserID         string     `json:"user_id" validate:"required"`
	BranchID       string     `json:"branch_id" validate:"required"`
	Role           string     `json:"role" validate:"required,oneof=employee branch_admin company_admin"`
	IdentityNumber string     `json:"identity_number" validate:"required,min=4,max=20"`
	Phone          string     `json:"phone" validate:"omitempty,max=20"`
	Address        string     `json:"address"`
	Gender         string     `json:"gender" validate:"omitempty,oneof=M F O"`
	BirthDate      *time.Time `json:"birth_date"`
	HireDate       time.Time  `json:"hire_date" validate:"required"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado.
type UpdateEmployeeRequest struct {
	Role            *string    `json:"role" validate:"omitempty,oneof=employee branch_admin company_admin"`
	Phone           *string    `json:"phone" validate:"omitempty,max=20"`
	Address         *string    `json:"address"`
	TerminationDate *time.Time `json:"termination_date"`
	IsActive        *bool      `json:"is_active"`
}

// EmployeeResponse salida de un empleado; el documento va enmascarado.
type EmployeeResponse struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Username        string      `json:"username,omitempty"`
	FullName        string      `json:"user_full_name,omitempty"`
	BranchID        string      `json:"branch_id"`
	Role            CodeDisplay `json:"role"`
	IdentityNumber  string      `json:"identity_number"`
	Phone           string      `json:"phone"`
	HireDate        time.Time   `json:"hire_date"`
	TerminationDate *time.Time  `json:"termination_date"`
	IsActive        bool        `json:"is_active"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
