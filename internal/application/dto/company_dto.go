package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa (se crea con su sucursal principal).
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	CompanyType string `json:"company_type" validate:"required,oneof=sahis kolektif komandit limited anonim kooperatif other"`
	TaxNumber   string `json:"tax_number" validate:"required,min=1,max=20"`
	TaxOffice   string `json:"tax_office" validate:"omitempty,max=100"`
	Phone       string `json:"phone" validate:"omitempty,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	TaxOffice *string `json:"tax_office" validate:"omitempty,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Address   *string `json:"address"`
	IsActive  *bool   `json:"is_active"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	CompanyType string    `json:"company_type"`
	TaxNumber   string    `json:"tax_number"`
	TaxOffice   string    `json:"tax_office"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyCreatedResponse empresa recién creada con lo que se generó junto a ella.
type CompanyCreatedResponse struct {
	CompanyResponse
	MainBranch   BranchResponse       `json:"main_branch"`
	Subscription SubscriptionResponse `json:"subscription"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateBranchRequest entrada para crear una sucursal.
type CreateBranchRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Email     string `json:"email" validate:"omitempty,email"`
	Address   string `json:"address"`
}

// UpdateBranchRequest entrada para actualizar una sucursal.
type UpdateBranchRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	IsMainBranch bool      `json:"is_main_branch"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DeletedBranchAudit cambios registrados al eliminar una sucursal: la sucursal y los empleados arrastrados.
type DeletedBranchAudit struct {
	Branch           BranchResponse `json:"branch"`
	RemovedEmployees []string       `json:"removed_employees"`
}

// BranchListResponse lista paginada de sucursales.
type BranchListResponse struct {
	Items []BranchResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CompanyStatisticsResponse resumen de la empresa: estructura, suscripción vigente y facturación.
type CompanyStatisticsResponse struct {
	General      GeneralStatistics      `json:"general"`
	Subscription SubscriptionStatistics `json:"subscription"`
	Financial    FinancialStatistics    `json:"financial"`
}

// GeneralStatistics conteos de sucursales y empleados.
type GeneralStatistics struct {
	TotalBranches   int `json:"total_branches"`
	TotalEmployees  int `json:"total_employees"`
	ActiveEmployees int `json:"active_employees"`
}

// SubscriptionStatistics plan vigente (nil sin suscripción vigente) y consumo.
type SubscriptionStatistics struct {
	CurrentPlan   *PlanResponse `json:"current_plan"`
	RemainingDays int           `json:"remaining_days"`
	UsageStats    UsageStats    `json:"usage_stats"`
}

// UsageStats almacenamiento en bytes y llamadas a la API del día.
type UsageStats struct {
	StorageUsed   int64 `json:"storage_used"`
	APICallsToday int64 `json:"api_calls_today"`
}

// FinancialStatistics conteo de facturas.
type FinancialStatistics struct {
	TotalInvoices   int `json:"total_invoices"`
	PendingInvoices int `json:"pending_invoices"`
}
