package entity

import "time"

// Tipos de empresa admitidos.
const (
	CompanyTypeSole        = "sahis"
	CompanyTypeGeneral     = "kolektif"
	CompanyTypeLimitedPart = "komandit"
	CompanyTypeLimited     = "limited"
	CompanyTypeJointStock  = "anonim"
	CompanyTypeCooperative = "kooperatif"
	CompanyTypeOther       = "other"
)

// MainBranchName es el nombre de la sucursal creada junto con la empresa.
const MainBranchName = "Sucursal Principal"

// Company representa el tenant raíz: es dueña de sucursales y, a través de ellas, de empleados,
// suscripciones, facturas y notificaciones.
type Company struct {
	ID          string
	Name        string
	Slug        string
	CompanyType string
	TaxNumber   string
	TaxOffice   string
	Phone       string
	Email       string
	Address     string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Branch pertenece a una única Company. Exactamente una por empresa tiene IsMainBranch.
type Branch struct {
	ID           string
	CompanyID    string
	Name         string
	Slug         string
	Phone        string
	Email        string
	Address      string
	IsMainBranch bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CompanyBranding personalización visual de la empresa.
type CompanyBranding struct {
	CompanyID      string
	PrimaryColor   string
	SecondaryColor string
	LogoURL        string
	FaviconURL     string
}

// CompanyStatistics agregados de una empresa. StorageUsed en bytes.
type CompanyStatistics struct {
	TotalBranches   int
	TotalEmployees  int
	ActiveEmployees int
	StorageUsed     int64
	APICallsToday   int64
	TotalInvoices   int
	PendingInvoices int
}
