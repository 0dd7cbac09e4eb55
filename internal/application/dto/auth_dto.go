package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest entrada para refresh y logout.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LoginResponse respuesta de login y refresh.
type LoginResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Auth    AuthTokens      `json:"auth"`
	User    LoginUser       `json:"user"`
	System  SystemStatusDTO `json:"system"`
}

// AuthTokens par de tokens emitido.
type AuthTokens struct {
	Type         string `json:"type"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// LoginUser identidad, permisos y, si existe, la afiliación del usuario.
type LoginUser struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	Personal    UserPersonal    `json:"personal"`
	Permissions UserPermissions `json:"permissions"`
	Employee    *LoginEmployee  `json:"employee,omitempty"`
	Branch      *BranchResponse `json:"branch,omitempty"`
	Company     *LoginCompany   `json:"company,omitempty"`
}

// UserPersonal datos personales del usuario.
type UserPersonal struct {
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	FullName   string     `json:"full_name"`
	DateJoined time.Time  `json:"date_joined"`
	LastLogin  *time.Time `json:"last_login"`
}

// UserPermissions banderas de privilegio.
type UserPermissions struct {
	IsActive    bool `json:"is_active"`
	IsStaff     bool `json:"is_staff"`
	IsSuperuser bool `json:"is_superuser"`
}

// LoginEmployee resumen del empleado; el documento va enmascarado.
type LoginEmployee struct {
	ID             string             `json:"id"`
	Role           CodeDisplay        `json:"role"`
	IdentityNumber string             `json:"identity_number"`
	Personal       EmployeePersonal   `json:"personal"`
	Employment     EmployeeEmployment `json:"employment"`
	Address        string             `json:"address"`
}

// EmployeePersonal datos personales del empleado.
type EmployeePersonal struct {
	BirthDate *time.Time `json:"birth_date"`
	Gender    string     `json:"gender"`
	Phone     string     `json:"phone"`
}

// EmployeeEmployment datos laborales; Tenure en días desde la contratación.
type EmployeeEmployment struct {
	HireDate        time.Time  `json:"hire_date"`
	TerminationDate *time.Time `json:"termination_date"`
	IsActive        bool       `json:"is_active"`
	Tenure          int        `json:"tenure"`
}

// LoginCompany empresa con su suscripción vigente y su marca.
type LoginCompany struct {
	CompanyResponse
	Subscription *LoginSubscription `json:"subscription,omitempty"`
	Branding     *BrandingResponse  `json:"branding,omitempty"`
}

// LoginSubscription suscripción vigente.
type LoginSubscription struct {
	ID            string            `json:"id"`
	Plan          PlanResponse      `json:"plan"`
	Status        CodeDisplay       `json:"status"`
	Dates         SubscriptionDates `json:"dates"`
	IsTrial       bool              `json:"is_trial"`
	RemainingDays int               `json:"remaining_days"`
}

// SubscriptionDates ventana de la suscripción.
type SubscriptionDates struct {
	Start     time.Time  `json:"start"`
	End       time.Time  `json:"end"`
	TrialEnds *time.Time `json:"trial_ends"`
}

// BrandingResponse marca de la empresa.
type BrandingResponse struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	LogoURL        string `json:"logo_url,omitempty"`
	FaviconURL     string `json:"favicon_url,omitempty"`
}

// SystemStatusDTO estado del sistema devuelto en login.
type SystemStatusDTO struct {
	MaintenanceMode MaintenanceStatusResponse `json:"maintenance_mode"`
	ServerTime      time.Time                 `json:"server_time"`
	Version         string                    `json:"version"`
	Environment     string                    `json:"environment"`
}
