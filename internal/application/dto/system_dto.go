package dto

import (
	"encoding/json"
	"time"
)

// MaintenanceDetails datos de la ventana activa para mostrar al cliente.
type MaintenanceDetails struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PlannedEndTime time.Time `json:"planned_end_time"`
}

// MaintenanceStatusResponse estado del mantenimiento para el principal que consulta.
type MaintenanceStatusResponse struct {
	IsActive  bool                `json:"is_active"`
	Details   *MaintenanceDetails `json:"details"`
	HasAccess bool                `json:"has_access"`
}

// MaintenanceResponse salida de una ventana de mantenimiento.
type MaintenanceResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Platform         string     `json:"platform"`
	Status           string     `json:"status"`
	PlannedStartTime time.Time  `json:"planned_start_time"`
	PlannedEndTime   time.Time  `json:"planned_end_time"`
	ActualStartTime  *time.Time `json:"actual_start_time"`
	ActualEndTime    *time.Time `json:"actual_end_time"`
	BlockAccess      bool       `json:"block_access"`
	AccessLevel      string     `json:"access_level"`
	AllowedCompanies []string   `json:"allowed_companies"`
}

// MaintenanceListResponse lista paginada de ventanas.
type MaintenanceListResponse struct {
	Items []MaintenanceResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"notification_type"`
	Scope          string    `json:"scope"`
	CompanyID      *string   `json:"company_id"`
	BranchID       *string   `json:"branch_id"`
	ReferenceModel string    `json:"reference_model,omitempty"`
	ReferenceID    string    `json:"reference_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationListResponse lista paginada de notificaciones.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// AuditLogResponse salida de un registro de auditoría.
type AuditLogResponse struct {
	ID         string          `json:"id"`
	UserID     *string         `json:"user_id"`
	CompanyID  *string         `json:"company_id"`
	Action     string          `json:"action"`
	EntityType string          `json:"model_name"`
	ObjectID   string          `json:"object_id"`
	ObjectRepr string          `json:"object_repr"`
	Changes    json.RawMessage `json:"changes"`
	IPAddress  string          `json:"ip_address"`
	UserAgent  string          `json:"user_agent"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AuditLogListResponse lista paginada de auditoría.
type AuditLogListResponse struct {
	Items []AuditLogResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// AnnouncementResponse salida de un comunicado.
type AnnouncementResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Priority        string     `json:"priority"`
	TargetRole      string     `json:"target_role"`
	TargetCompanies []string   `json:"target_companies"`
	PublishDate     time.Time  `json:"publish_date"`
	EndDate         *time.Time `json:"end_date"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
}

// AnnouncementListResponse lista paginada de comunicados.
type AnnouncementListResponse struct {
	Items []AnnouncementResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
