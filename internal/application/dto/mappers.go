package dto

import (
	"time"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// CompanyFromEntity convierte una empresa en su salida HTTP.
func CompanyFromEntity(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		CompanyType: c.CompanyType,
		TaxNumber:   c.TaxNumber,
		TaxOffice:   c.TaxOffice,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// BranchFromEntity convierte una sucursal en su salida HTTP.
func BranchFromEntity(b *entity.Branch) BranchResponse {
	return BranchResponse{
		ID:           b.ID,
		CompanyID:    b.CompanyID,
		Name:         b.Name,
		Slug:         b.Slug,
		Phone:        b.Phone,
		Email:        b.Email,
		Address:      b.Address,
		IsMainBranch: b.IsMainBranch,
		IsActive:     b.IsActive,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// EmployeeFromEntity convierte un empleado en su salida HTTP con el documento enmascarado.
func EmployeeFromEntity(e *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		Username:        e.Username,
		FullName:        e.FullName,
		BranchID:        e.BranchID,
		Role:            RoleCodeDisplay(e.Role),
		IdentityNumber:  e.MaskedIdentity(),
		Phone:           e.Phone,
		HireDate:        e.HireDate,
		TerminationDate: e.TerminationDate,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// RoleCodeDisplay par código/etiqueta del rol.
func RoleCodeDisplay(r entity.Role) CodeDisplay {
	return CodeDisplay{Code: r.String(), Display: r.Display()}
}

// PlanFromEntity convierte un plan en su salida HTTP.
func PlanFromEntity(p *entity.Plan) PlanResponse {
	return PlanResponse{
		ID:         p.ID,
		Name:       p.Name,
		Features:   p.Features,
		Price:      p.Price,
		Currency:   p.Currency,
		MaxUsers:   p.MaxUsers,
		MaxStorage: p.MaxStorage,
	}
}

// SubscriptionFromEntity convierte una suscripción en su salida HTTP.
func SubscriptionFromEntity(s *entity.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:         s.ID,
		CompanyID:  s.CompanyID,
		PlanID:     s.PlanID,
		Status:     s.Status,
		StartDate:  s.StartDate,
		EndDate:    s.EndDate,
		IsTrial:    s.IsTrial,
		TrialEnds:  s.TrialEnds,
		CanceledAt: s.CanceledAt,
		IsActive:   s.IsActive,
	}
}

// SubscriptionStatusDisplay etiqueta legible del estado de una suscripción.
func SubscriptionStatusDisplay(status string) CodeDisplay {
	display := status
	switch status {
	case entity.SubscriptionTrial:
		display = "Prueba"
	case entity.SubscriptionActive:
		display = "Activa"
	case entity.SubscriptionPastDue:
		display = "Pago pendiente"
	case entity.SubscriptionCanceled:
		display = "Cancelada"
	case entity.SubscriptionExpired:
		display = "Vencida"
	}
	return CodeDisplay{Code: status, Display: display}
}

// InvoiceFromEntity convierte una factura en su salida HTTP.
func InvoiceFromEntity(i *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             i.ID,
		SubscriptionID: i.SubscriptionID,
		CompanyID:      i.CompanyID,
		Number:         i.Number,
		Amount:         i.Amount,
		Currency:       i.Currency,
		Status:         i.Status,
		DueDate:        i.DueDate,
		PaidAt:         i.PaidAt,
	}
}

// NotificationFromEntity convierte una notificación en su salida HTTP.
func NotificationFromEntity(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:             n.ID,
		Title:          n.Title,
		Message:        n.Message,
		Type:           n.Type,
		Scope:          n.Scope,
		CompanyID:      n.CompanyID,
		BranchID:       n.BranchID,
		ReferenceModel: n.ReferenceModel,
		ReferenceID:    n.ReferenceID,
		CreatedAt:      n.CreatedAt,
	}
}

// AnnouncementFromEntity convierte un comunicado en su salida HTTP.
func AnnouncementFromEntity(a *entity.Announcement) AnnouncementResponse {
	targets := a.TargetCompanies
	if targets == nil {
		targets = []string{}
	}
	return AnnouncementResponse{
		ID:              a.ID,
		Title:           a.Title,
		Content:         a.Content,
		Priority:        a.Priority,
		TargetRole:      a.TargetRole,
		TargetCompanies: targets,
		PublishDate:     a.PublishDate,
		EndDate:         a.EndDate,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
	}
}

// MaintenanceFromEntity convierte una ventana de mantenimiento en su salida HTTP.
func MaintenanceFromEntity(m *entity.MaintenanceMode) MaintenanceResponse {
	allowed := m.AllowedCompanies
	if allowed == nil {
		allowed = []string{}
	}
	return MaintenanceResponse{
		ID:               m.ID,
		Title:            m.Title,
		Description:      m.Description,
		Platform:         m.Platform,
		Status:           m.Status,
		PlannedStartTime: m.PlannedStartTime,
		PlannedEndTime:   m.PlannedEndTime,
		ActualStartTime:  m.ActualStartTime,
		ActualEndTime:    m.ActualEndTime,
		BlockAccess:      m.BlockAccess,
		AccessLevel:      string(m.AccessLevel),
		AllowedCompanies: allowed,
	}
}

// AuditLogFromEntity convierte un registro de auditoría en su salida HTTP.
func AuditLogFromEntity(a *entity.AuditLog) AuditLogResponse {
	changes := a.Changes
	if len(changes) == 0 {
		changes = []byte("{}")
	}
	return AuditLogResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		CompanyID:  a.CompanyID,
		Action:     a.Action,
		EntityType: string(a.EntityType),
		ObjectID:   a.ObjectID,
		ObjectRepr: a.ObjectRepr,
		Changes:    changes,
		IPAddress:  a.IPAddress,
		UserAgent:  a.UserAgent,
		CreatedAt:  a.CreatedAt,
	}
}

// MaintenanceStatus estado del mantenimiento visto por quien consulta.
func MaintenanceStatus(window *entity.MaintenanceMode, hasAccess bool) MaintenanceStatusResponse {
	if window == nil {
		return MaintenanceStatusResponse{HasAccess: hasAccess}
	}
	details := &MaintenanceDetails{
		Title:          window.Title,
		Description:    window.Description,
		PlannedEndTime: window.PlannedEndTime,
	}
	return MaintenanceStatusResponse{IsActive: true, Details: details, HasAccess: hasAccess}
}

// TenureDays días completos entre la contratación y now.
func TenureDays(hire, now time.Time) int {
	if now.Before(hire) {
		return 0
	}
	return int(now.Sub(hire).Hours() / 24)
}
