package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Saas-api/internal/application/usecase"
	"github.com/jhoicas/Saas-api/internal/domain/access"
)

// AuditHandler notificaciones y registros de auditoría (solo lectura).
type AuditHandler struct {
	notifications *usecase.NotificationUseCase
	auditLogs     *usecase.AuditLogUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(notifications *usecase.NotificationUseCase, auditLogs *usecase.AuditLogUseCase) *AuditHandler {
	return &AuditHandler{notifications: notifications, auditLogs: auditLogs}
}

// ListNotifications godoc
// @Summary      Listar notificaciones
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.NotificationListResponse
// @Router       /api/notifications [get]
func (h *AuditHandler) ListNotifications(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.notifications.List(c.UserContext(), GetPrincipal(c), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListAuditLogs godoc
// @Summary      Listar auditoría
// @Tags         audit-logs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AuditLogListResponse
// @Router       /api/audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.auditLogs.List(c.UserContext(), GetPrincipal(c), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetAuditLog obtiene un registro de auditoría.
func (h *AuditHandler) GetAuditLog(c *fiber.Ctx) error {
	out, err := h.auditLogs.Get(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RejectAuditMutation responde 405 a POST/PUT/PATCH/DELETE sobre audit-logs.
func (h *AuditHandler) RejectAuditMutation(c *fiber.Ctx) error {
	op := access.OpUpdate
	switch c.Method() {
	case fiber.MethodPost:
		op = access.OpCreate
	case fiber.MethodDelete:
		op = access.OpDelete
	}
	return h.auditLogs.Mutate(GetPrincipal(c), op)
}
