package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Saas-api/internal/application/usecase"
)

// SystemHandler estado del sistema y ventanas de mantenimiento.
type SystemHandler struct {
	system      *usecase.SystemUseCase
	maintenance *usecase.MaintenanceUseCase
}

// NewSystemHandler construye el handler.
func NewSystemHandler(system *usecase.SystemUseCase, maintenance *usecase.MaintenanceUseCase) *SystemHandler {
	return &SystemHandler{system: system, maintenance: maintenance}
}

// MaintenanceStatus godoc
// @Summary      Estado de mantenimiento
// @Description  Token opcional: sin token has_access refleja a un visitante anónimo.
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.MaintenanceStatusResponse
// @Router       /api/system/maintenance [get]
func (h *SystemHandler) MaintenanceStatus(c *fiber.Ctx) error {
	out, err := h.system.MaintenanceStatus(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListWindows godoc
// @Summary      Listar ventanas de mantenimiento
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.MaintenanceListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/maintenance [get]
func (h *SystemHandler) ListWindows(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.maintenance.List(c.UserContext(), GetPrincipal(c), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// StartWindow godoc
// @Summary      Iniciar mantenimiento
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la ventana"
// @Success      200  {object}  dto.MaintenanceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id}/start [post]
func (h *SystemHandler) StartWindow(c *fiber.Ctx) error {
	out, err := h.maintenance.Start(c.UserContext(), GetPrincipal(c), c.Params("id"), requestMeta(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// EndWindow godoc
// @Summary      Finalizar mantenimiento
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la ventana"
// @Success      200  {object}  dto.MaintenanceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id}/end [post]
func (h *SystemHandler) EndWindow(c *fiber.Ctx) error {
	out, err := h.maintenance.End(c.UserContext(), GetPrincipal(c), c.Params("id"), requestMeta(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
