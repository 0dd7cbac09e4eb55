package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Saas-api/internal/application/usecase"
)

// AnnouncementHandler comunicados del sistema.
type AnnouncementHandler struct {
	uc *usecase.AnnouncementUseCase
}

// NewAnnouncementHandler construye el handler.
func NewAnnouncementHandler(uc *usecase.AnnouncementUseCase) *AnnouncementHandler {
	return &AnnouncementHandler{uc: uc}
}

// List godoc
// @Summary      Listar comunicados
// @Description  Solo los comunicados publicados dirigidos a la empresa y al rol del principal.
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.AnnouncementListResponse
// @Router       /api/announcements [get]
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), GetPrincipal(c), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
