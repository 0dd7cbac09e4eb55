package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/application/usecase"
)

// SubscriptionHandler suscripciones y sus facturas.
type SubscriptionHandler struct {
	uc *usecase.SubscriptionUseCase
}

// NewSubscriptionHandler construye el handler.
func NewSubscriptionHandler(uc *usecase.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// List godoc
// @Summary      Listar suscripciones
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {object}  dto.SubscriptionListResponse
// @Router       /api/subscriptions [get]
func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), GetPrincipal(c), c.Query("company_id"), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID obtiene una suscripción.
func (h *SubscriptionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar suscripción
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la suscripción"
// @Success      200  {object}  dto.SubscriptionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.UserContext(), GetPrincipal(c), c.Params("id"), requestMeta(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Extend godoc
// @Summary      Extender suscripción
// @Description  Suma 30 días por mes a la fecha de fin. Solo superusuarios y staff.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                         true  "ID de la suscripción"
// @Param        body  body  dto.ExtendSubscriptionRequest  true  "Meses"
// @Success      200   {object}  dto.SubscriptionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/subscriptions/{id}/extend [post]
func (h *SubscriptionHandler) Extend(c *fiber.Ctx) error {
	var in dto.ExtendSubscriptionRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Extend(c.UserContext(), GetPrincipal(c), c.Params("id"), in, requestMeta(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListInvoices godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *SubscriptionHandler) ListInvoices(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListInvoices(c.UserContext(), GetPrincipal(c), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetInvoice obtiene una factura.
func (h *SubscriptionHandler) GetInvoice(c *fiber.Ctx) error {
	out, err := h.uc.GetInvoice(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
