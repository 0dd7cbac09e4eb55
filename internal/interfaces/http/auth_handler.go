package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Saas-api/internal/application/auth"
	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/infrastructure/metrics"
)

// AuthHandler maneja login, renovación y cierre de sesión.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	metrics *metrics.Metrics
}

// NewAuthHandler construye el handler de auth. m puede ser nil.
func NewAuthHandler(uc *auth.AuthUseCase, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{uc: uc, metrics: m}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Valida credenciales, aplica las compuertas de mantenimiento y suscripción y emite el par de tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.MaintenanceErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	h.recordLogin(err)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Renovar tokens
// @Description  Consume el refresh token (un solo uso), reaplica las compuertas y emite un par nuevo.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  true  "refresh_token"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.MaintenanceErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Refresh(c.UserContext(), in.RefreshToken)
	if err != nil {
		return err
	}
	if h.metrics != nil {
		h.metrics.TokensRefreshed.Inc()
		h.metrics.TokensRevoked.WithLabelValues("rotated").Inc()
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Revoca el refresh token. Repetir la llamada con el mismo token no es un error.
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.RefreshRequest  true  "refresh_token"
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if err := h.uc.Logout(c.UserContext(), in.RefreshToken, requestMeta(c)); err != nil {
		return err
	}
	if h.metrics != nil {
		h.metrics.TokensRevoked.WithLabelValues("logout").Inc()
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) recordLogin(err error) {
	if h.metrics == nil {
		return
	}
	if err != nil {
		h.metrics.RecordLogin(ErrorCode(err))
		return
	}
	h.metrics.RecordLogin("success")
}
