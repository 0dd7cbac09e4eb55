package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Saas-api/pkg/logger"
)

// apiError error con respuesta HTTP explícita (cuerpo inválido, validación, token).
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string { return e.Code + ": " + e.Message }

func badRequest(code, message string) error {
	return &apiError{Status: fiber.StatusBadRequest, Code: code, Message: message}
}

func unauthorized(code, message string) error {
	return &apiError{Status: fiber.StatusUnauthorized, Code: code, Message: message}
}

// errorMapping traducción de un sentinel de dominio a status y código.
type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// El orden importa: MaintenanceBlockedError se resuelve antes vía errors.As.
var errorMappings = []errorMapping{
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "usuario o contraseña inválidos"},
	{domain.ErrTokenRevoked, fiber.StatusUnauthorized, "TOKEN_REVOKED", "el token ya fue utilizado o cerrado"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado"},
	{domain.ErrAccountDisabled, fiber.StatusForbidden, "ACCOUNT_DISABLED", "la cuenta no está activa"},
	{domain.ErrNoEmployeeRecord, fiber.StatusForbidden, "NO_EMPLOYEE_RECORD", "no existe registro de empleado para el usuario"},
	{domain.ErrSubscriptionExpired, fiber.StatusForbidden, "SUBSCRIPTION_EXPIRED", "la suscripción de la empresa no está vigente"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado"},
	{domain.ErrMaintenanceBlocked, fiber.StatusServiceUnavailable, "MAINTENANCE", "el sistema está en mantenimiento"},
	{domain.ErrAuditImmutable, fiber.StatusMethodNotAllowed, "AUDIT_IMMUTABLE", "los registros de auditoría no se pueden modificar"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", "el recurso ya existe"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT", "conflicto con el estado actual"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", ""},
	{domain.ErrTrialPlanMissing, fiber.StatusInternalServerError, "TRIAL_PLAN_MISSING", "no existe un plan de prueba activo"},
	{domain.ErrPersistence, fiber.StatusInternalServerError, "PERSISTENCE", "no se pudo guardar la operación"},
}

// ErrorCode devuelve el código de respuesta de err ("INTERNAL" si no es un error de dominio).
func ErrorCode(err error) string {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.code
		}
	}
	return "INTERNAL"
}

// NewErrorHandler centraliza la traducción de errores a respuestas. Los handlers devuelven
// el error del caso de uso sin tocarlo.
func NewErrorHandler(log *logger.Logger, m *metrics.Metrics) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := errorResponse(err)
		if status >= fiber.StatusInternalServerError && status != fiber.StatusServiceUnavailable {
			log.Error().Err(err).
				Str("request_id", requestID(c)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error procesando petición")
		}
		if m != nil {
			m.RecordAPIError(ErrorCode(err), status)
		}
		return c.Status(status).JSON(body)
	}
}

func errorResponse(err error) (int, any) {
	var blocked *domain.MaintenanceBlockedError
	if errors.As(err, &blocked) {
		return fiber.StatusServiceUnavailable, dto.MaintenanceErrorResponse{
			Code:           "MAINTENANCE",
			Message:        "el sistema está en mantenimiento",
			Title:          blocked.Title,
			PlannedEndTime: blocked.PlannedEndTime,
		}
	}
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.Status, dto.ErrorResponse{Code: apiErr.Code, Message: apiErr.Message}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, dto.ErrorResponse{Code: fiberCode(fe.Code), Message: fe.Message}
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			return m.status, dto.ErrorResponse{Code: m.code, Message: msg}
		}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	}
	return "HTTP_ERROR"
}
