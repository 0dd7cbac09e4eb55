package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Saas-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Saas-api/pkg/logger"
)

// RequestLogger registra cada petición con zerolog y alimenta las métricas HTTP.
// Va después de requestid y antes de las rutas.
func RequestLogger(log *logger.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if m != nil {
			m.RequestsInFlight.Inc()
			defer m.RequestsInFlight.Dec()
		}

		chainErr := c.Next()
		if chainErr != nil {
			// El ErrorHandler escribe la respuesta; se invoca aquí para registrar el status final.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		elapsed := time.Since(start)
		route := c.Route().Path
		if m != nil {
			m.RecordRequest(c.Method(), route, status, elapsed)
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Str("ip", c.IP()).
			Str("user_id", GetUserID(c)).
			Msg("petición HTTP")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
