package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/infrastructure/metrics"
)

// SystemGate compuertas puras sobre el estado del sistema. Lo implementa *usecase.SystemUseCase.
type SystemGate interface {
	CheckMaintenance(ctx context.Context, principal *entity.Principal) error
	CheckEntitlement(ctx context.Context, principal *entity.Principal) error
}

// RequireMaintenanceAccess rechaza con 503 si hay una ventana activa que no admite al principal.
// Debe usarse después de AuthMiddleware.
func RequireMaintenanceAccess(gate SystemGate, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := gate.CheckMaintenance(c.UserContext(), GetPrincipal(c)); err != nil {
			if m != nil {
				m.RecordGateRejection("maintenance")
			}
			return err
		}
		return c.Next()
	}
}

// RequireSubscription rechaza con 403 si la empresa del principal no tiene suscripción vigente.
// Los principales privilegiados pasan siempre.
func RequireSubscription(gate SystemGate, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := gate.CheckEntitlement(c.UserContext(), GetPrincipal(c)); err != nil {
			if m != nil {
				m.RecordGateRejection("subscription")
			}
			return err
		}
		return c.Next()
	}
}
