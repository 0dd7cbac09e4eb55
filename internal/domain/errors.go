package domain

import (
	"errors"
	"time"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrPersistence  = errors.New("fallo de persistencia")
	ErrTokenRevoked = errors.New("token revocado")

	// Resultado del flujo de autenticación.
	ErrInvalidCredentials  = errors.New("usuario o contraseña inválidos")
	ErrAccountDisabled     = errors.New("la cuenta no está activa")
	ErrMaintenanceBlocked  = errors.New("el sistema está en mantenimiento")
	ErrNoEmployeeRecord    = errors.New("no existe registro de empleado para el usuario")
	ErrSubscriptionExpired = errors.New("la suscripción de la empresa no está vigente")

	ErrAuditImmutable   = errors.New("los registros de auditoría no se pueden modificar")
	ErrTrialPlanMissing = errors.New("no existe un plan de prueba activo")
)

// MaintenanceBlockedError lleva la hora estimada de fin de la ventana para mostrarla al cliente.
// errors.Is(err, ErrMaintenanceBlocked) es true.
type MaintenanceBlockedError struct {
	Title          string
	PlannedEndTime time.Time
}

func (e *MaintenanceBlockedError) Error() string {
	return ErrMaintenanceBlocked.Error() + ", fin estimado: " + e.PlannedEndTime.Format(time.RFC3339)
}

func (e *MaintenanceBlockedError) Unwrap() error { return ErrMaintenanceBlocked }
