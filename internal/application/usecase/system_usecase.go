package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/access"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
	"github.com/jhoicas/Saas-api/pkg/clock"
)

// SystemInfo versión y entorno que se informan al cliente.
type SystemInfo struct {
	Version     string
	Environment string
}

// SystemUseCase aplica las compuertas de mantenimiento y suscripción sobre el estado persistido.
// Es el único punto de la aplicación que consulta ventanas y suscripciones para decidir acceso.
type SystemUseCase struct {
	maintenance   repository.MaintenanceRepository
	subscriptions repository.SubscriptionRepository
	clock         clock.Clock
	info          SystemInfo
}

// NewSystemUseCase construye el caso de uso. maintenance puede venir envuelto en una caché.
func NewSystemUseCase(maintenance repository.MaintenanceRepository, subscriptions repository.SubscriptionRepository, clk clock.Clock, info SystemInfo) *SystemUseCase {
	return &SystemUseCase{maintenance: maintenance, subscriptions: subscriptions, clock: clk, info: info}
}

// ActiveWindow devuelve la ventana de mantenimiento activa ahora, o nil.
func (s *SystemUseCase) ActiveWindow(ctx context.Context) (*entity.MaintenanceMode, error) {
	candidates, err := s.maintenance.ListInProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar mantenimientos en curso: %w", err)
	}
	return access.CurrentMaintenance(candidates, s.clock.Now()), nil
}

// CurrentSubscription devuelve la suscripción vigente de la empresa, o nil.
func (s *SystemUseCase) CurrentSubscription(ctx context.Context, companyID string) (*entity.Subscription, error) {
	subs, err := s.subscriptions.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar suscripciones: %w", err)
	}
	return access.CurrentSubscription(subs, s.clock.Now()), nil
}

// MaintenanceStatus estado del mantenimiento para principal (nil si la petición no trae token).
func (s *SystemUseCase) MaintenanceStatus(ctx context.Context, principal *entity.Principal) (dto.MaintenanceStatusResponse, error) {
	window, err := s.ActiveWindow(ctx)
	if err != nil {
		return dto.MaintenanceStatusResponse{}, err
	}
	return dto.MaintenanceStatus(window, access.CanAccess(window, principal)), nil
}

// Snapshot estado del sistema incluido en la respuesta de login.
func (s *SystemUseCase) Snapshot(window *entity.MaintenanceMode, principal *entity.Principal) dto.SystemStatusDTO {
	return dto.SystemStatusDTO{
		MaintenanceMode: dto.MaintenanceStatus(window, access.CanAccess(window, principal)),
		ServerTime:      s.clock.Now(),
		Version:         s.info.Version,
		Environment:     s.info.Environment,
	}
}

// CheckMaintenance devuelve *domain.MaintenanceBlockedError si la ventana activa no admite al principal.
func (s *SystemUseCase) CheckMaintenance(ctx context.Context, principal *entity.Principal) error {
	window, err := s.ActiveWindow(ctx)
	if err != nil {
		return err
	}
	if access.CanAccess(window, principal) {
		return nil
	}
	return &domain.MaintenanceBlockedError{Title: window.Title, PlannedEndTime: window.PlannedEndTime}
}

// CheckEntitlement devuelve domain.ErrNoEmployeeRecord o domain.ErrSubscriptionExpired si el principal
// no tiene derecho de acceso. Superusuarios y staff siempre lo tienen.
func (s *SystemUseCase) CheckEntitlement(ctx context.Context, principal *entity.Principal) error {
	if principal.IsPrivileged() {
		return nil
	}
	companyID := principal.CompanyID()
	if companyID == "" {
		return domain.ErrNoEmployeeRecord
	}
	subs, err := s.subscriptions.ListByCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("listar suscripciones: %w", err)
	}
	if !access.IsEntitled(principal, subs, s.clock.Now()) {
		return domain.ErrSubscriptionExpired
	}
	return nil
}
