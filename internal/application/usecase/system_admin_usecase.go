package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/jhoicas/Saas-api/internal/application/audit"
	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/access"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
	"github.com/jhoicas/Saas-api/pkg/clock"
)

// MaintenanceUseCase administra las ventanas de mantenimiento y avisa a todos los usuarios.
type MaintenanceUseCase struct {
	windows repository.MaintenanceRepository
	access  *AccessService
	audit   *audit.Recorder
	clock   clock.Clock
}

// NewMaintenanceUseCase construye el caso de uso. Si windows expone Invalidate() se llama
// tras cada cambio de estado confirmado.
func NewMaintenanceUseCase(windows repository.MaintenanceRepository, accessSvc *AccessService, recorder *audit.Recorder, clk clock.Clock) *MaintenanceUseCase {
	return &MaintenanceUseCase{windows: windows, access: accessSvc, audit: recorder, clock: clk}
}

// List lista las ventanas (entidad global, legible por cualquier principal autenticado).
func (uc *MaintenanceUseCase) List(ctx context.Context, p *entity.Principal, page dto.PageRequest) (*dto.MaintenanceListResponse, error) {
	q := uc.access.ListQuery(p, entity.EntityMaintenance, page)
	if q.Scope.Kind == access.ScopeNone {
		return nil, domain.ErrForbidden
	}
	list, err := uc.windows.List(ctx, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.MaintenanceListResponse{
		Items: lo.Map(list, func(m *entity.MaintenanceMode, _ int) dto.MaintenanceResponse { return dto.MaintenanceFromEntity(m) }),
		Page:  pageOf(q),
	}, nil
}

// Start pasa una ventana programada a en curso y publica una notificación global.
func (uc *MaintenanceUseCase) Start(ctx context.Context, p *entity.Principal, id string, meta audit.Meta) (*dto.MaintenanceResponse, error) {
	return uc.transition(ctx, p, id, meta, entity.MaintenanceScheduled, func(m *entity.MaintenanceMode) *entity.Notification {
		now := uc.clock.Now()
		m.Status = entity.MaintenanceInProgress
		m.ActualStartTime = &now
		m.ActualEndTime = nil
		return maintenanceNotice(m, "Mantenimiento iniciado: "+m.Title, m.Description, now)
	})
}

// End cierra una ventana en curso y publica una notificación global.
func (uc *MaintenanceUseCase) End(ctx context.Context, p *entity.Principal, id string, meta audit.Meta) (*dto.MaintenanceResponse, error) {
	return uc.transition(ctx, p, id, meta, entity.MaintenanceInProgress, func(m *entity.MaintenanceMode) *entity.Notification {
		now := uc.clock.Now()
		m.Status = entity.MaintenanceCompleted
		m.ActualEndTime = &now
		return maintenanceNotice(m, "Mantenimiento finalizado: "+m.Title, fmt.Sprintf("El mantenimiento %q finalizó correctamente.", m.Title), now)
	})
}

// transition aplica apply si la ventana está en el estado from; si no, domain.ErrConflict.
func (uc *MaintenanceUseCase) transition(ctx context.Context, p *entity.Principal, id string, meta audit.Meta, from string, apply func(*entity.MaintenanceMode) *entity.Notification) (*dto.MaintenanceResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntityMaintenance, id, access.OpUpdate); err != nil {
		return nil, err
	}
	var out dto.MaintenanceResponse
	err := uc.audit.RunAudited(ctx, func(repos repository.TxRepos) (*audit.Entry, error) {
		m, err := repos.Maintenance.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		if m.Status != from {
			return nil, fmt.Errorf("%w: la ventana está en estado %s", domain.ErrConflict, m.Status)
		}
		note := apply(m)
		m.UpdatedAt = note.CreatedAt
		if err := repos.Maintenance.Update(ctx, m); err != nil {
			return nil, err
		}
		if uid := p.UserID(); uid != "" {
			note.CreatedBy = &uid
		}
		if err := repos.Notifications.Create(ctx, note); err != nil {
			return nil, err
		}
		out = dto.MaintenanceFromEntity(m)
		return &audit.Entry{
			Principal: p,
			Action:    entity.AuditUpdate,
			Target:    audit.Target{Type: entity.EntityMaintenance, ID: m.ID, Repr: m.Title},
			Payload:   map[string]any{"status": m.Status, "actual_start_time": m.ActualStartTime, "actual_end_time": m.ActualEndTime},
			Meta:      meta,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	if inv, ok := uc.windows.(interface{ Invalidate() }); ok {
		inv.Invalidate()
	}
	return &out, nil
}

func maintenanceNotice(m *entity.MaintenanceMode, title, message string, now time.Time) *entity.Notification {
	return &entity.Notification{
		ID:             uuid.New().String(),
		Title:          title,
		Message:        message,
		Type:           entity.NotificationSystem,
		Scope:          entity.NotificationScopeAll,
		ReferenceModel: "MaintenanceMode",
		ReferenceID:    m.ID,
		IsActive:       true,
		CreatedAt:      now,
	}
}

// NotificationUseCase lectura de notificaciones: las de la empresa del principal más las globales.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
	access        *AccessService
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notifications repository.NotificationRepository, accessSvc *AccessService) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, access: accessSvc}
}

// List lista las notificaciones visibles.
func (uc *NotificationUseCase) List(ctx context.Context, p *entity.Principal, page dto.PageRequest) (*dto.NotificationListResponse, error) {
	q := uc.access.ListQuery(p, entity.EntityNotification, page)
	list, err := uc.notifications.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.NotificationListResponse{
		Items: lo.Map(list, func(n *entity.Notification, _ int) dto.NotificationResponse { return dto.NotificationFromEntity(n) }),
		Page:  pageOf(q),
	}, nil
}

// AuditLogUseCase lectura de auditoría. Los registros no se crean ni modifican por API.
type AuditLogUseCase struct {
	auditLogs repository.AuditLogRepository
	access    *AccessService
}

// NewAuditLogUseCase construye el caso de uso.
func NewAuditLogUseCase(auditLogs repository.AuditLogRepository, accessSvc *AccessService) *AuditLogUseCase {
	return &AuditLogUseCase{auditLogs: auditLogs, access: accessSvc}
}

// List lista la auditoría visible.
func (uc *AuditLogUseCase) List(ctx context.Context, p *entity.Principal, page dto.PageRequest) (*dto.AuditLogListResponse, error) {
	q := uc.access.ListQuery(p, entity.EntityAuditLog, page)
	list, err := uc.auditLogs.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.AuditLogListResponse{
		Items: lo.Map(list, func(a *entity.AuditLog, _ int) dto.AuditLogResponse { return dto.AuditLogFromEntity(a) }),
		Page:  pageOf(q),
	}, nil
}

// Get obtiene un registro por ID.
func (uc *AuditLogUseCase) Get(ctx context.Context, p *entity.Principal, id string) (*dto.AuditLogResponse, error) {
	if err := uc.access.Authorize(ctx, p, entity.EntityAuditLog, id, access.OpRead); err != nil {
		return nil, err
	}
	a, err := uc.auditLogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.AuditLogFromEntity(a)
	return &out, nil
}

// Mutate rechaza cualquier escritura sobre auditoría: siempre domain.ErrAuditImmutable
// (o domain.ErrForbidden si no hay principal).
func (uc *AuditLogUseCase) Mutate(p *entity.Principal, op access.Operation) error {
	return access.Decide(p, entity.EntityAuditLog, op, entity.Ownership{})
}
