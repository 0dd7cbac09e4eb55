package repository

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// AuditLogRepository es append-only: no expone Update ni Delete.
type AuditLogRepository interface {
	Insert(ctx context.Context, entry *entity.AuditLog) error
	GetByID(ctx context.Context, id string) (*entity.AuditLog, error)
	List(ctx context.Context, q ListQuery) ([]*entity.AuditLog, error)
}
