package repository

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, q ListQuery) ([]*entity.Notification, error)
}
