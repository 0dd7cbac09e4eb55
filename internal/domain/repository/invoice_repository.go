package repository

import (
	"context"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// InvoiceRepository lectura de facturas de suscripción.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context, q ListQuery) ([]*entity.Invoice, error)
}
