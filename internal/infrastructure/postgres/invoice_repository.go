package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo lectura de facturas de suscripción. La empresa sale de subscriptions.company_id.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceSelect = `
	SELECT i.id, i.subscription_id, s.company_id, i.number, i.amount, i.currency, i.status,
		i.due_date, i.paid_at, COALESCE(i.notes, ''), i.created_at, i.updated_at
	FROM invoices i
	JOIN subscriptions s ON s.id = i.subscription_id`

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, invoiceSelect+` WHERE i.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// List devuelve las facturas visibles, por vencimiento descendente.
func (r *InvoiceRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.Invoice, error) {
	where, args, pos, err := scopedWhere(entity.EntityInvoice, q, nil)
	if err != nil {
		return nil, err
	}
	page, args := paginate(q, args, pos)
	rows, err := r.q.Query(ctx, invoiceSelect+where+` ORDER BY i.due_date DESC, i.id`+page, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.SubscriptionID, &inv.CompanyID, &inv.Number, &inv.Amount, &inv.Currency, &inv.Status,
		&inv.DueDate, &inv.PaidAt, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
