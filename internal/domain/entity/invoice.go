package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Invoice.
const (
	InvoiceDraft    = "draft"
	InvoicePending  = "pending"
	InvoicePaid     = "paid"
	InvoiceCanceled = "canceled"
	InvoiceRefunded = "refunded"
)

// Invoice factura de una suscripción. La empresa se alcanza vía subscription.company_id.
type Invoice struct {
	ID             string
	SubscriptionID string
	CompanyID      string // derivado de la suscripción al leer
	Number         string
	Amount         decimal.Decimal
	Currency       string
	Status         string
	DueDate        time.Time
	PaidAt         *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
