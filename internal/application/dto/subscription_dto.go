package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanResponse salida de un plan.
type PlanResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Features   map[string]any  `json:"features"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency"`
	MaxUsers   int             `json:"max_users"`
	MaxStorage int             `json:"max_storage"`
}

// SubscriptionResponse salida de una suscripción.
type SubscriptionResponse struct {
	ID         string     `json:"id"`
	CompanyID  string     `json:"company_id"`
	PlanID     string     `json:"plan_id"`
	Status     string     `json:"status"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	IsTrial    bool       `json:"is_trial"`
	TrialEnds  *time.Time `json:"trial_ends"`
	CanceledAt *time.Time `json:"canceled_at"`
	IsActive   bool       `json:"is_active"`
}

// SubscriptionListResponse lista paginada de suscripciones.
type SubscriptionListResponse struct {
	Items []SubscriptionResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// ExtendSubscriptionRequest meses a sumar (cada mes son 30 días).
type ExtendSubscriptionRequest struct {
	Months int `json:"months" validate:"required,min=1,max=36"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID             string          `json:"id"`
	SubscriptionID string          `json:"subscription_id"`
	CompanyID      string          `json:"company_id"`
	Number         string          `json:"number"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	DueDate        time.Time       `json:"due_date"`
	PaidAt         *time.Time      `json:"paid_at"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
