package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Subscription.
const (
	SubscriptionTrial    = "trial"
	SubscriptionActive   = "active"
	SubscriptionPastDue  = "past_due"
	SubscriptionCanceled = "canceled"
	SubscriptionExpired  = "expired"
)

// TrialDays duración de la suscripción de prueba asignada al crear una empresa.
const TrialDays = 30

// Plan representa un plan de suscripción.
type Plan struct {
	ID         string
	Name       string
	Slug       string
	Price      decimal.Decimal
	Currency   string // ISO 4217
	MaxUsers   int
	MaxStorage int            // MB
	Features   map[string]any // JSONB
	IsTrial    bool
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Subscription vincula una Company con un Plan durante una ventana [StartDate, EndDate].
type Subscription struct {
	ID         string
	CompanyID  string
	PlanID     string
	Status     string // ver constantes Subscription*
	StartDate  time.Time
	EndDate    time.Time
	IsTrial    bool
	TrialEnds  *time.Time
	CanceledAt *time.Time
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Plan *Plan // cargado bajo demanda
}

// RemainingDays días completos hasta EndDate (negativo si ya venció).
func (s *Subscription) RemainingDays(now time.Time) int {
	return int(s.EndDate.Sub(now).Hours() / 24)
}
