package entity

import "time"

// Tipos de Notification.
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationSuccess = "success"
	NotificationError   = "error"
	NotificationSystem  = "system"
)

// Alcance de Notification.
const (
	NotificationScopeUser    = "user"
	NotificationScopeCompany = "company"
	NotificationScopeBranch  = "branch"
	NotificationScopeAll     = "all"
)

// Notification mensaje para usuarios. CompanyID y BranchID dependen del alcance.
type Notification struct {
	ID             string
	Title          string
	Message        string
	Type           string
	Scope          string
	CompanyID      *string
	BranchID       *string
	CreatedBy      *string
	ReferenceModel string
	ReferenceID    string
	IsActive       bool
	CreatedAt      time.Time
}
