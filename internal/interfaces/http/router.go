package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/Saas-api/internal/application/auth"
	"github.com/jhoicas/Saas-api/internal/application/usecase"
	"github.com/jhoicas/Saas-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	SystemUC       *usecase.SystemUseCase
	CompanyUC      *usecase.CompanyUseCase
	StatisticsUC   *usecase.StatisticsUseCase
	BranchUC       *usecase.BranchUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	SubscriptionUC *usecase.SubscriptionUseCase
	MaintenanceUC  *usecase.MaintenanceUseCase
	NotificationUC *usecase.NotificationUseCase
	AnnouncementUC *usecase.AnnouncementUseCase
	AuditLogUC     *usecase.AuditLogUseCase
	Tokens         AccessTokenParser
	Principals     PrincipalSource
	Metrics        *metrics.Metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Metrics)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)

	// Estado del sistema: token opcional
	systemHandler := NewSystemHandler(deps.SystemUC, deps.MaintenanceUC)
	api.Get("/system/maintenance", OptionalAuth(deps.Tokens, deps.Principals), systemHandler.MaintenanceStatus)

	// Rutas protegidas (Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.Tokens, deps.Principals))

	// Operación del sistema: no pasa por las compuertas para poder cerrar una ventana en curso.
	maintenance := protected.Group("/maintenance")
	maintenance.Get("/", systemHandler.ListWindows)
	maintenance.Post("/:id/start", systemHandler.StartWindow)
	maintenance.Post("/:id/end", systemHandler.EndWindow)

	// Rutas del tenant: mantenimiento y suscripción se reevalúan en cada petición.
	tenant := protected.Group("",
		RequireMaintenanceAccess(deps.SystemUC, deps.Metrics),
		RequireSubscription(deps.SystemUC, deps.Metrics),
	)

	companies := tenant.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.StatisticsUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Get("/:id/audit-logs", companyHandler.AuditLogs)
	companies.Get("/:id/statistics", companyHandler.Statistics)

	branches := tenant.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Post("/", branchHandler.Create)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", branchHandler.Delete)

	employees := tenant.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)

	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subscriptions := tenant.Group("/subscriptions")
	subscriptions.Get("/", subscriptionHandler.List)
	subscriptions.Get("/:id", subscriptionHandler.GetByID)
	subscriptions.Post("/:id/cancel", subscriptionHandler.Cancel)
	subscriptions.Post("/:id/extend", subscriptionHandler.Extend)

	invoices := tenant.Group("/invoices")
	invoices.Get("/", subscriptionHandler.ListInvoices)
	invoices.Get("/:id", subscriptionHandler.GetInvoice)

	auditHandler := NewAuditHandler(deps.NotificationUC, deps.AuditLogUC)
	tenant.Get("/notifications", auditHandler.ListNotifications)

	announcementHandler := NewAnnouncementHandler(deps.AnnouncementUC)
	tenant.Get("/announcements", announcementHandler.List)

	auditLogs := tenant.Group("/audit-logs")
	auditLogs.Get("/", auditHandler.ListAuditLogs)
	auditLogs.Get("/:id", auditHandler.GetAuditLog)
	auditLogs.Post("/", auditHandler.RejectAuditMutation)
	auditLogs.Put("/:id", auditHandler.RejectAuditMutation)
	auditLogs.Patch("/:id", auditHandler.RejectAuditMutation)
	auditLogs.Delete("/:id", auditHandler.RejectAuditMutation)
}
