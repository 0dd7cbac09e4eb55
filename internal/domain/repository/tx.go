package repository

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Companies     CompanyRepository
	Branches      BranchRepository
	Employees     EmployeeRepository
	Subscriptions SubscriptionRepository
	Notifications NotificationRepository
	Maintenance   MaintenanceRepository
	AuditLogs     AuditLogRepository
}
