package auth_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

// world estado en memoria compartido por los repositorios falsos.
type world struct {
	users         map[string]*entity.User
	employees     map[string]*entity.Employee
	branches      map[string]*entity.Branch
	companies     map[string]*entity.Company
	plans         map[string]*entity.Plan
	subscriptions []*entity.Subscription
	windows       []*entity.MaintenanceMode
	branding      map[string]*entity.CompanyBranding
	audit         []*entity.AuditLog
}

func newWorld() *world {
	return &world{
		users:     map[string]*entity.User{},
		employees: map[string]*entity.Employee{},
		branches:  map[string]*entity.Branch{},
		companies: map[string]*entity.Company{},
		plans:     map[string]*entity.Plan{},
		branding:  map[string]*entity.CompanyBranding{},
	}
}

type userRepo struct{ w *world }

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) { return r.w.users[id], nil }
func (r userRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.w.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

type employeeRepo struct{ w *world }

func (r employeeRepo) Create(context.Context, *entity.Employee) error { return nil }
func (r employeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return r.w.employees[id], nil
}
func (r employeeRepo) GetByUserID(_ context.Context, userID string) (*entity.Employee, error) {
	for _, e := range r.w.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}
func (r employeeRepo) Update(context.Context, *entity.Employee) error { return nil }
func (r employeeRepo) List(context.Context, repository.ListQuery) ([]*entity.Employee, error) {
	return nil, nil
}
func (r employeeRepo) ListByBranch(context.Context, string) ([]*entity.Employee, error) {
	return nil, nil
}

type branchRepo struct{ w *world }

func (r branchRepo) Create(context.Context, *entity.Branch) error { return nil }
func (r branchRepo) GetByID(_ context.Context, id string) (*entity.Branch, error) {
	return r.w.branches[id], nil
}
func (r branchRepo) SlugExists(context.Context, string, string) (bool, error) { return false, nil }
func (r branchRepo) Update(context.Context, *entity.Branch) error             { return nil }
func (r branchRepo) Delete(context.Context, string) error                     { return nil }
func (r branchRepo) List(context.Context, repository.ListQuery) ([]*entity.Branch, error) {
	return nil, nil
}

type companyRepo struct{ w *world }

func (r companyRepo) Create(context.Context, *entity.Company) error { return nil }
func (r companyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.w.companies[id], nil
}
func (r companyRepo) SlugExists(context.Context, string) (bool, error) { return false, nil }
func (r companyRepo) Update(context.Context, *entity.Company) error    { return nil }
func (r companyRepo) List(context.Context, repository.ListQuery) ([]*entity.Company, error) {
	return nil, nil
}

type planRepo struct{ w *world }

func (r planRepo) GetByID(_ context.Context, id string) (*entity.Plan, error) { return r.w.plans[id], nil }
func (r planRepo) GetTrialPlan(context.Context) (*entity.Plan, error)         { return nil, nil }

type brandingRepo struct{ w *world }

func (r brandingRepo) GetByCompanyID(_ context.Context, companyID string) (*entity.CompanyBranding, error) {
	return r.w.branding[companyID], nil
}

type subscriptionRepo struct{ w *world }

func (r subscriptionRepo) Create(context.Context, *entity.Subscription) error { return nil }
func (r subscriptionRepo) GetByID(context.Context, string) (*entity.Subscription, error) {
	return nil, nil
}
func (r subscriptionRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, s := range r.w.subscriptions {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r subscriptionRepo) Update(context.Context, *entity.Subscription) error { return nil }
func (r subscriptionRepo) List(context.Context, repository.ListQuery) ([]*entity.Subscription, error) {
	return nil, nil
}

type maintenanceRepo struct{ w *world }

func (r maintenanceRepo) GetByID(context.Context, string) (*entity.MaintenanceMode, error) {
	return nil, nil
}
func (r maintenanceRepo) ListInProgress(context.Context) ([]*entity.MaintenanceMode, error) {
	return r.w.windows, nil
}
func (r maintenanceRepo) List(context.Context, int, int) ([]*entity.MaintenanceMode, error) {
	return r.w.windows, nil
}
func (r maintenanceRepo) Update(context.Context, *entity.MaintenanceMode) error { return nil }

type auditRepo struct{ w *world }

func (r auditRepo) Insert(_ context.Context, e *entity.AuditLog) error {
	r.w.audit = append(r.w.audit, e)
	return nil
}
func (r auditRepo) GetByID(context.Context, string) (*entity.AuditLog, error) { return nil, nil }
func (r auditRepo) List(context.Context, repository.ListQuery) ([]*entity.AuditLog, error) {
	return r.w.audit, nil
}

// txRunner ejecuta fn sin transacción real.
type txRunner struct{ w *world }

func (t txRunner) Run(_ context.Context, fn func(repos repository.TxRepos) error) error {
	return fn(repository.TxRepos{AuditLogs: auditRepo{t.w}})
}

// revoker lista de revocación en memoria.
type revoker struct {
	mu  sync.Mutex
	ids map[string]time.Time
}

func (r *revoker) Revoke(_ context.Context, jti string, until time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ids == nil {
		r.ids = map[string]time.Time{}
	}
	if _, ok := r.ids[jti]; ok {
		return false, nil
	}
	r.ids[jti] = until
	return true, nil
}
