package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

// store base de datos en memoria para los tests de casos de uso.
type store struct {
	users         map[string]*entity.User
	companies     map[string]*entity.Company
	branches      map[string]*entity.Branch
	employees     map[string]*entity.Employee
	subscriptions map[string]*entity.Subscription
	windows       map[string]*entity.MaintenanceMode
	notifications []*entity.Notification
	audit         []*entity.AuditLog
	announcements []*entity.Announcement
	usage         entity.CompanyStatistics // almacenamiento, API y facturas; el resto se cuenta
	trialPlan     *entity.Plan

	lastEmployeeQuery repository.ListQuery
	invalidated       int
}

func newStore() *store {
	return &store{
		users:         map[string]*entity.User{},
		companies:     map[string]*entity.Company{},
		branches:      map[string]*entity.Branch{},
		employees:     map[string]*entity.Employee{},
		subscriptions: map[string]*entity.Subscription{},
		windows:       map[string]*entity.MaintenanceMode{},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ownership misma cadena de claves foráneas que usa la capa postgres.
func (s *store) ownership(et entity.EntityType, id string) (entity.Ownership, bool) {
	switch et {
	case entity.EntityCompany:
		_, ok := s.companies[id]
		return entity.Ownership{CompanyID: id}, ok
	case entity.EntityBranch:
		b, ok := s.branches[id]
		if !ok {
			return entity.Ownership{}, false
		}
		return entity.Ownership{CompanyID: b.CompanyID, BranchID: b.ID}, true
	case entity.EntityEmployee:
		e, ok := s.employees[id]
		if !ok {
			return entity.Ownership{}, false
		}
		b := s.branches[e.BranchID]
		return entity.Ownership{CompanyID: b.CompanyID, BranchID: b.ID, EmployeeID: e.ID}, true
	case entity.EntitySubscription:
		sub, ok := s.subscriptions[id]
		if !ok {
			return entity.Ownership{}, false
		}
		return entity.Ownership{CompanyID: sub.CompanyID}, true
	case entity.EntityMaintenance:
		_, ok := s.windows[id]
		return entity.Ownership{}, ok
	}
	return entity.Ownership{}, false
}

type owners struct{ s *store }

func (o owners) Resolve(_ context.Context, et entity.EntityType, id string) (entity.Ownership, error) {
	own, ok := o.s.ownership(et, id)
	if !ok {
		return entity.Ownership{}, domain.ErrNotFound
	}
	return own, nil
}

type userRepo struct{ s *store }

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error)  { return r.s.users[id], nil }
func (r userRepo) GetByUsername(context.Context, string) (*entity.User, error) { return nil, nil }

type companyRepo struct{ s *store }

func (r companyRepo) Create(_ context.Context, c *entity.Company) error {
	r.s.companies[c.ID] = c
	return nil
}
func (r companyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.s.companies[id], nil
}
func (r companyRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, c := range r.s.companies {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}
func (r companyRepo) Update(_ context.Context, c *entity.Company) error {
	r.s.companies[c.ID] = c
	return nil
}
func (r companyRepo) List(_ context.Context, q repository.ListQuery) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, id := range sortedKeys(r.s.companies) {
		if q.Scope.Allows(entity.EntityCompany, entity.Ownership{CompanyID: id}) {
			out = append(out, r.s.companies[id])
		}
	}
	return out, nil
}

type branchRepo struct{ s *store }

func (r branchRepo) Create(_ context.Context, b *entity.Branch) error {
	r.s.branches[b.ID] = b
	return nil
}
func (r branchRepo) GetByID(_ context.Context, id string) (*entity.Branch, error) {
	return r.s.branches[id], nil
}
func (r branchRepo) SlugExists(_ context.Context, companyID, slug string) (bool, error) {
	for _, b := range r.s.branches {
		if b.CompanyID == companyID && b.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}
func (r branchRepo) Update(_ context.Context, b *entity.Branch) error {
	r.s.branches[b.ID] = b
	return nil
}
// Delete replica la cascada de employees.branch_id.
func (r branchRepo) Delete(_ context.Context, id string) error {
	delete(r.s.branches, id)
	for eid, e := range r.s.employees {
		if e.BranchID == id {
			delete(r.s.employees, eid)
		}
	}
	return nil
}
func (r branchRepo) List(_ context.Context, q repository.ListQuery) ([]*entity.Branch, error) {
	var out []*entity.Branch
	for _, id := range sortedKeys(r.s.branches) {
		own, _ := r.s.ownership(entity.EntityBranch, id)
		if q.Scope.Allows(entity.EntityBranch, own) && (q.CompanyID == "" || q.CompanyID == own.CompanyID) {
			out = append(out, r.s.branches[id])
		}
	}
	return out, nil
}

type employeeRepo struct{ s *store }

func (r employeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.s.employees[e.ID] = e
	return nil
}
func (r employeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return r.s.employees[id], nil
}
func (r employeeRepo) GetByUserID(_ context.Context, userID string) (*entity.Employee, error) {
	for _, e := range r.s.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}
func (r employeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.s.employees[e.ID] = e
	return nil
}
func (r employeeRepo) List(_ context.Context, q repository.ListQuery) ([]*entity.Employee, error) {
	r.s.lastEmployeeQuery = q
	var out []*entity.Employee
	for _, id := range sortedKeys(r.s.employees) {
		own, _ := r.s.ownership(entity.EntityEmployee, id)
		if q.Scope.Allows(entity.EntityEmployee, own) {
			out = append(out, r.s.employees[id])
		}
	}
	return out, nil
}

func (r employeeRepo) ListByBranch(_ context.Context, branchID string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, id := range sortedKeys(r.s.employees) {
		if r.s.employees[id].BranchID == branchID {
			out = append(out, r.s.employees[id])
		}
	}
	return out, nil
}

type planRepo struct{ s *store }

func (r planRepo) GetByID(context.Context, string) (*entity.Plan, error) { return r.s.trialPlan, nil }
func (r planRepo) GetTrialPlan(context.Context) (*entity.Plan, error)    { return r.s.trialPlan, nil }

type subscriptionRepo struct{ s *store }

func (r subscriptionRepo) Create(_ context.Context, sub *entity.Subscription) error {
	r.s.subscriptions[sub.ID] = sub
	return nil
}
func (r subscriptionRepo) GetByID(_ context.Context, id string) (*entity.Subscription, error) {
	return r.s.subscriptions[id], nil
}
func (r subscriptionRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, id := range sortedKeys(r.s.subscriptions) {
		if r.s.subscriptions[id].CompanyID == companyID {
			out = append(out, r.s.subscriptions[id])
		}
	}
	return out, nil
}
func (r subscriptionRepo) Update(_ context.Context, sub *entity.Subscription) error {
	r.s.subscriptions[sub.ID] = sub
	return nil
}
func (r subscriptionRepo) List(_ context.Context, q repository.ListQuery) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, id := range sortedKeys(r.s.subscriptions) {
		own, _ := r.s.ownership(entity.EntitySubscription, id)
		if q.Scope.Allows(entity.EntitySubscription, own) {
			out = append(out, r.s.subscriptions[id])
		}
	}
	return out, nil
}

type maintenanceRepo struct{ s *store }

func (r maintenanceRepo) GetByID(_ context.Context, id string) (*entity.MaintenanceMode, error) {
	return r.s.windows[id], nil
}
func (r maintenanceRepo) ListInProgress(context.Context) ([]*entity.MaintenanceMode, error) {
	var out []*entity.MaintenanceMode
	for _, id := range sortedKeys(r.s.windows) {
		if r.s.windows[id].Status == entity.MaintenanceInProgress {
			out = append(out, r.s.windows[id])
		}
	}
	return out, nil
}
func (r maintenanceRepo) List(context.Context, int, int) ([]*entity.MaintenanceMode, error) {
	var out []*entity.MaintenanceMode
	for _, id := range sortedKeys(r.s.windows) {
		out = append(out, r.s.windows[id])
	}
	return out, nil
}
func (r maintenanceRepo) Update(_ context.Context, m *entity.MaintenanceMode) error {
	r.s.windows[m.ID] = m
	return nil
}
func (r maintenanceRepo) Invalidate() { r.s.invalidated++ }

type notificationRepo struct{ s *store }

func (r notificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.s.notifications = append(r.s.notifications, n)
	return nil
}
func (r notificationRepo) List(context.Context, repository.ListQuery) ([]*entity.Notification, error) {
	return r.s.notifications, nil
}

type auditRepo struct{ s *store }

func (r auditRepo) Insert(_ context.Context, e *entity.AuditLog) error {
	r.s.audit = append(r.s.audit, e)
	return nil
}
func (r auditRepo) GetByID(context.Context, string) (*entity.AuditLog, error) { return nil, nil }
func (r auditRepo) List(_ context.Context, q repository.ListQuery) ([]*entity.AuditLog, error) {
	var out []*entity.AuditLog
	for _, a := range r.s.audit {
		own := entity.Ownership{CompanyID: lo.FromPtr(a.CompanyID)}
		if q.Scope.Allows(entity.EntityAuditLog, own) && (q.CompanyID == "" || own.CompanyID == q.CompanyID) {
			out = append(out, a)
		}
	}
	return out, nil
}

type announcementRepo struct{ s *store }

func (r announcementRepo) List(context.Context) ([]*entity.Announcement, error) {
	return r.s.announcements, nil
}

type statsRepo struct{ s *store }

func (r statsRepo) CompanyStatistics(_ context.Context, companyID string, _ time.Time) (*entity.CompanyStatistics, error) {
	st := r.s.usage
	for _, b := range r.s.branches {
		if b.CompanyID == companyID {
			st.TotalBranches++
		}
	}
	for _, e := range r.s.employees {
		if b := r.s.branches[e.BranchID]; b != nil && b.CompanyID == companyID {
			st.TotalEmployees++
			if e.IsActive && e.TerminationDate == nil {
				st.ActiveEmployees++
			}
		}
	}
	return &st, nil
}

func (s *store) repos() repository.TxRepos {
	return repository.TxRepos{
		Companies:     companyRepo{s},
		Branches:      branchRepo{s},
		Employees:     employeeRepo{s},
		Subscriptions: subscriptionRepo{s},
		Notifications: notificationRepo{s},
		Maintenance:   maintenanceRepo{s},
		AuditLogs:     auditRepo{s},
	}
}

// txRunner sin rollback: los tests solo observan el resultado confirmado o el error.
type txRunner struct{ s *store }

func (t txRunner) Run(_ context.Context, fn func(repos repository.TxRepos) error) error {
	return fn(t.s.repos())
}
