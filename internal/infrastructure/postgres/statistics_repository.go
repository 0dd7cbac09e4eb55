package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

var _ repository.StatisticsRepository = (*StatisticsRepo)(nil)

// StatisticsRepo implementación de StatisticsRepository.
type StatisticsRepo struct {
	q Querier
}

// NewStatisticsRepository construye el adaptador.
func NewStatisticsRepository(q Querier) *StatisticsRepo {
	return &StatisticsRepo{q: q}
}

// CompanyStatistics calcula todos los agregados en una sola consulta.
func (r *StatisticsRepo) CompanyStatistics(ctx context.Context, companyID string, day time.Time) (*entity.CompanyStatistics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM branches b WHERE b.company_id = $1),
			(SELECT COUNT(*) FROM employees e JOIN branches b ON b.id = e.branch_id WHERE b.company_id = $1),
			(SELECT COUNT(*) FROM employees e JOIN branches b ON b.id = e.branch_id
				WHERE b.company_id = $1 AND e.is_active AND e.termination_date IS NULL),
			(SELECT COALESCE(SUM(fs.file_size), 0)::bigint FROM file_storages fs WHERE fs.company_id = $1),
			(SELECT COALESCE(SUM(au.requests_count), 0)::bigint FROM api_usages au WHERE au.company_id = $1 AND au.date = $2::date),
			(SELECT COUNT(*) FROM invoices i JOIN subscriptions s ON s.id = i.subscription_id WHERE s.company_id = $1),
			(SELECT COUNT(*) FROM invoices i JOIN subscriptions s ON s.id = i.subscription_id
				WHERE s.company_id = $1 AND i.status = $3)`
	var st entity.CompanyStatistics
	err := r.q.QueryRow(ctx, query, companyID, day.Format(time.DateOnly), entity.InvoicePending).Scan(
		&st.TotalBranches, &st.TotalEmployees, &st.ActiveEmployees,
		&st.StorageUsed, &st.APICallsToday,
		&st.TotalInvoices, &st.PendingInvoices,
	)
	if err != nil {
		return nil, fmt.Errorf("company statistics: %w", err)
	}
	return &st, nil
}
