package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// StatisticsRepository agregados por empresa.
type StatisticsRepository interface {
	// CompanyStatistics cuenta sucursales, empleados, facturas y consumo; day fija el día de las llamadas a la API.
	CompanyStatistics(ctx context.Context, companyID string, day time.Time) (*entity.CompanyStatistics, error)
}
