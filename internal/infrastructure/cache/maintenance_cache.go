// Package cache decoradores en memoria sobre los repositorios de lectura frecuente.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

const inProgressKey = "maintenance:in_progress"

var _ repository.MaintenanceRepository = (*MaintenanceCache)(nil)

// MaintenanceCache guarda ListInProgress durante ttl. La compuerta de mantenimiento lo consulta en
// cada login y en cada petición a rutas del tenant; el resto de métodos pasan directo.
type MaintenanceCache struct {
	repository.MaintenanceRepository
	cache *gocache.Cache
	ttl   time.Duration
}

// NewMaintenanceCache envuelve repo. Con ttl <= 0 devuelve repo sin decorar.
func NewMaintenanceCache(repo repository.MaintenanceRepository, ttl time.Duration) repository.MaintenanceRepository {
	if ttl <= 0 {
		return repo
	}
	return &MaintenanceCache{
		MaintenanceRepository: repo,
		cache:                 gocache.New(ttl, 2*ttl),
		ttl:                   ttl,
	}
}

// ListInProgress devuelve la lista cacheada o la recarga.
func (c *MaintenanceCache) ListInProgress(ctx context.Context) ([]*entity.MaintenanceMode, error) {
	if v, ok := c.cache.Get(inProgressKey); ok {
		return v.([]*entity.MaintenanceMode), nil
	}
	list, err := c.MaintenanceRepository.ListInProgress(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(inProgressKey, list, c.ttl)
	return list, nil
}

// Invalidate descarta la lista; se llama tras iniciar o finalizar una ventana.
func (c *MaintenanceCache) Invalidate() {
	c.cache.Delete(inProgressKey)
}
