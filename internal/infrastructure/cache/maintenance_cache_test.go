package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/infrastructure/cache"
)

type countingRepo struct {
	calls   int
	windows []*entity.MaintenanceMode
}

func (r *countingRepo) GetByID(context.Context, string) (*entity.MaintenanceMode, error) { return nil, nil }
func (r *countingRepo) ListInProgress(context.Context) ([]*entity.MaintenanceMode, error) {
	r.calls++
	return r.windows, nil
}
func (r *countingRepo) List(context.Context, int, int) ([]*entity.MaintenanceMode, error) {
	return nil, nil
}
func (r *countingRepo) Update(context.Context, *entity.MaintenanceMode) error { return nil }

func TestMaintenanceCache_ReutilizaHastaInvalidar(t *testing.T) {
	repo := &countingRepo{windows: []*entity.MaintenanceMode{{ID: "m1", Status: entity.MaintenanceInProgress}}}
	c := cache.NewMaintenanceCache(repo, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		list, err := c.ListInProgress(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	}
	assert.Equal(t, 1, repo.calls)

	repo.windows = nil
	c.(interface{ Invalidate() }).Invalidate()

	list, err := c.ListInProgress(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 2, repo.calls)
}

func TestMaintenanceCache_SinTTLNoDecora(t *testing.T) {
	repo := &countingRepo{}
	assert.Same(t, repo, cache.NewMaintenanceCache(repo, 0))
}
