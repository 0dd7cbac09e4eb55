package revocation_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Saas-api/internal/application/auth"
	"github.com/jhoicas/Saas-api/internal/infrastructure/revocation"
	"github.com/jhoicas/Saas-api/pkg/clock"
	"github.com/jhoicas/Saas-api/pkg/config"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newRedisStore(t *testing.T) (*revocation.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := revocation.NewRedisClient(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return revocation.NewRedisStore(client, clock.Fixed{At: testNow}), mr
}

// ──────────────────────────────────────────────────────────────────────────────
// Redis
// ──────────────────────────────────────────────────────────────────────────────

func TestRedisStore_SoloLaPrimeraRevocacionGana(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	ok, err := store.Revoke(ctx, "jti-1", testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Revoke(ctx, "jti-1", testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, ok, "un token ya revocado no se puede volver a consumir")

	assert.Equal(t, time.Hour, mr.TTL("auth:revoked:jti-1"))
}

func TestRedisStore_LaEntradaVenceConElToken(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	_, err := store.Revoke(ctx, "jti-2", testNow.Add(time.Minute))
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	assert.False(t, mr.Exists("auth:revoked:jti-2"))
}

func TestRedisStore_TTLMinimo(t *testing.T) {
	store, mr := newRedisStore(t)

	_, err := store.Revoke(context.Background(), "jti-3", testNow.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, time.Second, mr.TTL("auth:revoked:jti-3"))
}

func TestNewRedisClient_SinDireccion(t *testing.T) {
	_, err := revocation.NewRedisClient(context.Background(), config.RedisConfig{})
	assert.Error(t, err)
}

func TestNew_UsaRedisSiEstaConfigurado(t *testing.T) {
	mr := miniredis.RunT(t)
	store, client, err := revocation.New(context.Background(), config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"}, clock.Real{})
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()
	assert.IsType(t, &revocation.RedisStore{}, store)

	store, client, err = revocation.New(context.Background(), config.RedisConfig{}, clock.Real{})
	require.NoError(t, err)
	assert.Nil(t, client)
	assert.IsType(t, &revocation.MemoryStore{}, store)
}

// ──────────────────────────────────────────────────────────────────────────────
// Memoria
// ──────────────────────────────────────────────────────────────────────────────

func TestMemoryStore_RevocacionConcurrente(t *testing.T) {
	var store auth.RefreshRevoker = revocation.NewMemoryStore(clock.Fixed{At: testNow}, time.Minute)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.Revoke(context.Background(), "jti-compartido", testNow.Add(time.Hour))
			assert.NoError(t, err)
			if ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load(), "solo una renovación concurrente puede consumir el token")
}
