// Package revocation guarda los jti de refresh tokens ya consumidos o cerrados.
// Cada entrada vive hasta el vencimiento del token; pasado ese punto el JWT ya no valida.
package revocation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Saas-api/internal/application/auth"
	"github.com/jhoicas/Saas-api/pkg/clock"
	"github.com/jhoicas/Saas-api/pkg/config"
)

const keyPrefix = "auth:revoked:"

var (
	_ auth.RefreshRevoker = (*RedisStore)(nil)
	_ auth.RefreshRevoker = (*MemoryStore)(nil)
)

// RedisStore revocación compartida entre instancias (SET NX con TTL).
type RedisStore struct {
	client redis.UniversalClient
	clock  clock.Clock
}

// NewRedisStore construye el almacén sobre un cliente ya conectado.
func NewRedisStore(client redis.UniversalClient, clk clock.Clock) *RedisStore {
	return &RedisStore{client: client, clock: clk}
}

// Revoke marca jti hasta until. Devuelve false si otro proceso lo marcó antes.
func (s *RedisStore) Revoke(ctx context.Context, jti string, until time.Time) (bool, error) {
	ok, err := s.client.SetNX(ctx, keyPrefix+jti, 1, ttl(until, s.clock.Now())).Result()
	if err != nil {
		return false, fmt.Errorf("revocar token en redis: %w", err)
	}
	return ok, nil
}

// MemoryStore revocación local al proceso, para una sola instancia o desarrollo.
type MemoryStore struct {
	cache *gocache.Cache
	clock clock.Clock
}

// NewMemoryStore construye el almacén; las entradas vencidas se purgan cada cleanup.
func NewMemoryStore(clk clock.Clock, cleanup time.Duration) *MemoryStore {
	return &MemoryStore{cache: gocache.New(gocache.NoExpiration, cleanup), clock: clk}
}

// Revoke marca jti hasta until. go-cache Add es atómico: solo la primera llamada gana.
func (s *MemoryStore) Revoke(_ context.Context, jti string, until time.Time) (bool, error) {
	if err := s.cache.Add(jti, struct{}{}, ttl(until, s.clock.Now())); err != nil {
		return false, nil
	}
	return true, nil
}

// ttl nunca es cero: en redis y go-cache cero significa "sin vencimiento".
func ttl(until, now time.Time) time.Duration {
	d := until.Sub(now)
	if d < time.Second {
		return time.Second
	}
	return d
}

// NewRedisClient conecta con REDIS_URL (redis:// o rediss://) o, si no, con REDIS_ADDR.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	var opts *redis.Options
	switch {
	case cfg.URL != "":
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	case strings.TrimSpace(cfg.Addr) != "":
		opts = &redis.Options{Addr: strings.TrimSpace(cfg.Addr)}
	default:
		return nil, errors.New("redis addr or url is required")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// New elige redis si está configurado y memoria en caso contrario. El cliente devuelto
// (nil en modo memoria) debe cerrarse al terminar.
func New(ctx context.Context, cfg config.RedisConfig, clk clock.Clock) (auth.RefreshRevoker, *redis.Client, error) {
	if !cfg.Enabled() {
		return NewMemoryStore(clk, 10*time.Minute), nil, nil
	}
	client, err := NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return NewRedisStore(client, clk), client, nil
}
