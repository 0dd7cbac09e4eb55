package auth

import (
	"context"
	"time"

	"github.com/jhoicas/Saas-api/internal/application/audit"
	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
	"github.com/jhoicas/Saas-api/pkg/jwt"
)

// TokenIssuer emite y valida pares de tokens. Lo implementa *jwt.Issuer.
type TokenIssuer interface {
	IssuePair(userID, companyID string, now time.Time) (jwt.Pair, error)
	ParseRefresh(tokenString string) (*jwt.Claims, error)
}

// RefreshRevoker lleva la lista de refresh tokens ya usados o cerrados.
type RefreshRevoker interface {
	// Revoke marca jti como revocado hasta until. Devuelve false si ya lo estaba.
	Revoke(ctx context.Context, jti string, until time.Time) (bool, error)
}

// SystemStatus compuertas de estado del sistema. Lo implementa *usecase.SystemUseCase.
type SystemStatus interface {
	ActiveWindow(ctx context.Context) (*entity.MaintenanceMode, error)
	CurrentSubscription(ctx context.Context, companyID string) (*entity.Subscription, error)
	Snapshot(window *entity.MaintenanceMode, principal *entity.Principal) dto.SystemStatusDTO
}

// AuditTrail registra operaciones en una transacción. Lo implementa *audit.Recorder.
type AuditTrail interface {
	RunAudited(ctx context.Context, fn func(repos repository.TxRepos) (*audit.Entry, error)) error
}
