// Package auth implementa el flujo de autenticación: login, rotación de refresh token y logout.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Saas-api/internal/application/audit"
	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/access"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
	"github.com/jhoicas/Saas-api/pkg/clock"
	"github.com/jhoicas/Saas-api/pkg/jwt"
)

// AuthUseCase casos de uso de autenticación. No guarda estado entre llamadas salvo la lista de revocación.
type AuthUseCase struct {
	resolver *PrincipalResolver
	system   SystemStatus
	tokens   TokenIssuer
	revoker  RefreshRevoker
	trail    AuditTrail
	plans    repository.PlanRepository
	branding repository.BrandingRepository
	clock    clock.Clock
}

// Deps dependencias de AuthUseCase.
type Deps struct {
	Resolver *PrincipalResolver
	System   SystemStatus
	Tokens   TokenIssuer
	Revoker  RefreshRevoker
	Audit    AuditTrail
	Plans    repository.PlanRepository
	Branding repository.BrandingRepository
	Clock    clock.Clock
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(d Deps) *AuthUseCase {
	clk := d.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	return &AuthUseCase{
		resolver: d.Resolver,
		system:   d.System,
		tokens:   d.Tokens,
		revoker:  d.Revoker,
		trail:    d.Audit,
		plans:    d.Plans,
		branding: d.Branding,
		clock:    clk,
	}
}

// admission resultado de pasar las compuertas: la ventana activa y la suscripción vigente (si aplican).
type admission struct {
	window       *entity.MaintenanceMode
	subscription *entity.Subscription
}

// Login verifica credenciales, aplica mantenimiento, estado de la cuenta y suscripción, y emite el par de tokens.
// Errores: ErrInvalidCredentials, *MaintenanceBlockedError, ErrAccountDisabled, ErrNoEmployeeRecord,
// ErrSubscriptionExpired o un fallo de infraestructura.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.resolver.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	principal, err := uc.resolver.Principal(ctx, user)
	if err != nil {
		return nil, err
	}
	adm, err := uc.admit(ctx, principal)
	if err != nil {
		return nil, err
	}
	return uc.issue(ctx, principal, adm, "Inicio de sesión exitoso")
}

// Refresh consume el refresh token (queda revocado) y emite un par nuevo, reaplicando las compuertas
// sobre el estado actual del usuario. Un token ya usado devuelve domain.ErrTokenRevoked.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if err := uc.consume(ctx, claims); err != nil {
		return nil, err
	}
	principal, err := uc.resolver.Resolve(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	adm, err := uc.admit(ctx, principal)
	if err != nil {
		return nil, err
	}
	return uc.issue(ctx, principal, adm, "Token renovado")
}

// Logout revoca el refresh token y registra la salida. Repetirlo con el mismo token no falla
// ni vuelve a auditar.
func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string, meta audit.Meta) error {
	claims, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	err = uc.consume(ctx, claims)
	if errors.Is(err, domain.ErrTokenRevoked) {
		return nil
	}
	if err != nil {
		return err
	}
	principal, err := uc.resolver.Resolve(ctx, claims.UserID)
	if err != nil {
		return err
	}
	return uc.trail.RunAudited(ctx, func(repository.TxRepos) (*audit.Entry, error) {
		return &audit.Entry{
			Principal: principal,
			Action:    entity.AuditLogout,
			Target: audit.Target{
				Type:      entity.EntityUser,
				ID:        principal.User.ID,
				Repr:      principal.User.Username,
				CompanyID: principal.CompanyID(),
			},
			Meta: meta,
		}, nil
	})
}

func (uc *AuthUseCase) consume(ctx context.Context, claims *jwt.Claims) error {
	until := uc.clock.Now()
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	fresh, err := uc.revoker.Revoke(ctx, claims.ID, until)
	if err != nil {
		return fmt.Errorf("revocar refresh token: %w", err)
	}
	if !fresh {
		return domain.ErrTokenRevoked
	}
	return nil
}

// admit aplica, en orden, mantenimiento, estado de la cuenta y suscripción.
func (uc *AuthUseCase) admit(ctx context.Context, principal *entity.Principal) (admission, error) {
	window, err := uc.system.ActiveWindow(ctx)
	if err != nil {
		return admission{}, err
	}
	if !access.CanAccess(window, principal) {
		return admission{}, &domain.MaintenanceBlockedError{Title: window.Title, PlannedEndTime: window.PlannedEndTime}
	}
	if !IsEnabled(principal) {
		return admission{}, domain.ErrAccountDisabled
	}

	adm := admission{window: window}
	companyID := principal.CompanyID()
	if companyID != "" {
		if adm.subscription, err = uc.system.CurrentSubscription(ctx, companyID); err != nil {
			return admission{}, err
		}
	}
	if principal.IsPrivileged() {
		return adm, nil
	}
	if principal.Affiliation == nil {
		return admission{}, domain.ErrNoEmployeeRecord
	}
	if adm.subscription == nil {
		return admission{}, domain.ErrSubscriptionExpired
	}
	return adm, nil
}

// IsEnabled usuario activo y, si tiene empleado, activo y sin fecha de baja.
func IsEnabled(p *entity.Principal) bool {
	if !p.User.IsActive {
		return false
	}
	if p.Affiliation != nil && p.Affiliation.Employee != nil {
		emp := p.Affiliation.Employee
		return emp.IsActive && !emp.IsTerminated()
	}
	return true
}

func (uc *AuthUseCase) issue(ctx context.Context, principal *entity.Principal, adm admission, message string) (*dto.LoginResponse, error) {
	now := uc.clock.Now()
	pair, err := uc.tokens.IssuePair(principal.User.ID, principal.CompanyID(), now)
	if err != nil {
		return nil, fmt.Errorf("emitir tokens: %w", err)
	}
	user, err := uc.buildUser(ctx, principal, adm.subscription, now)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Status:  "success",
		Message: message,
		Auth: dto.AuthTokens{
			Type:         "Bearer",
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			ExpiresIn:    pair.ExpiresIn(now),
		},
		User:   user,
		System: uc.system.Snapshot(adm.window, principal),
	}, nil
}
