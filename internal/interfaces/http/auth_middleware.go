package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Saas-api/internal/application/audit"
	"github.com/jhoicas/Saas-api/internal/application/auth"
	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalUserID    = "user_id"
	LocalCompanyID = "company_id"
	LocalPrincipal = "principal"
)

// AccessTokenParser valida access tokens. Lo implementa *jwt.Issuer.
type AccessTokenParser interface {
	ParseAccess(tokenString string) (*jwt.Claims, error)
}

// PrincipalSource reconstruye el principal desde la base en cada petición, de modo que
// desactivaciones o bajas aplican sin esperar a que venza el token. Lo implementa *auth.PrincipalResolver.
type PrincipalSource interface {
	Resolve(ctx context.Context, userID string) (*entity.Principal, error)
}

// AuthMiddleware valida el Bearer Token, resuelve el principal y lo deja en c.Locals.
func AuthMiddleware(tokens AccessTokenParser, principals PrincipalSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return err
		}
		if tokenString == "" {
			return unauthorized("MISSING_TOKEN", "Authorization header requerido")
		}
		return authenticate(c, tokens, principals, tokenString)
	}
}

// OptionalAuth como AuthMiddleware pero sin token deja pasar la petición como anónima.
// Un token presente pero inválido se sigue rechazando.
func OptionalAuth(tokens AccessTokenParser, principals PrincipalSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return err
		}
		if tokenString == "" {
			return c.Next()
		}
		return authenticate(c, tokens, principals, tokenString)
	}
}

func authenticate(c *fiber.Ctx, tokens AccessTokenParser, principals PrincipalSource, tokenString string) error {
	claims, err := tokens.ParseAccess(tokenString)
	if err != nil {
		return unauthorized("INVALID_TOKEN", "token inválido o expirado")
	}
	principal, err := principals.Resolve(c.UserContext(), claims.UserID)
	if err != nil {
		return err
	}
	if !auth.IsEnabled(principal) {
		return domain.ErrAccountDisabled
	}
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalCompanyID, principal.CompanyID())
	c.Locals(LocalPrincipal, principal)
	return c.Next()
}

// bearerToken devuelve "" si no hay header.
func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", nil
	}
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", unauthorized("INVALID_TOKEN", "formato: Bearer <token>")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", unauthorized("MISSING_TOKEN", "token vacío")
	}
	return token, nil
}

// GetPrincipal devuelve el principal autenticado o nil en rutas anónimas.
func GetPrincipal(c *fiber.Ctx) *entity.Principal {
	p, _ := c.Locals(LocalPrincipal).(*entity.Principal)
	return p
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetCompanyID devuelve la empresa del principal ("" si no está afiliado).
func GetCompanyID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalCompanyID).(string)
	return s
}

// requestMeta origen de la petición para auditoría.
func requestMeta(c *fiber.Ctx) audit.Meta {
	return audit.Meta{IP: c.IP(), UserAgent: c.Get(fiber.HeaderUserAgent)}
}
