package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tipos de token (claim "typ").
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// ErrWrongType el token es válido pero no del tipo esperado (p. ej. un refresh usado como access).
var ErrWrongType = errors.New("jwt: tipo de token inesperado")

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// El ID (jti) identifica el token para poder revocarlo.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id,omitempty"`
	Type      string `json:"typ"`
}

// Config parámetros de firma y vigencia.
type Config struct {
	Secret            string
	Issuer            string
	AccessExpMinutes  int
	RefreshExpMinutes int
}

// Pair par de tokens emitido en login y refresh.
type Pair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
	RefreshID        string
}

// ExpiresIn segundos de vida del access token desde now.
func (p Pair) ExpiresIn(now time.Time) int {
	return int(p.AccessExpiresAt.Sub(now).Seconds())
}

// Issuer emite y valida tokens HS256.
type Issuer struct {
	cfg Config
}

// NewIssuer valida la configuración y construye el emisor.
func NewIssuer(cfg Config) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	if cfg.AccessExpMinutes <= 0 {
		cfg.AccessExpMinutes = 60
	}
	if cfg.RefreshExpMinutes <= 0 {
		cfg.RefreshExpMinutes = 7 * 24 * 60
	}
	return &Issuer{cfg: cfg}, nil
}

// IssuePair firma un access token y un refresh token para el usuario a partir de now.
func (i *Issuer) IssuePair(userID, companyID string, now time.Time) (Pair, error) {
	accessExp := now.Add(time.Duration(i.cfg.AccessExpMinutes) * time.Minute)
	refreshExp := now.Add(time.Duration(i.cfg.RefreshExpMinutes) * time.Minute)

	access, _, err := i.sign(userID, companyID, TypeAccess, now, accessExp)
	if err != nil {
		return Pair{}, err
	}
	refresh, jti, err := i.sign(userID, companyID, TypeRefresh, now, refreshExp)
	if err != nil {
		return Pair{}, err
	}
	return Pair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
		RefreshID:        jti,
	}, nil
}

func (i *Issuer) sign(userID, companyID, typ string, now, exp time.Time) (string, string, error) {
	jti := uuid.New().String()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    i.cfg.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID:    userID,
		CompanyID: companyID,
		Type:      typ,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(i.cfg.Secret))
	if err != nil {
		return "", "", fmt.Errorf("firmar token: %w", err)
	}
	return signed, jti, nil
}

// ParseAccess valida un access token.
func (i *Issuer) ParseAccess(tokenString string) (*Claims, error) {
	return Parse(i.cfg.Secret, tokenString, TypeAccess)
}

// ParseRefresh valida un refresh token.
func (i *Issuer) ParseRefresh(tokenString string) (*Claims, error) {
	return Parse(i.cfg.Secret, tokenString, TypeRefresh)
}

// Parse valida firma, expiración y tipo del token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString, wantType string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if wantType != "" && claims.Type != wantType {
		return nil, ErrWrongType
	}
	return claims, nil
}
