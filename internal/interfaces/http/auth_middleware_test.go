package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Saas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Saas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "saas-api-test"
)

func newIssuer(t *testing.T) *pkgjwt.Issuer {
	t.Helper()
	iss, err := pkgjwt.NewIssuer(pkgjwt.Config{Secret: testJWTSecret, Issuer: testIssuer, AccessExpMinutes: 60, RefreshExpMinutes: 120})
	require.NoError(t, err)
	return iss
}

func accessToken(t *testing.T, iss *pkgjwt.Issuer, userID string) string {
	t.Helper()
	pair, err := iss.IssuePair(userID, testCompanyID, time.Now())
	require.NoError(t, err)
	return pair.AccessToken
}

func employeePrincipal(userID string) *entity.Principal {
	return &entity.Principal{
		User: &entity.User{ID: userID, Username: "ana", IsActive: true},
		Affiliation: &entity.Affiliation{
			Employee: &entity.Employee{ID: "e1", UserID: userID, BranchID: "b1", Role: entity.RoleEmployee, IsActive: true},
			Branch:   &entity.Branch{ID: "b1", CompanyID: testCompanyID},
			Company:  &entity.Company{ID: testCompanyID},
		},
	}
}

// buildAuthApp aplicación mínima con el manejo de errores real y un handler que
// devuelve el usuario y la empresa cargados por el middleware.
func buildAuthApp(mw fiber.Handler) *fiber.App {
	app := apphttp.NewApp(apphttp.AppConfig{Name: "saas-test"})
	app.Get("/protected", mw, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"company_id": apphttp.GetCompanyID(c),
			"anonymous":  apphttp.GetPrincipal(c) == nil,
		})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), "cuerpo: %s", body)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	iss := newIssuer(t)
	app := buildAuthApp(apphttp.AuthMiddleware(iss, principals{}))

	resp := doRequest(t, app, fiber.MethodGet, "/protected", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeBody(t, resp)["code"])
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	iss := newIssuer(t)
	app := buildAuthApp(apphttp.AuthMiddleware(iss, principals{}))

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Token abc")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeBody(t, resp)["code"])
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	iss := newIssuer(t)
	app := buildAuthApp(apphttp.AuthMiddleware(iss, principals{}))

	resp := doRequest(t, app, fiber.MethodGet, "/protected", "no.es.jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeBody(t, resp)["code"])
}

func TestAuthMiddleware_RefreshTokenNoSirveComoAccess(t *testing.T) {
	iss := newIssuer(t)
	app := buildAuthApp(apphttp.AuthMiddleware(iss, principals{testUserID: employeePrincipal(testUserID)}))

	pair, err := iss.IssuePair(testUserID, testCompanyID, time.Now())
	require.NoError(t, err)
	resp := doRequest(t, app, fiber.MethodGet, "/protected", pair.RefreshToken)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValido_CargaLocals(t *testing.T) {
	iss := newIssuer(t)
	app := buildAuthApp(apphttp.AuthMiddleware(iss, principals{testUserID: employeePrincipal(testUserID)}))

	resp := doRequest(t, app, fiber.MethodGet, "/protected", accessToken(t, iss, testUserID))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testCompanyID, body["company_id"])
	assert.Equal(t, false, body["anonymous"])
}

func TestAuthMiddleware_UsuarioDesconocido_Retorna401(t *testing.T) {
	iss := newIssuer(t)
	app := buildAuthApp(apphttp.AuthMiddleware(iss, principals{}))

	resp := doRequest(t, app, fiber.MethodGet, "/protected", accessToken(t, iss, testUserID))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_CuentaDesactivadaDespuesDelLogin(t *testing.T) {
	iss := newIssuer(t)

	inactivo := employeePrincipal(testUserID)
	inactivo.User.IsActive = false

	baja := employeePrincipal("u-baja")
	ended := time.Now().Add(-time.Hour)
	baja.Affiliation.Employee.TerminationDate = &ended

	app := buildAuthApp(apphttp.AuthMiddleware(iss, principals{testUserID: inactivo, "u-baja": baja}))

	for _, uid := range []string{testUserID, "u-baja"} {
		resp := doRequest(t, app, fiber.MethodGet, "/protected", accessToken(t, iss, uid))
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "usuario %s", uid)
		assert.Equal(t, "ACCOUNT_DISABLED", decodeBody(t, resp)["code"])
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// OptionalAuth
// ──────────────────────────────────────────────────────────────────────────────

func TestOptionalAuth_SinTokenPasaComoAnonimo(t *testing.T) {
	iss := newIssuer(t)
	app := buildAuthApp(apphttp.OptionalAuth(iss, principals{}))

	resp := doRequest(t, app, fiber.MethodGet, "/protected", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["anonymous"])
}

func TestOptionalAuth_TokenInvalidoSeRechaza(t *testing.T) {
	iss := newIssuer(t)
	app := buildAuthApp(apphttp.OptionalAuth(iss, principals{}))

	resp := doRequest(t, app, fiber.MethodGet, "/protected", "basura")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
