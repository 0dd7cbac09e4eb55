package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Saas-api/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
)

func newIssuer(t *testing.T) *pkgjwt.Issuer {
	t.Helper()
	iss, err := pkgjwt.NewIssuer(pkgjwt.Config{Secret: testSecret, Issuer: "saas-api-test", AccessExpMinutes: 60, RefreshExpMinutes: 10080})
	require.NoError(t, err)
	return iss
}

func TestIssuePair_AccessYRefresh(t *testing.T) {
	iss := newIssuer(t)
	now := time.Now()
	pair, err := iss.IssuePair(testUserID, testCompanyID, now)
	require.NoError(t, err)

	assert.Equal(t, 3600, pair.ExpiresIn(now))
	assert.Equal(t, now.Add(7*24*time.Hour), pair.RefreshExpiresAt)
	assert.NotEmpty(t, pair.RefreshID)

	access, err := iss.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testUserID, access.UserID)
	assert.Equal(t, testCompanyID, access.CompanyID)
	assert.Equal(t, pkgjwt.TypeAccess, access.Type)

	refresh, err := iss.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, pair.RefreshID, refresh.ID)
	assert.NotEqual(t, access.ID, refresh.ID, "cada token lleva su propio jti")
}

func TestParse_TipoIncorrecto(t *testing.T) {
	iss := newIssuer(t)
	pair, err := iss.IssuePair(testUserID, "", time.Now())
	require.NoError(t, err)

	_, err = iss.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, pkgjwt.ErrWrongType, "un refresh token no sirve como access")

	_, err = iss.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, pkgjwt.ErrWrongType)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	iss := newIssuer(t)
	pair, err := iss.IssuePair(testUserID, testCompanyID, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = iss.ParseAccess(pair.AccessToken)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	iss := newIssuer(t)
	pair, err := iss.IssuePair(testUserID, testCompanyID, time.Now())
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", pair.AccessToken, pkgjwt.TypeAccess)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestNewIssuer_SinSecret(t *testing.T) {
	_, err := pkgjwt.NewIssuer(pkgjwt.Config{})
	assert.Error(t, err)
}
