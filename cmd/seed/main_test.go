package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestWriteSeed_PlanesYSuperusuario(t *testing.T) {
	var buf bytes.Buffer
	err := writeSeed(&buf, plans, adminSeed{Username: "root", Email: "o'neil@acme.test", Password: "s3cr3t"})
	require.NoError(t, err)
	sql := buf.String()

	assert.Contains(t, sql, "'prueba', 0.00, 'TRY', 3, 512")
	assert.Contains(t, sql, "'basico', 499.90")
	assert.Equal(t, 1, strings.Count(sql, ", true, TRUE)"), "un único plan de prueba")
	assert.Contains(t, sql, "'o''neil@acme.test'")
	assert.NotContains(t, sql, "s3cr3t", "la contraseña nunca se escribe en claro")

	hash := regexp.MustCompile(`'(\$2[aby]\$[^']+)'`).FindStringSubmatch(sql)
	require.Len(t, hash, 2)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash[1]), []byte("s3cr3t")))
}

func TestSeedID_Determinista(t *testing.T) {
	assert.Equal(t, seedID("plan", "prueba"), seedID("plan", "prueba"))
	assert.NotEqual(t, seedID("plan", "prueba"), seedID("user", "prueba"))
}
