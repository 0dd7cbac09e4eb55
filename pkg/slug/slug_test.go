package slug_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Saas-api/pkg/slug"
)

func TestMake_Translitera(t *testing.T) {
	cases := map[string]string{
		"Compañía Ñandú S.A.S.":   "compania-nandu-s-a-s",
		"  Sucursal   Principal ": "sucursal-principal",
		"Işık Yazılım A.Ş.":       "isik-yazilim-a-s",
		"Größe & Co":              "grosse-co",
		"---":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), "entrada %q", in)
	}
}

func TestUnique_AgregaSufijo(t *testing.T) {
	usados := map[string]bool{"acme": true, "acme-1": true}
	got, err := slug.Unique("acme", func(c string) (bool, error) { return usados[c], nil })
	require.NoError(t, err)
	assert.Equal(t, "acme-2", got)

	got, err = slug.Unique("libre", func(c string) (bool, error) { return usados[c], nil })
	require.NoError(t, err)
	assert.Equal(t, "libre", got)
}

func TestUnique_PropagaError(t *testing.T) {
	boom := errors.New("db caída")
	_, err := slug.Unique("acme", func(string) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}
