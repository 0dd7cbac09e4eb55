package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

func TestEmployee_MaskedIdentity(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		want     string
	}{
		{"documento completo", "12345678901", "8901****"},
		{"cinco dígitos", "12345", "2345****"},
		{"cuatro dígitos no se revelan", "1234", "****"},
		{"corto", "12", "****"},
		{"vacío", "", "****"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &entity.Employee{IdentityNumber: tt.identity}
			assert.Equal(t, tt.want, e.MaskedIdentity())
		})
	}
}
