package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexus-estoque/api/internal/domain/entity"
)

// Matriz completa da hierarquia admin > gerente > usuario.
func TestPapelAtende_Matriz(t *testing.T) {
	cases := []struct {
		papel  string
		minimo string
		want   bool
	}{
		{entity.PapelAdmin, entity.PapelAdmin, true},
		{entity.PapelAdmin, entity.PapelGerente, true},
		{entity.PapelAdmin, entity.PapelUsuario, true},
		{entity.PapelGerente, entity.PapelAdmin, false},
		{entity.PapelGerente, entity.PapelGerente, true},
		{entity.PapelGerente, entity.PapelUsuario, true},
		{entity.PapelUsuario, entity.PapelAdmin, false},
		{entity.PapelUsuario, entity.PapelGerente, false},
		{entity.PapelUsuario, entity.PapelUsuario, true},
		// papel desconhecido fica abaixo de todos
		{"estagiario", entity.PapelUsuario, false},
		{"", entity.PapelUsuario, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.PapelAtende(c.papel, c.minimo),
			"PapelAtende(%q, %q)", c.papel, c.minimo)
	}
}

func TestNivelDoPapel(t *testing.T) {
	assert.Equal(t, 3, entity.NivelDoPapel(entity.PapelAdmin))
	assert.Equal(t, 2, entity.NivelDoPapel(entity.PapelGerente))
	assert.Equal(t, 1, entity.NivelDoPapel(entity.PapelUsuario))
	assert.Equal(t, 0, entity.NivelDoPapel("qualquer-outro"))
}

func TestPapelValido(t *testing.T) {
	assert.True(t, entity.PapelValido(entity.PapelAdmin))
	assert.True(t, entity.PapelValido(entity.PapelGerente))
	assert.True(t, entity.PapelValido(entity.PapelUsuario))
	assert.False(t, entity.PapelValido(""))
	assert.False(t, entity.PapelValido("root"))
}
