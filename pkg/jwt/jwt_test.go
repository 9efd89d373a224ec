package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/nexus-estoque/api/pkg/jwt"
)

const (
	testSecret = "segredo-de-teste"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "nexus-test"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "maria", "gerente", testIssuer, 30)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testUserID, claims.Subject, "sub deve carregar o id do usuário")
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, "gerente", claims.Papel)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestJWT_TokenExpirado_RetornaErro(t *testing.T) {
	// Token com expiração -1 minuto (já expirado)
	tok, err := pkgjwt.Generate(testSecret, testUserID, "maria", "admin", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestJWT_SecretIncorreto_RetornaErro(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "maria", "admin", testIssuer, 30)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("outro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}

func TestJWT_SecretVazio_RetornaErro(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "maria", "admin", testIssuer, 30)
	assert.Error(t, err, "gerar com secret vazio deve falhar")

	_, err = pkgjwt.Parse("", "qualquer.token.aqui")
	assert.Error(t, err, "parsear com secret vazio deve falhar")
}
