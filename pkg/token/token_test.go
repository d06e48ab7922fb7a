package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/pkg/token"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "base-crm-test"
	testExpMin = 60
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := token.Generate(testSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, err := token.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, subject)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración -1 minuto: ya expirado al emitirse
	tok, err := token.Generate(testSecret, testUserID, testIssuer, -1)
	require.NoError(t, err)

	_, err = token.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := token.Generate(testSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = token.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, err := token.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := token.Generate("", testUserID, testIssuer, testExpMin)
	assert.Error(t, err)
}

func TestNewResetToken(t *testing.T) {
	tok, err := token.NewResetToken()
	require.NoError(t, err)

	// 32 bytes en base64url sin padding: 43 caracteres URL-safe
	assert.Len(t, tok, 43)
	assert.NotContains(t, tok, "+")
	assert.NotContains(t, tok, "/")
	assert.NotContains(t, tok, "=")
}

func TestNewResetToken_NoSeRepite(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := token.NewResetToken()
		require.NoError(t, err)
		assert.False(t, seen[tok], "los tokens de reseteo no deben repetirse")
		seen[tok] = true
	}
}
