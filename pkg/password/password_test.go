package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("MiClaveSegura123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "MiClaveSegura123", hash, "el hash nunca debe ser el texto plano")
	assert.True(t, strings.HasPrefix(hash, "$2"), "debe ser un hash bcrypt")
	assert.True(t, password.Verify("MiClaveSegura123", hash))
}

func TestVerify_PasswordIncorrecto(t *testing.T) {
	hash, err := password.Hash("MiClaveSegura123")
	require.NoError(t, err)

	assert.False(t, password.Verify("otra-clave", hash))
}

func TestVerify_HashInvalido(t *testing.T) {
	assert.False(t, password.Verify("cualquiera", "no-es-un-hash-bcrypt"))
	assert.False(t, password.Verify("cualquiera", ""))
}

// Dos hashes del mismo password difieren por el salt, pero ambos verifican.
func TestHash_SaltAleatorio(t *testing.T) {
	h1, err := password.Hash("MiClaveSegura123")
	require.NoError(t, err)
	h2, err := password.Hash("MiClaveSegura123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, password.Verify("MiClaveSegura123", h1))
	assert.True(t, password.Verify("MiClaveSegura123", h2))
}
