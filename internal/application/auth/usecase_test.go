package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/infrastructure/inmemory"
	"github.com/jhoicas/crm-api/pkg/password"
	"github.com/jhoicas/crm-api/pkg/token"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "base-crm-test"
	testPassword = "ClaveOriginal123"
)

var testTokenCfg = auth.TokenConfig{
	Secret:     testSecret,
	Issuer:     testIssuer,
	ExpMinutes: 60,
}

// seedUser crea un usuario con password hasheado en el repositorio en memoria.
func seedUser(t *testing.T, repo *inmemory.UserRepository, email string, active bool) *entity.User {
	t.Helper()
	hash, err := password.Hash(testPassword)
	require.NoError(t, err)

	now := time.Now().UTC()
	user := &entity.User{
		ID:              "user-" + email,
		Email:           email,
		HashedPassword:  hash,
		Nombres:         "Ana",
		Apellidos:       "García",
		IsActive:        active,
		ThemePreference: "light",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenConSubject(t *testing.T) {
	repo := inmemory.NewUserRepository()
	user := seedUser(t, repo, "ana@example.com", true)
	uc := auth.NewUseCase(repo, testTokenCfg)

	tok, got, err := uc.Login(context.Background(), "ana@example.com", testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.Equal(t, user.ID, got.ID)

	subject, err := token.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject, "el subject del token debe ser el ID del usuario")
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := inmemory.NewUserRepository()
	seedUser(t, repo, "ana@example.com", true)
	uc := auth.NewUseCase(repo, testTokenCfg)

	_, _, err := uc.Login(context.Background(), "ana@example.com", "clave-equivocada")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_EmailInexistente(t *testing.T) {
	repo := inmemory.NewUserRepository()
	uc := auth.NewUseCase(repo, testTokenCfg)

	// Mismo error que password incorrecto: no revela si la cuenta existe
	_, _, err := uc.Login(context.Background(), "nadie@example.com", testPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := inmemory.NewUserRepository()
	seedUser(t, repo, "inactiva@example.com", false)
	uc := auth.NewUseCase(repo, testTokenCfg)

	_, _, err := uc.Login(context.Background(), "inactiva@example.com", testPassword)
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
}

func TestLogin_UsuarioEliminado(t *testing.T) {
	repo := inmemory.NewUserRepository()
	user := seedUser(t, repo, "borrada@example.com", true)
	_, err := repo.Delete(context.Background(), user.ID)
	require.NoError(t, err)
	uc := auth.NewUseCase(repo, testTokenCfg)

	_, _, err = uc.Login(context.Background(), "borrada@example.com", testPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reseteo de password
// ──────────────────────────────────────────────────────────────────────────────

func TestPasswordReset_FlujoCompleto(t *testing.T) {
	repo := inmemory.NewUserRepository()
	seedUser(t, repo, "ana@example.com", true)
	uc := auth.NewUseCase(repo, testTokenCfg)

	tok, err := uc.RequestPasswordReset(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	_, err = uc.ConfirmPasswordReset(context.Background(), tok, "ClaveNueva456")
	require.NoError(t, err)

	// El password anterior deja de funcionar; el nuevo sí
	_, _, err = uc.Login(context.Background(), "ana@example.com", testPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, _, err = uc.Login(context.Background(), "ana@example.com", "ClaveNueva456")
	assert.NoError(t, err)
}

func TestPasswordReset_EmailInexistente(t *testing.T) {
	repo := inmemory.NewUserRepository()
	uc := auth.NewUseCase(repo, testTokenCfg)

	_, err := uc.RequestPasswordReset(context.Background(), "nadie@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPasswordReset_TokenValidoEnElInstanteExactoDeExpiracion(t *testing.T) {
	repo := inmemory.NewUserRepository()
	seedUser(t, repo, "ana@example.com", true)

	issued := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := auth.NewUseCase(repo, testTokenCfg).WithClock(fixedClock(issued))

	tok, err := uc.RequestPasswordReset(context.Background(), "ana@example.com")
	require.NoError(t, err)

	// En el instante exacto now + 1h el token todavía es válido
	uc.WithClock(fixedClock(issued.Add(time.Hour)))
	_, err = uc.VerifyPasswordResetToken(context.Background(), tok)
	assert.NoError(t, err)
}

func TestPasswordReset_TokenExpiradoUnSegundoDespues(t *testing.T) {
	repo := inmemory.NewUserRepository()
	seedUser(t, repo, "ana@example.com", true)

	issued := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := auth.NewUseCase(repo, testTokenCfg).WithClock(fixedClock(issued))

	tok, err := uc.RequestPasswordReset(context.Background(), "ana@example.com")
	require.NoError(t, err)

	uc.WithClock(fixedClock(issued.Add(time.Hour + time.Second)))
	_, err = uc.VerifyPasswordResetToken(context.Background(), tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = uc.ConfirmPasswordReset(context.Background(), tok, "ClaveNueva456")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestPasswordReset_NuevaSolicitudInvalidaTokenAnterior(t *testing.T) {
	repo := inmemory.NewUserRepository()
	seedUser(t, repo, "ana@example.com", true)
	uc := auth.NewUseCase(repo, testTokenCfg)

	primero, err := uc.RequestPasswordReset(context.Background(), "ana@example.com")
	require.NoError(t, err)
	segundo, err := uc.RequestPasswordReset(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotEqual(t, primero, segundo)

	_, err = uc.VerifyPasswordResetToken(context.Background(), primero)
	assert.ErrorIs(t, err, domain.ErrInvalidToken, "el token anterior queda sobrescrito")
	_, err = uc.VerifyPasswordResetToken(context.Background(), segundo)
	assert.NoError(t, err)
}

func TestPasswordReset_ConfirmarLimpiaElToken(t *testing.T) {
	repo := inmemory.NewUserRepository()
	seedUser(t, repo, "ana@example.com", true)
	uc := auth.NewUseCase(repo, testTokenCfg)

	tok, err := uc.RequestPasswordReset(context.Background(), "ana@example.com")
	require.NoError(t, err)

	_, err = uc.ConfirmPasswordReset(context.Background(), tok, "ClaveNueva456")
	require.NoError(t, err)

	// Un token es de un solo uso
	_, err = uc.ConfirmPasswordReset(context.Background(), tok, "OtraClave789")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestPasswordReset_TokenDesconocido(t *testing.T) {
	repo := inmemory.NewUserRepository()
	uc := auth.NewUseCase(repo, testTokenCfg)

	_, err := uc.VerifyPasswordResetToken(context.Background(), "token-inventado")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambio de password autenticado
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_OK(t *testing.T) {
	repo := inmemory.NewUserRepository()
	user := seedUser(t, repo, "ana@example.com", true)
	uc := auth.NewUseCase(repo, testTokenCfg)

	_, err := uc.ChangePassword(context.Background(), user.ID, testPassword, "ClaveNueva456")
	require.NoError(t, err)

	_, _, err = uc.Login(context.Background(), "ana@example.com", "ClaveNueva456")
	assert.NoError(t, err)
}

func TestChangePassword_PasswordActualIncorrecto(t *testing.T) {
	repo := inmemory.NewUserRepository()
	user := seedUser(t, repo, "ana@example.com", true)
	uc := auth.NewUseCase(repo, testTokenCfg)

	_, err := uc.ChangePassword(context.Background(), user.ID, "clave-equivocada", "ClaveNueva456")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// El password original sigue vigente
	_, _, err = uc.Login(context.Background(), "ana@example.com", testPassword)
	assert.NoError(t, err)
}

func TestChangePassword_NoTocaUnReseteoPendiente(t *testing.T) {
	repo := inmemory.NewUserRepository()
	user := seedUser(t, repo, "ana@example.com", true)
	uc := auth.NewUseCase(repo, testTokenCfg)

	tok, err := uc.RequestPasswordReset(context.Background(), "ana@example.com")
	require.NoError(t, err)

	_, err = uc.ChangePassword(context.Background(), user.ID, testPassword, "ClaveNueva456")
	require.NoError(t, err)

	_, err = uc.VerifyPasswordResetToken(context.Background(), tok)
	assert.NoError(t, err, "el token de reseteo pendiente sigue vigente")
}
