package auth

import (
	"context"
	"time"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/password"
	"github.com/jhoicas/crm-api/pkg/token"
)

// resetTokenTTL vigencia del token de reseteo de password.
const resetTokenTTL = time.Hour

// TokenConfig configuración para emisión de tokens de acceso.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase casos de uso de autenticación: login, reseteo y cambio de password.
type UseCase struct {
	users repository.UserRepository
	cfg   TokenConfig
	now   func() time.Time // reloj UTC inyectable (tests de expiración)
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, cfg TokenConfig) *UseCase {
	return &UseCase{
		users: users,
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// WithClock reemplaza la fuente de tiempo (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Authenticate verifica email/password contra usuarios activos no eliminados.
// Nunca distingue "usuario inexistente" de "password incorrecto".
func (uc *UseCase) Authenticate(ctx context.Context, email, plain string) (*entity.User, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(plain, user.HashedPassword) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Login autentica y emite un token de acceso firmado con el ID como subject.
// Un usuario inactivo autentica pero no recibe token.
func (uc *UseCase) Login(ctx context.Context, email, plain string) (string, *entity.User, error) {
	user, err := uc.Authenticate(ctx, email, plain)
	if err != nil {
		return "", nil, err
	}
	if !user.IsActive {
		return "", nil, domain.ErrInactiveUser
	}
	tok, err := token.Generate(uc.cfg.Secret, user.ID, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return tok, user, nil
}

// RequestPasswordReset genera un token opaco de reseteo para el email dado,
// sobrescribiendo cualquier token pendiente, con expiración now + 1h.
// Devuelve ErrUserNotFound si el email no corresponde a un usuario no
// eliminado; el handler responde igual en ambos casos para evitar
// enumeración de cuentas.
func (uc *UseCase) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}

	tok, err := token.NewResetToken()
	if err != nil {
		return "", err
	}
	now := uc.now()
	expires := now.Add(resetTokenTTL)
	user.ResetToken = &tok
	user.ResetTokenExpires = &expires
	user.UpdatedAt = now

	if err := uc.users.Update(ctx, user); err != nil {
		return "", err
	}
	return tok, nil
}

// VerifyPasswordResetToken devuelve el usuario que posee el token si este
// sigue vigente. La expiración es estricta: en el instante exacto de
// expiración el token todavía es válido; después, no.
func (uc *UseCase) VerifyPasswordResetToken(ctx context.Context, tok string) (*entity.User, error) {
	user, err := uc.users.GetByResetToken(ctx, tok)
	if err != nil {
		return nil, err
	}
	if user == nil || user.ResetTokenExpires == nil {
		return nil, domain.ErrInvalidToken
	}
	if uc.now().After(*user.ResetTokenExpires) {
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}

// ConfirmPasswordReset valida el token, guarda el nuevo password hasheado y
// limpia el par reset_token/reset_token_expires (estado NoPendingReset).
func (uc *UseCase) ConfirmPasswordReset(ctx context.Context, tok, newPassword string) (*entity.User, error) {
	user, err := uc.VerifyPasswordResetToken(ctx, tok)
	if err != nil {
		return nil, err
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = hash
	user.ClearResetToken()
	user.UpdatedAt = uc.now()

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword cambia el password de un usuario ya autenticado verificando
// el password actual. No toca un token de reseteo pendiente.
func (uc *UseCase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) (*entity.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !password.Verify(currentPassword, user.HashedPassword) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = hash
	user.UpdatedAt = uc.now()

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
