package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/password"
)

// defaultTheme preferencia de tema inicial.
const defaultTheme = "light"

// UserUseCase reglas de negocio para la gestión de usuarios (solo superuser).
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List devuelve una página de usuarios y el total no eliminado.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]*entity.User, int, error) {
	return uc.users.List(ctx, limit, offset)
}

// Create crea un usuario hasheando el password antes de persistir.
// El texto plano nunca se almacena ni se registra en logs.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:              uuid.New().String(),
		Email:           in.Email,
		HashedPassword:  hash,
		Nombres:         in.Nombres,
		Apellidos:       in.Apellidos,
		IsActive:        boolOr(in.IsActive, true),
		IsSuperuser:     boolOr(in.IsSuperuser, false),
		ThemePreference: stringOr(in.ThemePreference, defaultTheme),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID obtiene un usuario no eliminado. nil si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.users.GetByID(ctx, id)
}

// Update aplica una actualización parcial: solo los campos presentes en el
// request sobrescriben la entidad cargada. Un password presente se rehashea.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*entity.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Nombres != nil {
		user.Nombres = *in.Nombres
	}
	if in.Apellidos != nil {
		user.Apellidos = *in.Apellidos
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.IsSuperuser != nil {
		user.IsSuperuser = *in.IsSuperuser
	}
	if in.ThemePreference != nil {
		user.ThemePreference = *in.ThemePreference
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hash
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete elimina (soft) un usuario. Un superusuario no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, id, currentUserID string) (*entity.User, error) {
	if id == currentUserID {
		return nil, domain.ErrCannotDeleteSelf
	}
	return uc.users.Delete(ctx, id)
}

func hashPassword(plain string) (string, error) {
	return password.Hash(plain)
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func stringOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
