package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, hashed_password, nombres, apellidos, is_active,
		is_superuser, theme_preference, reset_token, reset_token_expires,
		is_deleted, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	baseRepo[entity.User]
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{baseRepo[entity.User]{
		q:       q,
		table:   "users",
		columns: userColumns,
		scan:    scanUser,
	}}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Email, &u.HashedPassword, &u.Nombres, &u.Apellidos, &u.IsActive,
		&u.IsSuperuser, &u.ThemePreference, &u.ResetToken, &u.ResetTokenExpires,
		&u.IsDeleted, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. El email es único a nivel de tabla,
// incluyendo filas con soft delete.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, hashed_password, nombres, apellidos, is_active,
			is_superuser, theme_preference, reset_token, reset_token_expires,
			is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Email, user.HashedPassword, user.Nombres, user.Apellidos,
		user.IsActive, user.IsSuperuser, user.ThemePreference,
		user.ResetToken, user.ResetTokenExpires,
		user.IsDeleted, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario no eliminado por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getByID(ctx, id)
}

// GetByEmail obtiene un usuario no eliminado por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM users WHERE email = $1 AND is_deleted = FALSE", userColumns)
	u, err := scanUser(r.q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetByResetToken obtiene el usuario no eliminado que posee el token de reseteo.
// La validación de expiración es responsabilidad del caller.
func (r *UserRepo) GetByResetToken(ctx context.Context, token string) (*entity.User, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM users WHERE reset_token = $1 AND is_deleted = FALSE", userColumns)
	u, err := scanUser(r.q.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by reset token: %w", err)
	}
	return u, nil
}

// List devuelve una página de usuarios (orden por creación) y el total no eliminado.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int, error) {
	list, err := r.list(ctx, "created_at", limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.count(ctx, "")
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update persiste el estado completo del usuario (el usecase aplica los
// cambios parciales sobre la entidad cargada).
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET email = $2, hashed_password = $3, nombres = $4, apellidos = $5,
			is_active = $6, is_superuser = $7, theme_preference = $8,
			reset_token = $9, reset_token_expires = $10, updated_at = $11
		WHERE id = $1 AND is_deleted = FALSE`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Email, user.HashedPassword, user.Nombres, user.Apellidos,
		user.IsActive, user.IsSuperuser, user.ThemePreference,
		user.ResetToken, user.ResetTokenExpires, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete marca el usuario como eliminado (soft delete) y devuelve su estado previo.
func (r *UserRepo) Delete(ctx context.Context, id string) (*entity.User, error) {
	return r.softDelete(ctx, id)
}
