package dto

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el usecase).
type CreateUserRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Nombres         string `json:"nombres" validate:"required"`
	Apellidos       string `json:"apellidos" validate:"required"`
	IsActive        *bool  `json:"isActive"`    // default true
	IsSuperuser     *bool  `json:"isSuperuser"` // default false
	ThemePreference string `json:"themePreference"`
}

// UpdateUserRequest actualización parcial: solo los campos presentes se aplican.
type UpdateUserRequest struct {
	Email           *string `json:"email" validate:"omitempty,email"`
	Password        *string `json:"password" validate:"omitempty,min=8"`
	Nombres         *string `json:"nombres"`
	Apellidos       *string `json:"apellidos"`
	IsActive        *bool   `json:"isActive"`
	IsSuperuser     *bool   `json:"isSuperuser"`
	ThemePreference *string `json:"themePreference"`
}

// UserResponse salida de un usuario (nunca incluye el hash del password).
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Nombres         string    `json:"nombres"`
	Apellidos       string    `json:"apellidos"`
	NombreCompleto  string    `json:"nombreCompleto"`
	IsActive        bool      `json:"isActive"`
	IsSuperuser     bool      `json:"isSuperuser"`
	ThemePreference string    `json:"themePreference"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserFromEntity convierte la entidad a su representación pública.
func UserFromEntity(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Nombres:         u.Nombres,
		Apellidos:       u.Apellidos,
		NombreCompleto:  u.NombreCompleto(),
		IsActive:        u.IsActive,
		IsSuperuser:     u.IsSuperuser,
		ThemePreference: u.ThemePreference,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// UsersFromEntities convierte una página de entidades.
func UsersFromEntities(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserFromEntity(u))
	}
	return out
}
