package entity

import "time"

// User representa un usuario del sistema.
// HashedPassword es siempre un hash bcrypt, nunca texto plano.
// ResetToken y ResetTokenExpires están ambos presentes o ambos ausentes.
type User struct {
	ID                string
	Email             string
	HashedPassword    string
	Nombres           string
	Apellidos         string
	IsActive          bool
	IsSuperuser       bool
	ThemePreference   string // "light" por defecto
	ResetToken        *string
	ResetTokenExpires *time.Time
	IsDeleted         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NombreCompleto devuelve nombres + " " + apellidos (derivado, no almacenado).
func (u *User) NombreCompleto() string {
	return u.Nombres + " " + u.Apellidos
}

// ClearResetToken elimina el token de reseteo pendiente (estado NoPendingReset).
func (u *User) ClearResetToken() {
	u.ResetToken = nil
	u.ResetTokenExpires = nil
}
