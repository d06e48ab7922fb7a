package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son recuperables
// en el boundary HTTP; ninguno es fatal para el proceso.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrInvalidCredentials cubre tanto usuario inexistente como password
	// incorrecto; el caller nunca distingue la causa.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInactiveUser       = errors.New("usuario inactivo")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrCannotDeleteSelf   = errors.New("no puedes eliminar tu propio usuario")
)
