package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/token"
)

// LocalUser clave de Locals con el usuario autenticado.
const LocalUser = "current_user"

// AuthMiddleware valida el Bearer Token JWT, resuelve el usuario del subject
// y lo deja en c.Locals. Un token cuyo usuario fue eliminado es inválido; un
// usuario inactivo recibe 403.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, err := token.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INACTIVE", Message: "usuario inactivo"})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// GetCurrentUser devuelve el usuario del contexto (después del middleware de auth).
func GetCurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// RequireSuperuser corta con 403 si el usuario autenticado no es superusuario.
func RequireSuperuser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		}
		if !user.IsSuperuser {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requieren privilegios de superusuario"})
		}
		return c.Next()
	}
}
