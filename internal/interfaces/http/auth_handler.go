package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
)

// resetRequestMessage respuesta única del endpoint de solicitud de reseteo,
// exista o no el email, para no permitir enumerar cuentas.
const resetRequestMessage = "Si el email existe, recibirás un enlace para restablecer tu contraseña"

// AuthHandler maneja login, sesión actual y flujo de password.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	tok, _, err := h.uc.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		if errors.Is(err, domain.ErrInactiveUser) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INACTIVE", Message: "usuario inactivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.TokenResponse{AccessToken: tok, TokenType: "bearer"})
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := GetCurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	return c.JSON(dto.UserFromEntity(user))
}

// RequestPasswordReset godoc
// @Summary      Solicitar reseteo de password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PasswordResetRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/auth/password-reset/request [post]
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var in dto.PasswordResetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	_, err := h.uc.RequestPasswordReset(c.Context(), in.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: resetRequestMessage})
}

// ConfirmPasswordReset godoc
// @Summary      Confirmar reseteo de password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PasswordResetConfirm  true  "token, new_password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var in dto.PasswordResetConfirm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Token == "" || in.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token y new_password son requeridos"})
	}
	if len(in.NewPassword) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "new_password debe tener al menos 8 caracteres"})
	}
	if _, err := h.uc.ConfirmPasswordReset(c.Context(), in.Token, in.NewPassword); err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Contraseña actualizada correctamente"})
}

// ChangePassword godoc
// @Summary      Cambiar password del usuario autenticado
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PasswordChange  true  "current_password, new_password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/password-change [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user := GetCurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.PasswordChange
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "current_password y new_password son requeridos"})
	}
	if len(in.NewPassword) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "new_password debe tener al menos 8 caracteres"})
	}
	if _, err := h.uc.ChangePassword(c.Context(), user.ID, in.CurrentPassword, in.NewPassword); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PASSWORD", Message: "password actual incorrecto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Contraseña actualizada correctamente"})
}
