package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	UserUC    *usecase.UserUseCase
	ContactUC *usecase.ContactUseCase
	Users     repository.UserRepository
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: login y flujo de reseteo)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password-reset/request", authHandler.RequestPasswordReset)
	authGroup.Post("/password-reset/confirm", authHandler.ConfirmPasswordReset)

	// Rutas protegidas (requieren Bearer Token de un usuario activo)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/password-change", authHandler.ChangePassword)

	// Users (protegido, solo superusuarios)
	users := protected.Group("/users", RequireSuperuser())
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Contacts (protegido)
	contacts := protected.Group("/contacts")
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Get("/", contactHandler.List)
	contacts.Post("/", contactHandler.Create)
	contacts.Get("/:id", contactHandler.GetByID)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Delete("/:id", contactHandler.Delete)
}
