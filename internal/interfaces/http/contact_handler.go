package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ContactHandler maneja el CRUD de contactos (protegido).
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// List GET /api/contacts?page=1&size=20&search=&filter_estado=cliente&sort=apellidos&order=asc
// filter_estado puede repetirse; los valores se combinan con OR.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	page, size, limit, offset := parsePagination(c)

	var estados []entity.ContactStatus
	for _, raw := range c.Context().QueryArgs().PeekMulti("filter_estado") {
		estado := entity.ContactStatus(raw)
		if !estado.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filter_estado inválido: " + string(raw)})
		}
		estados = append(estados, estado)
	}

	filter := repository.ContactListFilter{
		Estados:   estados,
		Search:    c.Query("search"),
		SortField: c.Query("sort"),
		SortOrder: c.Query("order"),
		Limit:     limit,
		Offset:    offset,
	}
	contacts, total, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PaginatedResponse[*dto.ContactResponse]{
		Items: dto.ContactsFromEntities(contacts),
		Total: total,
		Page:  page,
		Size:  size,
	})
}

// Create POST /api/contacts
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombres == "" || in.Apellidos == "" || in.Email == "" || in.Telefono == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombres, apellidos, email y telefono son requeridos"})
	}
	contact, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "ya existe un contacto con ese email"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ContactFromEntity(contact))
}

// GetByID GET /api/contacts/:id
func (h *ContactHandler) GetByID(c *fiber.Ctx) error {
	contact, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if contact == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contacto no encontrado"})
	}
	return c.JSON(dto.ContactFromEntity(contact))
}

// Update PUT /api/contacts/:id
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contact, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "ya existe un contacto con ese email"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if contact == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contacto no encontrado"})
	}
	return c.JSON(dto.ContactFromEntity(contact))
}

// Delete DELETE /api/contacts/:id
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	contact, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if contact == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contacto no encontrado"})
	}
	return c.JSON(dto.ContactFromEntity(contact))
}
