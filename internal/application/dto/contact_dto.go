package dto

import (
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// CreateContactRequest entrada para crear un contacto.
// NombreCompleto es opcional: si viene vacío se deriva de nombres+apellidos.
type CreateContactRequest struct {
	Nombres        string  `json:"nombres" validate:"required"`
	Apellidos      string  `json:"apellidos" validate:"required"`
	NombreCompleto string  `json:"nombreCompleto"`
	Email          string  `json:"email" validate:"required,email"`
	Telefono       string  `json:"telefono" validate:"required"`
	Estado         string  `json:"estado" validate:"omitempty,oneof=prospecto calificado cliente inactivo"`
	Cedula         *string `json:"cedula"`
	Ciudad         *string `json:"ciudad"`
	Pais           string  `json:"pais"`
	Notas          *string `json:"notas"`
}

// UpdateContactRequest actualización parcial: solo los campos presentes se aplican.
type UpdateContactRequest struct {
	Nombres        *string `json:"nombres"`
	Apellidos      *string `json:"apellidos"`
	NombreCompleto *string `json:"nombreCompleto"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Telefono       *string `json:"telefono"`
	Estado         *string `json:"estado" validate:"omitempty,oneof=prospecto calificado cliente inactivo"`
	Cedula         *string `json:"cedula"`
	Ciudad         *string `json:"ciudad"`
	Pais           *string `json:"pais"`
	Notas          *string `json:"notas"`
}

// ContactResponse salida de un contacto.
type ContactResponse struct {
	ID             string    `json:"id"`
	Nombres        string    `json:"nombres"`
	Apellidos      string    `json:"apellidos"`
	NombreCompleto string    `json:"nombreCompleto"`
	Email          string    `json:"email"`
	Telefono       string    `json:"telefono"`
	Estado         string    `json:"estado"`
	Cedula         *string   `json:"cedula"`
	Ciudad         *string   `json:"ciudad"`
	Pais           string    `json:"pais"`
	Notas          *string   `json:"notas"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ContactFromEntity convierte la entidad a su representación pública.
func ContactFromEntity(c *entity.Contact) *ContactResponse {
	if c == nil {
		return nil
	}
	return &ContactResponse{
		ID:             c.ID,
		Nombres:        c.Nombres,
		Apellidos:      c.Apellidos,
		NombreCompleto: c.NombreCompleto,
		Email:          c.Email,
		Telefono:       c.Telefono,
		Estado:         string(c.Estado),
		Cedula:         c.Cedula,
		Ciudad:         c.Ciudad,
		Pais:           c.Pais,
		Notas:          c.Notas,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ContactsFromEntities convierte una página de entidades.
func ContactsFromEntities(contacts []*entity.Contact) []*ContactResponse {
	out := make([]*ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ContactFromEntity(c))
	}
	return out
}
