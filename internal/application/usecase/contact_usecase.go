package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// defaultPais país por defecto de un contacto nuevo.
const defaultPais = "Colombia"

// ContactUseCase reglas de negocio para la gestión de contactos.
type ContactUseCase struct {
	contacts repository.ContactRepository
}

// NewContactUseCase construye el caso de uso con el puerto de persistencia.
func NewContactUseCase(contacts repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contacts: contacts}
}

// List devuelve una página de contactos filtrada y el total que satisface el
// filtro sin paginar.
func (uc *ContactUseCase) List(ctx context.Context, filter repository.ContactListFilter) ([]*entity.Contact, int, error) {
	return uc.contacts.ListFiltered(ctx, filter)
}

// Create crea un contacto. Si nombreCompleto viene vacío se deriva de
// nombres y apellidos; estado por defecto es prospecto.
func (uc *ContactUseCase) Create(ctx context.Context, in dto.CreateContactRequest) (*entity.Contact, error) {
	estado := entity.ContactStatusProspecto
	if in.Estado != "" {
		estado = entity.ContactStatus(in.Estado)
		if !estado.Valid() {
			return nil, domain.ErrInvalidInput
		}
	}

	nombreCompleto := in.NombreCompleto
	if nombreCompleto == "" {
		nombreCompleto = in.Nombres + " " + in.Apellidos
	}

	now := time.Now().UTC()
	contact := &entity.Contact{
		ID:             uuid.New().String(),
		Nombres:        in.Nombres,
		Apellidos:      in.Apellidos,
		NombreCompleto: nombreCompleto,
		Email:          in.Email,
		Telefono:       in.Telefono,
		Estado:         estado,
		Cedula:         in.Cedula,
		Ciudad:         in.Ciudad,
		Pais:           stringOr(in.Pais, defaultPais),
		Notas:          in.Notas,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// GetByID obtiene un contacto no eliminado. nil si no existe.
func (uc *ContactUseCase) GetByID(ctx context.Context, id string) (*entity.Contact, error) {
	return uc.contacts.GetByID(ctx, id)
}

// Update aplica una actualización parcial. Si nombres o apellidos vienen en
// el request, nombreCompleto se recalcula salvo que también venga explícito.
func (uc *ContactUseCase) Update(ctx context.Context, id string, in dto.UpdateContactRequest) (*entity.Contact, error) {
	contact, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, nil
	}

	if in.Nombres != nil {
		contact.Nombres = *in.Nombres
	}
	if in.Apellidos != nil {
		contact.Apellidos = *in.Apellidos
	}
	if in.Nombres != nil || in.Apellidos != nil {
		contact.NombreCompleto = contact.Nombres + " " + contact.Apellidos
	}
	if in.NombreCompleto != nil {
		contact.NombreCompleto = *in.NombreCompleto
	}
	if in.Email != nil {
		contact.Email = *in.Email
	}
	if in.Telefono != nil {
		contact.Telefono = *in.Telefono
	}
	if in.Estado != nil {
		estado := entity.ContactStatus(*in.Estado)
		if !estado.Valid() {
			return nil, domain.ErrInvalidInput
		}
		contact.Estado = estado
	}
	if in.Cedula != nil {
		contact.Cedula = in.Cedula
	}
	if in.Ciudad != nil {
		contact.Ciudad = in.Ciudad
	}
	if in.Pais != nil {
		contact.Pais = *in.Pais
	}
	if in.Notas != nil {
		contact.Notas = in.Notas
	}
	contact.UpdatedAt = time.Now().UTC()

	if err := uc.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete elimina (soft) un contacto y devuelve la entidad previa.
func (uc *ContactUseCase) Delete(ctx context.Context, id string) (*entity.Contact, error) {
	return uc.contacts.Delete(ctx, id)
}
