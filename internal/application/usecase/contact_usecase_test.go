package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/infrastructure/inmemory"
)

func strPtr(s string) *string { return &s }

// seedContacts crea n contactos con el estado dado vía el usecase.
func seedContacts(t *testing.T, uc *usecase.ContactUseCase, n int, estado entity.ContactStatus, prefix string) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := uc.Create(context.Background(), dto.CreateContactRequest{
			Nombres:   fmt.Sprintf("%s%02d", prefix, i),
			Apellidos: fmt.Sprintf("Apellido%02d", i),
			Email:     fmt.Sprintf("%s%02d@example.com", prefix, i),
			Telefono:  fmt.Sprintf("+57 300 %s %04d", prefix, i),
			Estado:    string(estado),
		})
		require.NoError(t, err)
	}
}

func TestContactCreate_Defaults(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())

	contact, err := uc.Create(context.Background(), dto.CreateContactRequest{
		Nombres:   "Carlos",
		Apellidos: "Pérez",
		Email:     "carlos@example.com",
		Telefono:  "+57 300 1234567",
	})
	require.NoError(t, err)

	assert.Equal(t, "Carlos Pérez", contact.NombreCompleto, "nombre completo derivado de nombres y apellidos")
	assert.Equal(t, entity.ContactStatusProspecto, contact.Estado)
	assert.Equal(t, "Colombia", contact.Pais)
	assert.NotEmpty(t, contact.ID)
	assert.False(t, contact.CreatedAt.IsZero())
}

func TestContactCreate_NombreCompletoExplicito(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())

	contact, err := uc.Create(context.Background(), dto.CreateContactRequest{
		Nombres:        "Carlos",
		Apellidos:      "Pérez",
		NombreCompleto: "Dr. Carlos Pérez Gómez",
		Email:          "carlos@example.com",
		Telefono:       "+57 300 1234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Carlos Pérez Gómez", contact.NombreCompleto)
}

func TestContactCreate_EstadoInvalido(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())

	_, err := uc.Create(context.Background(), dto.CreateContactRequest{
		Nombres:   "Carlos",
		Apellidos: "Pérez",
		Email:     "carlos@example.com",
		Telefono:  "+57 300 1234567",
		Estado:    "VIP",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContactCreate_EmailDuplicado(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())

	in := dto.CreateContactRequest{
		Nombres:   "Carlos",
		Apellidos: "Pérez",
		Email:     "carlos@example.com",
		Telefono:  "+57 300 1234567",
	}
	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// 10 prospecto + 15 cliente: filtrar por cliente con páginas de 10 debe dar
// 10 + 5 items y total 15 en ambas páginas.
func TestContactList_FiltroEstadoConPaginacion(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())
	seedContacts(t, uc, 10, entity.ContactStatusProspecto, "pros")
	seedContacts(t, uc, 15, entity.ContactStatusCliente, "clie")

	filter := repository.ContactListFilter{
		Estados: []entity.ContactStatus{entity.ContactStatusCliente},
		Limit:   10,
		Offset:  0,
	}
	page1, total, err := uc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, page1, 10)
	assert.Equal(t, 15, total, "total filtrado antes de paginar")

	filter.Offset = 10
	page2, total, err := uc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, page2, 5)
	assert.Equal(t, 15, total)
}

func TestContactList_FiltroVariosEstados(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())
	seedContacts(t, uc, 3, entity.ContactStatusProspecto, "pros")
	seedContacts(t, uc, 4, entity.ContactStatusCliente, "clie")
	seedContacts(t, uc, 5, entity.ContactStatusInactivo, "inac")

	_, total, err := uc.List(context.Background(), repository.ContactListFilter{
		Estados: []entity.ContactStatus{entity.ContactStatusProspecto, entity.ContactStatusCliente},
		Limit:   100,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, total, "los estados del filtro se combinan con OR")
}

func TestContactList_BusquedaCaseInsensitive(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())
	_, err := uc.Create(context.Background(), dto.CreateContactRequest{
		Nombres:   "María",
		Apellidos: "Rodríguez",
		Email:     "Maria.Rodriguez@Example.com",
		Telefono:  "+57 310 9876543",
	})
	require.NoError(t, err)
	seedContacts(t, uc, 3, entity.ContactStatusProspecto, "otro")

	// Por email, sin importar mayúsculas
	got, total, err := uc.List(context.Background(), repository.ContactListFilter{Search: "maria.rodriguez", Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "María Rodríguez", got[0].NombreCompleto)

	// Por teléfono
	_, total, err = uc.List(context.Background(), repository.ContactListFilter{Search: "310 987", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestContactList_OrdenPorDefectoYDescendente(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())
	for i, ap := range []string{"Zapata", "Arango", "Mejía"} {
		_, err := uc.Create(context.Background(), dto.CreateContactRequest{
			Nombres:   "Nombre",
			Apellidos: ap,
			Email:     fmt.Sprintf("orden%d@example.com", i),
			Telefono:  fmt.Sprintf("+57 300 000%d", i),
		})
		require.NoError(t, err)
	}

	got, _, err := uc.List(context.Background(), repository.ContactListFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Arango", got[0].Apellidos, "orden por defecto: apellidos ascendente")
	assert.Equal(t, "Zapata", got[2].Apellidos)

	got, _, err = uc.List(context.Background(), repository.ContactListFilter{SortField: "apellidos", SortOrder: "desc", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "Zapata", got[0].Apellidos)
}

// Una columna de orden desconocida no es un error: cae al orden por defecto.
func TestContactList_SortFieldDesconocido(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())
	seedContacts(t, uc, 3, entity.ContactStatusProspecto, "pros")

	got, total, err := uc.List(context.Background(), repository.ContactListFilter{SortField: "hashed_password", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, got, 3)
}

func TestContactUpdate_RecalculaNombreCompleto(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())
	contact, err := uc.Create(context.Background(), dto.CreateContactRequest{
		Nombres:   "Carlos",
		Apellidos: "Pérez",
		Email:     "carlos@example.com",
		Telefono:  "+57 300 1234567",
	})
	require.NoError(t, err)

	got, err := uc.Update(context.Background(), contact.ID, dto.UpdateContactRequest{
		Apellidos: strPtr("Gómez"),
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Carlos Gómez", got.NombreCompleto, "cambiar apellidos recalcula el nombre completo")
}

func TestContactUpdate_NombreCompletoExplicitoGana(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())
	contact, err := uc.Create(context.Background(), dto.CreateContactRequest{
		Nombres:   "Carlos",
		Apellidos: "Pérez",
		Email:     "carlos@example.com",
		Telefono:  "+57 300 1234567",
	})
	require.NoError(t, err)

	got, err := uc.Update(context.Background(), contact.ID, dto.UpdateContactRequest{
		Apellidos:      strPtr("Gómez"),
		NombreCompleto: strPtr("Ing. Carlos Gómez"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ing. Carlos Gómez", got.NombreCompleto)
}

func TestContactUpdate_EstadoInvalido(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())
	contact, err := uc.Create(context.Background(), dto.CreateContactRequest{
		Nombres:   "Carlos",
		Apellidos: "Pérez",
		Email:     "carlos@example.com",
		Telefono:  "+57 300 1234567",
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), contact.ID, dto.UpdateContactRequest{Estado: strPtr("premium")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContactUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())

	got, err := uc.Update(context.Background(), "no-existe", dto.UpdateContactRequest{Notas: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestContactDelete_ExcluyeDeListadosYLecturas(t *testing.T) {
	uc := usecase.NewContactUseCase(inmemory.NewContactRepository())
	seedContacts(t, uc, 2, entity.ContactStatusProspecto, "pros")
	contact, err := uc.Create(context.Background(), dto.CreateContactRequest{
		Nombres:   "Carlos",
		Apellidos: "Pérez",
		Email:     "carlos@example.com",
		Telefono:  "+57 300 1234567",
	})
	require.NoError(t, err)

	prior, err := uc.Delete(context.Background(), contact.ID)
	require.NoError(t, err)
	require.NotNil(t, prior)
	assert.Equal(t, contact.ID, prior.ID)

	got, err := uc.GetByID(context.Background(), contact.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "un contacto eliminado no se lee por ID")

	_, total, err := uc.List(context.Background(), repository.ContactListFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total, "un contacto eliminado no cuenta en listados")

	// Borrar dos veces: la segunda no encuentra nada
	prior, err = uc.Delete(context.Background(), contact.ID)
	require.NoError(t, err)
	assert.Nil(t, prior)
}
