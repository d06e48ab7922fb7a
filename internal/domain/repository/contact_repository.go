package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ContactListFilter filtros para el listado de contactos.
type ContactListFilter struct {
	Estados   []entity.ContactStatus // OR entre estados; vacío = todos
	Search    string                 // substring case-insensitive sobre nombre_completo, email, telefono, cedula
	SortField string                 // campos fuera del allow-list caen al orden por defecto (apellidos asc)
	SortOrder string                 // "asc" (default) o "desc"
	Limit     int
	Offset    int
}

// ContactRepository define el puerto de persistencia para Contact (DIP).
// Todas las lecturas excluyen registros con soft delete.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	GetByID(ctx context.Context, id string) (*entity.Contact, error)
	// ListFiltered devuelve la página y el total de filas que cumplen el filtro
	// (contado antes de aplicar limit/offset, en el mismo contexto filtrado).
	ListFiltered(ctx context.Context, filter ContactListFilter) ([]*entity.Contact, int, error)
	Update(ctx context.Context, contact *entity.Contact) error
	// Delete marca is_deleted y devuelve el estado previo del contacto, o nil si no existe.
	Delete(ctx context.Context, id string) (*entity.Contact, error)
}
