package entity

import "time"

// ContactStatus estado del contacto en el pipeline comercial.
type ContactStatus string

const (
	ContactStatusProspecto  ContactStatus = "prospecto"
	ContactStatusCalificado ContactStatus = "calificado"
	ContactStatusCliente    ContactStatus = "cliente"
	ContactStatusInactivo   ContactStatus = "inactivo"
)

// Valid indica si el valor es uno de los estados conocidos.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusProspecto, ContactStatusCalificado, ContactStatusCliente, ContactStatusInactivo:
		return true
	}
	return false
}

// Contact representa un contacto del CRM.
// NombreCompleto se almacena de forma independiente: puede divergir de
// nombres+apellidos si el caller no lo recalcula.
type Contact struct {
	ID             string
	Nombres        string
	Apellidos      string
	NombreCompleto string
	Email          string
	Telefono       string
	Estado         ContactStatus
	Cedula         *string
	Ciudad         *string
	Pais           string
	Notas          *string
	IsDeleted      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
