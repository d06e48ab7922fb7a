package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

const contactColumns = `id, nombres, apellidos, nombre_completo, email, telefono,
		estado, cedula, ciudad, pais, notas, is_deleted, created_at, updated_at`

// defaultContactOrder orden por defecto del listado.
const defaultContactOrder = "apellidos"

// sortableContactColumns allow-list de columnas ordenables. Un sort_field
// desconocido cae al orden por defecto; nunca se interpola entrada del
// usuario directamente en el ORDER BY.
var sortableContactColumns = map[string]string{
	"nombres":         "nombres",
	"apellidos":       "apellidos",
	"nombre_completo": "nombre_completo",
	"email":           "email",
	"telefono":        "telefono",
	"estado":          "estado",
	"ciudad":          "ciudad",
	"pais":            "pais",
	"created_at":      "created_at",
	"updated_at":      "updated_at",
}

// ContactRepo implementación de ContactRepository sobre PostgreSQL (usable con pool o tx).
type ContactRepo struct {
	baseRepo[entity.Contact]
}

// NewContactRepository construye el adaptador de persistencia para contactos. Pasar pool o tx (Querier).
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{baseRepo[entity.Contact]{
		q:       q,
		table:   "contacts",
		columns: contactColumns,
		scan:    scanContact,
	}}
}

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var c entity.Contact
	err := row.Scan(
		&c.ID, &c.Nombres, &c.Apellidos, &c.NombreCompleto, &c.Email, &c.Telefono,
		&c.Estado, &c.Cedula, &c.Ciudad, &c.Pais, &c.Notas,
		&c.IsDeleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo contacto. Email único → domain.ErrDuplicate.
func (r *ContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, nombres, apellidos, nombre_completo, email, telefono,
			estado, cedula, ciudad, pais, notas, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		contact.ID, contact.Nombres, contact.Apellidos, contact.NombreCompleto,
		contact.Email, contact.Telefono, contact.Estado,
		contact.Cedula, contact.Ciudad, contact.Pais, contact.Notas,
		contact.IsDeleted, contact.CreatedAt, contact.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID obtiene un contacto no eliminado por ID.
func (r *ContactRepo) GetByID(ctx context.Context, id string) (*entity.Contact, error) {
	return r.getByID(ctx, id)
}

// ListFiltered lista contactos no eliminados con filtro por estados (OR),
// búsqueda por substring case-insensitive y orden dinámico. Devuelve también
// el total de filas que cumplen el filtro antes de limit/offset.
func (r *ContactRepo) ListFiltered(ctx context.Context, f repository.ContactListFilter) ([]*entity.Contact, int, error) {
	var conds []string
	var args []any

	if len(f.Estados) > 0 {
		estados := make([]string, len(f.Estados))
		for i, e := range f.Estados {
			estados[i] = string(e)
		}
		args = append(args, estados)
		conds = append(conds, fmt.Sprintf("estado = ANY($%d)", len(args)))
	}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(nombre_completo ILIKE $%d OR email ILIKE $%d OR telefono ILIKE $%d OR cedula ILIKE $%d)",
			n, n, n, n))
	}

	extraWhere := strings.Join(conds, " AND ")

	total, err := r.count(ctx, extraWhere, args...)
	if err != nil {
		return nil, 0, err
	}

	where := "is_deleted = FALSE"
	if extraWhere != "" {
		where += " AND " + extraWhere
	}

	query := fmt.Sprintf(
		"SELECT %s FROM contacts WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		contactColumns, where, contactOrderBy(f.SortField, f.SortOrder),
		len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// contactOrderBy resuelve la cláusula ORDER BY desde el allow-list.
func contactOrderBy(field, order string) string {
	col, ok := sortableContactColumns[field]
	if !ok {
		col = defaultContactOrder
	}
	dir := "ASC"
	if strings.EqualFold(order, "desc") {
		dir = "DESC"
	}
	return col + " " + dir
}

// Update persiste el estado completo del contacto.
func (r *ContactRepo) Update(ctx context.Context, contact *entity.Contact) error {
	query := `
		UPDATE contacts SET nombres = $2, apellidos = $3, nombre_completo = $4,
			email = $5, telefono = $6, estado = $7, cedula = $8, ciudad = $9,
			pais = $10, notas = $11, updated_at = $12
		WHERE id = $1 AND is_deleted = FALSE`
	_, err := r.q.Exec(ctx, query,
		contact.ID, contact.Nombres, contact.Apellidos, contact.NombreCompleto,
		contact.Email, contact.Telefono, contact.Estado,
		contact.Cedula, contact.Ciudad, contact.Pais, contact.Notas,
		contact.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// Delete marca el contacto como eliminado (soft delete) y devuelve su estado previo.
func (r *ContactRepo) Delete(ctx context.Context, id string) (*entity.Contact, error) {
	return r.softDelete(ctx, id)
}
