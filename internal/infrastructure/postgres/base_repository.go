package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// baseRepo operaciones CRUD genéricas sobre una tabla con soft delete.
// Los repositorios concretos lo embeben y aportan los INSERT/UPDATE con
// columnas explícitas. Toda lectura excluye filas con is_deleted = TRUE.
type baseRepo[E any] struct {
	q       Querier
	table   string
	columns string // lista SELECT, en el orden que espera scan
	scan    func(row pgx.Row) (*E, error)
}

// getByID obtiene una entidad por ID, excluyendo soft delete. nil si no existe.
func (b *baseRepo[E]) getByID(ctx context.Context, id string) (*E, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = $1 AND is_deleted = FALSE", b.columns, b.table)
	e, err := b.scan(b.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", b.table, err)
	}
	return e, nil
}

// list devuelve una página ordenada de entidades no eliminadas.
func (b *baseRepo[E]) list(ctx context.Context, orderBy string, limit, offset int) ([]*E, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE is_deleted = FALSE ORDER BY %s LIMIT $1 OFFSET $2",
		b.columns, b.table, orderBy)
	rows, err := b.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", b.table, err)
	}
	defer rows.Close()
	var list []*E
	for rows.Next() {
		e, err := b.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", b.table, err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// count cuenta filas no eliminadas que cumplen el WHERE adicional (mismo
// contexto filtrado que la página devuelta, antes de limit/offset).
func (b *baseRepo[E]) count(ctx context.Context, extraWhere string, args ...any) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE is_deleted = FALSE", b.table)
	if extraWhere != "" {
		query += " AND " + extraWhere
	}
	var total int
	if err := b.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", b.table, err)
	}
	return total, nil
}

// softDelete marca is_deleted = TRUE y devuelve el estado previo de la
// entidad, o nil si no existe (o ya estaba eliminada).
func (b *baseRepo[E]) softDelete(ctx context.Context, id string) (*E, error) {
	prior, err := b.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, nil
	}
	query := fmt.Sprintf(
		"UPDATE %s SET is_deleted = TRUE, updated_at = $2 WHERE id = $1 AND is_deleted = FALSE",
		b.table)
	if _, err := b.q.Exec(ctx, query, id, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("soft delete %s: %w", b.table, err)
	}
	return prior, nil
}
