package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver database/sql para goose
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/crm-api/migrations"
	"github.com/jhoicas/crm-api/pkg/config"
)

// RunMigrations aplica las migraciones embebidas pendientes (goose).
// Usa una conexión database/sql independiente del pool pgx.
func RunMigrations(cfg config.DBConfig) error {
	db, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("abrir conexión para migraciones: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("dialecto goose: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
