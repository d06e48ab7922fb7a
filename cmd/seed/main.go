package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
	"github.com/jhoicas/crm-api/pkg/password"
)

const seedContactCount = 20

// Siembra los datos iniciales: el primer superusuario (credenciales vía
// FIRST_SUPERUSER_EMAIL / FIRST_SUPERUSER_PASSWORD) y contactos de ejemplo
// si la tabla está vacía. Idempotente: puede ejecutarse en cada despliegue.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	if err := postgres.RunMigrations(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)

	if err := seedSuperuser(ctx, userRepo, cfg.Bootstrap, log); err != nil {
		log.Fatal().Err(err).Msg("crear superusuario inicial")
	}
	if err := seedContacts(ctx, contactRepo, log); err != nil {
		log.Fatal().Err(err).Msg("sembrar contactos")
	}

	log.Info().Msg("seed completado")
}

func seedSuperuser(ctx context.Context, users repository.UserRepository, boot config.BootstrapConfig, log *logger.Logger) error {
	if boot.SuperuserEmail == "" || boot.SuperuserPassword == "" {
		log.Warn().Msg("FIRST_SUPERUSER_EMAIL/PASSWORD no definidos, se omite el superusuario")
		return nil
	}
	existing, err := users.GetByEmail(ctx, boot.SuperuserEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Info().Str("email", boot.SuperuserEmail).Msg("superusuario ya existe")
		return nil
	}

	hash, err := password.Hash(boot.SuperuserPassword)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:              uuid.New().String(),
		Email:           boot.SuperuserEmail,
		HashedPassword:  hash,
		Nombres:         boot.SuperuserNombres,
		Apellidos:       boot.SuperuserApellidos,
		IsActive:        true,
		IsSuperuser:     true,
		ThemePreference: "light",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := users.Create(ctx, user); err != nil {
		return err
	}
	log.Info().Str("email", user.Email).Msg("superusuario creado")
	return nil
}

func seedContacts(ctx context.Context, contacts repository.ContactRepository, log *logger.Logger) error {
	_, total, err := contacts.ListFiltered(ctx, repository.ContactListFilter{Limit: 1})
	if err != nil {
		return err
	}
	if total > 0 {
		log.Info().Int("total", total).Msg("ya existen contactos, se omite la siembra")
		return nil
	}

	estados := []entity.ContactStatus{
		entity.ContactStatusProspecto,
		entity.ContactStatusCalificado,
		entity.ContactStatusCliente,
		entity.ContactStatusInactivo,
	}
	faker := gofakeit.New(0)
	now := time.Now().UTC()

	for i := 0; i < seedContactCount; i++ {
		nombres := faker.FirstName()
		apellidos := faker.LastName()
		cedula := fmt.Sprintf("%d", faker.Number(10000000, 1999999999))
		ciudad := faker.City()
		notas := faker.Sentence(8)
		contact := &entity.Contact{
			ID:             uuid.New().String(),
			Nombres:        nombres,
			Apellidos:      apellidos,
			NombreCompleto: nombres + " " + apellidos,
			Email:          faker.Email(),
			Telefono:       faker.Phone(),
			Estado:         estados[i%len(estados)],
			Cedula:         &cedula,
			Ciudad:         &ciudad,
			Pais:           "Colombia",
			Notas:          &notas,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := contacts.Create(ctx, contact); err != nil {
			return err
		}
	}
	log.Info().Int("total", seedContactCount).Msg("contactos de ejemplo creados")
	return nil
}
