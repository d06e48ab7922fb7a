package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Todas las lecturas excluyen registros con soft delete.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByResetToken(ctx context.Context, token string) (*entity.User, error)
	// List devuelve una página y el total de usuarios no eliminados.
	List(ctx context.Context, limit, offset int) ([]*entity.User, int, error)
	Update(ctx context.Context, user *entity.User) error
	// Delete marca is_deleted y devuelve el estado previo del usuario, o nil si no existe.
	Delete(ctx context.Context, id string) (*entity.User, error)
}
