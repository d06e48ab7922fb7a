// Package inmemory implementa los puertos de persistencia en memoria.
// Se usa en tests de usecases/middleware y para desarrollo sin PostgreSQL.
// Replica la semántica de los adaptadores postgres, incluido el soft delete.
package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository implementación en memoria de repository.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	store map[string]*entity.User
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{store: make(map[string]*entity.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		// Unicidad de email a nivel de tabla, incluyendo eliminados.
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.store[cp.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.store[id]
	if !ok || u.IsDeleted {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email && !u.IsDeleted {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.ResetToken != nil && *u.ResetToken == token && !u.IsDeleted {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []*entity.User
	for _, u := range r.store {
		if !u.IsDeleted {
			cp := *u
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })

	total := len(all)
	return page(all, limit, offset), total, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.store[user.ID]
	if !ok || existing.IsDeleted {
		return domain.ErrUserNotFound
	}
	for _, u := range r.store {
		if u.ID != user.ID && u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.store[cp.ID] = &cp
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.store[id]
	if !ok || u.IsDeleted {
		return nil, nil
	}
	prior := *u
	u.IsDeleted = true
	return &prior, nil
}

// page aplica limit/offset sobre una lista ya ordenada.
func page[E any](list []*E, limit, offset int) []*E {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
