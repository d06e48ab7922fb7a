package inmemory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepository)(nil)

// ContactRepository implementación en memoria de repository.ContactRepository.
type ContactRepository struct {
	mu    sync.RWMutex
	store map[string]*entity.Contact
}

// NewContactRepository construye el repositorio vacío.
func NewContactRepository() *ContactRepository {
	return &ContactRepository{store: make(map[string]*entity.Contact)}
}

func (r *ContactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.store {
		if c.Email == contact.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *contact
	r.store[cp.ID] = &cp
	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id string) (*entity.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.store[id]
	if !ok || c.IsDeleted {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *ContactRepository) ListFiltered(ctx context.Context, f repository.ContactListFilter) ([]*entity.Contact, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entity.Contact
	for _, c := range r.store {
		if c.IsDeleted || !matchEstado(c, f.Estados) || !matchSearch(c, f.Search) {
			continue
		}
		cp := *c
		matched = append(matched, &cp)
	}

	sortContacts(matched, f.SortField, f.SortOrder)

	// Total antes de aplicar limit/offset, en el mismo contexto filtrado.
	total := len(matched)
	return page(matched, f.Limit, f.Offset), total, nil
}

func matchEstado(c *entity.Contact, estados []entity.ContactStatus) bool {
	if len(estados) == 0 {
		return true
	}
	for _, e := range estados {
		if c.Estado == e {
			return true
		}
	}
	return false
}

func matchSearch(c *entity.Contact, search string) bool {
	if search == "" {
		return true
	}
	s := strings.ToLower(search)
	fields := []string{c.NombreCompleto, c.Email, c.Telefono}
	if c.Cedula != nil {
		fields = append(fields, *c.Cedula)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), s) {
			return true
		}
	}
	return false
}

// sortContacts ordena con el mismo allow-list que el adaptador postgres;
// un campo desconocido cae al orden por defecto (apellidos asc).
func sortContacts(list []*entity.Contact, field, order string) {
	key := func(c *entity.Contact) string {
		switch field {
		case "nombres":
			return c.Nombres
		case "nombre_completo":
			return c.NombreCompleto
		case "email":
			return c.Email
		case "telefono":
			return c.Telefono
		case "estado":
			return string(c.Estado)
		case "ciudad":
			return deref(c.Ciudad)
		case "pais":
			return c.Pais
		case "created_at":
			return c.CreatedAt.Format("2006-01-02T15:04:05.000000000")
		case "updated_at":
			return c.UpdatedAt.Format("2006-01-02T15:04:05.000000000")
		default:
			return c.Apellidos
		}
	}
	desc := strings.EqualFold(order, "desc")
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return key(list[i]) > key(list[j])
		}
		return key(list[i]) < key(list[j])
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *ContactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.store[contact.ID]
	if !ok || existing.IsDeleted {
		return domain.ErrNotFound
	}
	for _, c := range r.store {
		if c.ID != contact.ID && c.Email == contact.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *contact
	r.store[cp.ID] = &cp
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) (*entity.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.store[id]
	if !ok || c.IsDeleted {
		return nil, nil
	}
	prior := *c
	c.IsDeleted = true
	return &prior, nil
}
