package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/zebodega/vendas/internal/domain"
)

type UsuarioRepo struct {
	mu     sync.RWMutex
	items  map[uint]domain.Usuario
	nextID uint
}

func NewUsuarioRepo() *UsuarioRepo {
	return &UsuarioRepo{items: make(map[uint]domain.Usuario), nextID: 1}
}

func (r *UsuarioRepo) FindByID(_ context.Context, id uint) (*domain.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *UsuarioRepo) FindAll(_ context.Context) ([]domain.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Usuario, 0, len(r.items))
	for _, u := range r.items {
		list = append(list, u)
	}
	return list, nil
}

func (r *UsuarioRepo) FindByCliente(_ context.Context, clienteID uint) (*domain.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.ClienteID == clienteID {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UsuarioRepo) ExistsByCliente(_ context.Context, clienteID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.ClienteID == clienteID {
			return true, nil
		}
	}
	return false, nil
}

func (r *UsuarioRepo) Save(_ context.Context, u *domain.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, other := range r.items {
		if id == u.ID {
			continue
		}
		if strings.EqualFold(other.UserName, u.UserName) || other.ClienteID == u.ClienteID {
			return fmt.Errorf("chave duplicada: %w", domain.ErrDataIntegrity)
		}
	}
	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}
	r.items[u.ID] = *u
	return nil
}

func (r *UsuarioRepo) Delete(_ context.Context, u *domain.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[u.ID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, u.ID)
	return nil
}

var _ domain.UsuarioRepo = (*UsuarioRepo)(nil)
