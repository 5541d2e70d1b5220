// Package memory guarda as entidades em mapas protegidos por mutex.
// Serve para testes e execução local sem Postgres; os índices únicos
// do banco são emulados aqui para que uma escrita perdedora também
// receba ErrDataIntegrity.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/zebodega/vendas/internal/domain"
)

type ClienteRepo struct {
	mu     sync.RWMutex
	items  map[uint]domain.Cliente
	nextID uint
}

func NewClienteRepo() *ClienteRepo {
	return &ClienteRepo{items: make(map[uint]domain.Cliente), nextID: 1}
}

func (r *ClienteRepo) FindByID(_ context.Context, id uint) (*domain.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *ClienteRepo) FindAll(_ context.Context) ([]domain.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Cliente, 0, len(r.items))
	for _, c := range r.items {
		list = append(list, c)
	}
	return list, nil
}

func (r *ClienteRepo) ExistsByCPF(_ context.Context, cpf string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (r *ClienteRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if strings.EqualFold(c.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *ClienteRepo) Save(_ context.Context, c *domain.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, other := range r.items {
		if id == c.ID {
			continue
		}
		if other.CPF == c.CPF || strings.EqualFold(other.Email, c.Email) {
			return fmt.Errorf("chave duplicada: %w", domain.ErrDataIntegrity)
		}
	}
	if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	}
	r.items[c.ID] = *c
	return nil
}

func (r *ClienteRepo) Delete(_ context.Context, c *domain.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, c.ID)
	return nil
}

var _ domain.ClienteRepo = (*ClienteRepo)(nil)
