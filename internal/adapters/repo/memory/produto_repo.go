package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/zebodega/vendas/internal/domain"
)

type ProdutoRepo struct {
	mu     sync.RWMutex
	items  map[uint]domain.Produto
	nextID uint
}

func NewProdutoRepo() *ProdutoRepo {
	return &ProdutoRepo{items: make(map[uint]domain.Produto), nextID: 1}
}

func (r *ProdutoRepo) FindByID(_ context.Context, id uint) (*domain.Produto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *ProdutoRepo) FindAll(_ context.Context) ([]domain.Produto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Produto, 0, len(r.items))
	for _, p := range r.items {
		list = append(list, p)
	}
	return list, nil
}

func (r *ProdutoRepo) FindByNome(_ context.Context, nome string) (*domain.Produto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := strings.TrimSpace(nome)
	for _, p := range r.items {
		if strings.EqualFold(p.Nome, n) {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ProdutoRepo) ExistsByNome(_ context.Context, nome string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := strings.TrimSpace(nome)
	for _, p := range r.items {
		if strings.EqualFold(p.Nome, n) {
			return true, nil
		}
	}
	return false, nil
}

func (r *ProdutoRepo) Save(_ context.Context, p *domain.Produto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, other := range r.items {
		if id != p.ID && strings.EqualFold(other.Nome, p.Nome) {
			return fmt.Errorf("chave duplicada: %w", domain.ErrDataIntegrity)
		}
	}
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.items[p.ID] = *p
	return nil
}

func (r *ProdutoRepo) Delete(_ context.Context, p *domain.Produto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, p.ID)
	return nil
}

var _ domain.ProdutoRepo = (*ProdutoRepo)(nil)
