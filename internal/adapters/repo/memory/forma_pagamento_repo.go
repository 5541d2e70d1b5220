package memory

import (
	"context"
	"sync"

	"github.com/zebodega/vendas/internal/domain"
)

type FormaPagamentoRepo struct {
	mu     sync.RWMutex
	items  map[uint]domain.FormaPagamento
	nextID uint
}

func NewFormaPagamentoRepo() *FormaPagamentoRepo {
	return &FormaPagamentoRepo{items: make(map[uint]domain.FormaPagamento), nextID: 1}
}

func (r *FormaPagamentoRepo) FindByID(_ context.Context, id uint) (*domain.FormaPagamento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &f, nil
}

func (r *FormaPagamentoRepo) FindAll(_ context.Context) ([]domain.FormaPagamento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.FormaPagamento, 0, len(r.items))
	for _, f := range r.items {
		list = append(list, f)
	}
	return list, nil
}

func (r *FormaPagamentoRepo) ExistsByID(_ context.Context, id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *FormaPagamentoRepo) Save(_ context.Context, f *domain.FormaPagamento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f.ID == 0 {
		f.ID = r.nextID
		r.nextID++
	}
	r.items[f.ID] = *f
	return nil
}

func (r *FormaPagamentoRepo) Delete(_ context.Context, f *domain.FormaPagamento) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[f.ID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, f.ID)
	return nil
}

var _ domain.FormaPagamentoRepo = (*FormaPagamentoRepo)(nil)
