package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/zebodega/vendas/internal/domain"
)

type ItensPedidoRepo struct {
	mu     sync.RWMutex
	items  map[uint]domain.ItensPedido
	nextID uint
}

func NewItensPedidoRepo() *ItensPedidoRepo {
	return &ItensPedidoRepo{items: make(map[uint]domain.ItensPedido), nextID: 1}
}

func (r *ItensPedidoRepo) FindByID(_ context.Context, id uint) (*domain.ItensPedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &i, nil
}

func (r *ItensPedidoRepo) FindAll(_ context.Context) ([]domain.ItensPedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.ItensPedido, 0, len(r.items))
	for _, i := range r.items {
		list = append(list, i)
	}
	return list, nil
}

func (r *ItensPedidoRepo) FindByPedidoEProduto(_ context.Context, pedidoID, produtoID uint) (*domain.ItensPedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, i := range r.items {
		if i.PedidoID == pedidoID && i.ProdutoID == produtoID {
			i := i
			return &i, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ItensPedidoRepo) ExistsByPedidoEProduto(_ context.Context, pedidoID, produtoID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, i := range r.items {
		if i.PedidoID == pedidoID && i.ProdutoID == produtoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ItensPedidoRepo) Save(_ context.Context, i *domain.ItensPedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, other := range r.items {
		if id != i.ID && other.PedidoID == i.PedidoID && other.ProdutoID == i.ProdutoID {
			return fmt.Errorf("chave duplicada: %w", domain.ErrDataIntegrity)
		}
	}
	if i.ID == 0 {
		i.ID = r.nextID
		r.nextID++
	}
	r.items[i.ID] = *i
	return nil
}

func (r *ItensPedidoRepo) Delete(_ context.Context, i *domain.ItensPedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[i.ID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, i.ID)
	return nil
}

var _ domain.ItensPedidoRepo = (*ItensPedidoRepo)(nil)
