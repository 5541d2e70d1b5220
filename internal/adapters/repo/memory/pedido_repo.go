package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/zebodega/vendas/internal/domain"
)

type PedidoRepo struct {
	mu     sync.RWMutex
	items  map[uint]domain.Pedido
	nextID uint
}

func NewPedidoRepo() *PedidoRepo {
	return &PedidoRepo{items: make(map[uint]domain.Pedido), nextID: 1}
}

func (r *PedidoRepo) FindByID(_ context.Context, id uint) (*domain.Pedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *PedidoRepo) FindAll(_ context.Context) ([]domain.Pedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Pedido, 0, len(r.items))
	for _, p := range r.items {
		list = append(list, p)
	}
	return list, nil
}

func (r *PedidoRepo) FindByNumero(_ context.Context, numero string) (*domain.Pedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.NumeroPedido == numero {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *PedidoRepo) ExistsByNumero(_ context.Context, numero string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.NumeroPedido == numero {
			return true, nil
		}
	}
	return false, nil
}

func (r *PedidoRepo) FindByPeriodoEStatus(_ context.Context, inicio, fim time.Time, status string) ([]domain.Pedido, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := []domain.Pedido{}
	for _, p := range r.items {
		if p.DataCriacao.Before(inicio) || p.DataCriacao.After(fim) {
			continue
		}
		if !strings.EqualFold(p.Status, strings.TrimSpace(status)) {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DataCriacao.Before(list[j].DataCriacao) })
	return list, nil
}

func (r *PedidoRepo) Save(_ context.Context, p *domain.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, other := range r.items {
		if id != p.ID && other.NumeroPedido == p.NumeroPedido {
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

func (r *PedidoRepo) Delete(_ context.Context, p *domain.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, p.ID)
	return nil
}

var _ domain.PedidoRepo = (*PedidoRepo)(nil)
