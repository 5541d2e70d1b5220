package postgres

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/zebodega/vendas/internal/domain"
)

type PedidoRepo struct{ db *gorm.DB }

func NewPedidoRepo(db *gorm.DB) *PedidoRepo { return &PedidoRepo{db: db} }

func (r *PedidoRepo) FindByID(ctx context.Context, id uint) (*domain.Pedido, error) {
	var p domain.Pedido
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PedidoRepo) FindAll(ctx context.Context) ([]domain.Pedido, error) {
	list := []domain.Pedido{}
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *PedidoRepo) FindByNumero(ctx context.Context, numero string) (*domain.Pedido, error) {
	var p domain.Pedido
	if err := r.db.WithContext(ctx).First(&p, "numero_pedido = ?", numero).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PedidoRepo) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Pedido{}).Where("numero_pedido = ?", numero).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *PedidoRepo) FindByPeriodoEStatus(ctx context.Context, inicio, fim time.Time, status string) ([]domain.Pedido, error) {
	list := []domain.Pedido{}
	if err := r.db.WithContext(ctx).
		Where("data_criacao BETWEEN ? AND ?", inicio, fim).
		Where("UPPER(status) = UPPER(?)", strings.TrimSpace(status)).
		Order("data_criacao asc").
		Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *PedidoRepo) Save(ctx context.Context, p *domain.Pedido) error {
	return translate(r.db.WithContext(ctx).Save(p).Error)
}

func (r *PedidoRepo) Delete(ctx context.Context, p *domain.Pedido) error {
	return translate(r.db.WithContext(ctx).Delete(&domain.Pedido{}, "id = ?", p.ID).Error)
}

var _ domain.PedidoRepo = (*PedidoRepo)(nil)
