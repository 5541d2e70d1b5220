package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/zebodega/vendas/internal/domain"
)

type ItensPedidoRepo struct{ db *gorm.DB }

func NewItensPedidoRepo(db *gorm.DB) *ItensPedidoRepo { return &ItensPedidoRepo{db: db} }

func (r *ItensPedidoRepo) FindByID(ctx context.Context, id uint) (*domain.ItensPedido, error) {
	var i domain.ItensPedido
	if err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &i, nil
}

func (r *ItensPedidoRepo) FindAll(ctx context.Context) ([]domain.ItensPedido, error) {
	list := []domain.ItensPedido{}
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *ItensPedidoRepo) FindByPedidoEProduto(ctx context.Context, pedidoID, produtoID uint) (*domain.ItensPedido, error) {
	var i domain.ItensPedido
	if err := r.db.WithContext(ctx).First(&i, "pedido_id = ? AND produto_id = ?", pedidoID, produtoID).Error; err != nil {
		return nil, translate(err)
	}
	return &i, nil
}

func (r *ItensPedidoRepo) ExistsByPedidoEProduto(ctx context.Context, pedidoID, produtoID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.ItensPedido{}).
		Where("pedido_id = ? AND produto_id = ?", pedidoID, produtoID).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *ItensPedidoRepo) Save(ctx context.Context, i *domain.ItensPedido) error {
	return translate(r.db.WithContext(ctx).Save(i).Error)
}

func (r *ItensPedidoRepo) Delete(ctx context.Context, i *domain.ItensPedido) error {
	return translate(r.db.WithContext(ctx).Delete(&domain.ItensPedido{}, "id = ?", i.ID).Error)
}

var _ domain.ItensPedidoRepo = (*ItensPedidoRepo)(nil)
