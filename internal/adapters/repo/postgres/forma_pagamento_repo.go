package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/zebodega/vendas/internal/domain"
)

type FormaPagamentoRepo struct{ db *gorm.DB }

func NewFormaPagamentoRepo(db *gorm.DB) *FormaPagamentoRepo { return &FormaPagamentoRepo{db: db} }

func (r *FormaPagamentoRepo) FindByID(ctx context.Context, id uint) (*domain.FormaPagamento, error) {
	var f domain.FormaPagamento
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (r *FormaPagamentoRepo) FindAll(ctx context.Context) ([]domain.FormaPagamento, error) {
	list := []domain.FormaPagamento{}
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *FormaPagamentoRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.FormaPagamento{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *FormaPagamentoRepo) Save(ctx context.Context, f *domain.FormaPagamento) error {
	return translate(r.db.WithContext(ctx).Save(f).Error)
}

func (r *FormaPagamentoRepo) Delete(ctx context.Context, f *domain.FormaPagamento) error {
	return translate(r.db.WithContext(ctx).Delete(&domain.FormaPagamento{}, "id = ?", f.ID).Error)
}

var _ domain.FormaPagamentoRepo = (*FormaPagamentoRepo)(nil)
