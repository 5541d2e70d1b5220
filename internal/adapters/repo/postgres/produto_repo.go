package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/zebodega/vendas/internal/domain"
)

type ProdutoRepo struct{ db *gorm.DB }

func NewProdutoRepo(db *gorm.DB) *ProdutoRepo { return &ProdutoRepo{db: db} }

func (r *ProdutoRepo) FindByID(ctx context.Context, id uint) (*domain.Produto, error) {
	var p domain.Produto
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProdutoRepo) FindAll(ctx context.Context) ([]domain.Produto, error) {
	list := []domain.Produto{}
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *ProdutoRepo) FindByNome(ctx context.Context, nome string) (*domain.Produto, error) {
	var p domain.Produto
	n := strings.TrimSpace(nome)
	if err := r.db.WithContext(ctx).First(&p, "LOWER(nome) = LOWER(?)", n).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProdutoRepo) ExistsByNome(ctx context.Context, nome string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Produto{}).
		Where("LOWER(nome) = LOWER(?)", strings.TrimSpace(nome)).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *ProdutoRepo) Save(ctx context.Context, p *domain.Produto) error {
	return translate(r.db.WithContext(ctx).Save(p).Error)
}

func (r *ProdutoRepo) Delete(ctx context.Context, p *domain.Produto) error {
	return translate(r.db.WithContext(ctx).Delete(&domain.Produto{}, "id = ?", p.ID).Error)
}

var _ domain.ProdutoRepo = (*ProdutoRepo)(nil)
