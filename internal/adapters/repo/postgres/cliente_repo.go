package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/zebodega/vendas/internal/domain"
)

type ClienteRepo struct{ db *gorm.DB }

func NewClienteRepo(db *gorm.DB) *ClienteRepo { return &ClienteRepo{db: db} }

func (r *ClienteRepo) FindByID(ctx context.Context, id uint) (*domain.Cliente, error) {
	var c domain.Cliente
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *ClienteRepo) FindAll(ctx context.Context) ([]domain.Cliente, error) {
	list := []domain.Cliente{}
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *ClienteRepo) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Cliente{}).Where("cpf = ?", cpf).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *ClienteRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	e := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Model(&domain.Cliente{}).Where("LOWER(email) = ?", e).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *ClienteRepo) Save(ctx context.Context, c *domain.Cliente) error {
	return translate(r.db.WithContext(ctx).Save(c).Error)
}

func (r *ClienteRepo) Delete(ctx context.Context, c *domain.Cliente) error {
	return translate(r.db.WithContext(ctx).Delete(&domain.Cliente{}, "id = ?", c.ID).Error)
}

var _ domain.ClienteRepo = (*ClienteRepo)(nil)
