package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/zebodega/vendas/internal/domain"
)

type UsuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepo(db *gorm.DB) *UsuarioRepo { return &UsuarioRepo{db: db} }

func (r *UsuarioRepo) FindByID(ctx context.Context, id uint) (*domain.Usuario, error) {
	var u domain.Usuario
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UsuarioRepo) FindAll(ctx context.Context) ([]domain.Usuario, error) {
	list := []domain.Usuario{}
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *UsuarioRepo) FindByCliente(ctx context.Context, clienteID uint) (*domain.Usuario, error) {
	var u domain.Usuario
	if err := r.db.WithContext(ctx).First(&u, "cliente_id = ?", clienteID).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UsuarioRepo) ExistsByCliente(ctx context.Context, clienteID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Usuario{}).Where("cliente_id = ?", clienteID).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *UsuarioRepo) Save(ctx context.Context, u *domain.Usuario) error {
	return translate(r.db.WithContext(ctx).Save(u).Error)
}

func (r *UsuarioRepo) Delete(ctx context.Context, u *domain.Usuario) error {
	return translate(r.db.WithContext(ctx).Delete(&domain.Usuario{}, "id = ?", u.ID).Error)
}

var _ domain.UsuarioRepo = (*UsuarioRepo)(nil)
