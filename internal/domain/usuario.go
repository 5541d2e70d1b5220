package domain

import (
	"context"
	"fmt"
	"time"
)

// Usuario de acesso ao sistema. Cada usuário pertence a exatamente um
// cliente e cada cliente pode ter no máximo um usuário.
type Usuario struct {
	ID        uint   `gorm:"primaryKey"`
	UserName  string `gorm:"size:255;not null;uniqueIndex"`
	Password  string `gorm:"size:255;not null"`
	Ativo     bool   `gorm:"not null;default:true"`
	ClienteID uint   `gorm:"not null;uniqueIndex"`
	Cliente   *Cliente
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Usuario) TableName() string { return "usuarios" }

func (u *Usuario) Validate() error {
	if u.UserName == "" {
		return fmt.Errorf("username é obrigatório: %w", ErrBusinessRule)
	}
	if u.Password == "" {
		return fmt.Errorf("password é obrigatório: %w", ErrBusinessRule)
	}
	if u.ClienteID == 0 {
		return fmt.Errorf("vinculação a um cliente é obrigatória: %w", ErrBusinessRule)
	}
	return nil
}

type UsuarioRepo interface {
	FindByID(ctx context.Context, id uint) (*Usuario, error)
	FindAll(ctx context.Context) ([]Usuario, error)
	FindByCliente(ctx context.Context, clienteID uint) (*Usuario, error)
	ExistsByCliente(ctx context.Context, clienteID uint) (bool, error)
	Save(ctx context.Context, u *Usuario) error
	Delete(ctx context.Context, u *Usuario) error
}
