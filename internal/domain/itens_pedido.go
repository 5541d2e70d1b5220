package domain

import (
	"context"
	"fmt"
	"time"
)

// ItensPedido é a linha de um pedido: quantidade de um produto dentro
// de um pedido. O par (pedido, produto) é único, então um pedido pode
// ter vários itens desde que de produtos distintos.
type ItensPedido struct {
	ID         uint `gorm:"primaryKey"`
	Quantidade int  `gorm:"not null"`
	PedidoID   uint `gorm:"not null;index;uniqueIndex:idx_itens_pedido_produto"`
	ProdutoID  uint `gorm:"not null;index;uniqueIndex:idx_itens_pedido_produto"`
	Pedido     *Pedido
	Produto    *Produto
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ItensPedido) TableName() string { return "itens_pedidos" }

func (i *ItensPedido) Validate() error {
	if i.Quantidade < 1 {
		return fmt.Errorf("quantidade deve ser maior que zero: %w", ErrBusinessRule)
	}
	if i.PedidoID == 0 {
		return fmt.Errorf("vinculação a um pedido é obrigatória: %w", ErrBusinessRule)
	}
	if i.ProdutoID == 0 {
		return fmt.Errorf("vinculação a um produto é obrigatória: %w", ErrBusinessRule)
	}
	return nil
}

type ItensPedidoRepo interface {
	FindByID(ctx context.Context, id uint) (*ItensPedido, error)
	FindAll(ctx context.Context) ([]ItensPedido, error)
	FindByPedidoEProduto(ctx context.Context, pedidoID, produtoID uint) (*ItensPedido, error)
	ExistsByPedidoEProduto(ctx context.Context, pedidoID, produtoID uint) (bool, error)
	Save(ctx context.Context, i *ItensPedido) error
	Delete(ctx context.Context, i *ItensPedido) error
}
