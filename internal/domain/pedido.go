package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusAtivo é o único status com significado para as regras de
// faturamento e desconto. A comparação ignora maiúsculas.
const StatusAtivo = "ATIVO"

// Pedido de venda. O número do pedido é chave natural única; o valor
// total é recalculado quando um desconto é aplicado.
type Pedido struct {
	ID           uint            `gorm:"primaryKey"`
	NumeroPedido string          `gorm:"size:255;not null;uniqueIndex"`
	ValorTotal   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DataCriacao  time.Time       `gorm:"type:date;not null"`
	Status       string          `gorm:"size:50;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Pedido) TableName() string { return "pedidos" }

func (p *Pedido) Validate() error {
	if p.NumeroPedido == "" {
		return fmt.Errorf("número do pedido é obrigatório: %w", ErrBusinessRule)
	}
	if p.ValorTotal.IsNegative() {
		return fmt.Errorf("valor total não pode ser negativo: %w", ErrBusinessRule)
	}
	if p.DataCriacao.IsZero() {
		return fmt.Errorf("data de criação é obrigatória: %w", ErrBusinessRule)
	}
	if p.Status == "" {
		return fmt.Errorf("status do pedido é obrigatório: %w", ErrBusinessRule)
	}
	return nil
}

// Ativo informa se o pedido participa de faturamento e desconto.
func (p *Pedido) Ativo() bool { return strings.EqualFold(p.Status, StatusAtivo) }

type PedidoRepo interface {
	FindByID(ctx context.Context, id uint) (*Pedido, error)
	FindAll(ctx context.Context) ([]Pedido, error)
	FindByNumero(ctx context.Context, numero string) (*Pedido, error)
	ExistsByNumero(ctx context.Context, numero string) (bool, error)
	// FindByPeriodoEStatus retorna pedidos com data de criação dentro do
	// intervalo fechado [inicio, fim] e status igual (ignorando
	// maiúsculas) ao informado.
	FindByPeriodoEStatus(ctx context.Context, inicio, fim time.Time, status string) ([]Pedido, error)
	Save(ctx context.Context, p *Pedido) error
	Delete(ctx context.Context, p *Pedido) error
}
