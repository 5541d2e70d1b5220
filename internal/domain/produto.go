package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Produto do catálogo. O nome é chave natural, único sem distinguir
// maiúsculas de minúsculas (índice funcional criado em MigrateAndSeed).
type Produto struct {
	ID        uint            `gorm:"primaryKey"`
	Nome      string          `gorm:"size:255;not null"`
	Descricao string          `gorm:"size:255;not null"`
	Preco     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Ativo     bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Produto) TableName() string { return "produtos" }

func (p *Produto) Validate() error {
	if p.Nome == "" {
		return fmt.Errorf("nome do produto é obrigatório: %w", ErrBusinessRule)
	}
	if p.Descricao == "" {
		return fmt.Errorf("descrição do produto é obrigatória: %w", ErrBusinessRule)
	}
	if p.Preco.IsNegative() {
		return fmt.Errorf("preço não pode ser negativo: %w", ErrBusinessRule)
	}
	return nil
}

type ProdutoRepo interface {
	FindByID(ctx context.Context, id uint) (*Produto, error)
	FindAll(ctx context.Context) ([]Produto, error)
	// FindByNome e ExistsByNome comparam sem distinguir maiúsculas.
	FindByNome(ctx context.Context, nome string) (*Produto, error)
	ExistsByNome(ctx context.Context, nome string) (bool, error)
	Save(ctx context.Context, p *Produto) error
	Delete(ctx context.Context, p *Produto) error
}
