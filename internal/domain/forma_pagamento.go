package domain

import (
	"context"
	"fmt"
	"time"
)

// FormaPagamento é entrada de catálogo (dinheiro, cartão, pix...).
// Não há chave natural além do próprio id.
type FormaPagamento struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"size:255;not null"`
	Descricao string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FormaPagamento) TableName() string { return "formas_pagamento" }

func (f *FormaPagamento) Validate() error {
	if f.Nome == "" {
		return fmt.Errorf("nome da forma de pagamento é obrigatório: %w", ErrBusinessRule)
	}
	if f.Descricao == "" {
		return fmt.Errorf("descrição da forma de pagamento é obrigatória: %w", ErrBusinessRule)
	}
	return nil
}

type FormaPagamentoRepo interface {
	FindByID(ctx context.Context, id uint) (*FormaPagamento, error)
	FindAll(ctx context.Context) ([]FormaPagamento, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, f *FormaPagamento) error
	Delete(ctx context.Context, f *FormaPagamento) error
}
