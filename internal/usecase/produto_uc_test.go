package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zebodega/vendas/internal/adapters/repo/memory"
	"github.com/zebodega/vendas/internal/domain"
	"github.com/zebodega/vendas/internal/usecase"
)

func newProdutoUC() *usecase.ProdutoUC {
	return &usecase.ProdutoUC{Produtos: memory.NewProdutoRepo()}
}

func TestProdutoCreate(t *testing.T) {
	uc := newProdutoUC()

	dto, err := uc.Create(context.Background(), &domain.Produto{
		Nome:      "Caneca",
		Descricao: "Caneca de porcelana 300ml",
		Preco:     decimal.RequireFromString("39.90"),
		Ativo:     true,
	})
	require.NoError(t, err)
	require.NotZero(t, dto.ID)

	got, err := uc.GetByID(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.Equal(t, "Caneca", got.Nome)
	assert.True(t, got.Preco.Equal(decimal.RequireFromString("39.90")))
}

func TestProdutoListVazia(t *testing.T) {
	uc := newProdutoUC()

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}

func TestProdutoCreateNomeDuplicadoIgnoraMaiusculas(t *testing.T) {
	uc := newProdutoUC()
	_, err := uc.Create(context.Background(), &domain.Produto{
		Nome: "Caneca", Descricao: "Porcelana", Preco: decimal.NewFromInt(40), Ativo: true,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), &domain.Produto{
		Nome: "CANECA", Descricao: "Outra", Preco: decimal.NewFromInt(50), Ativo: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConstraint)
}

func TestProdutoCreatePrecoNegativo(t *testing.T) {
	uc := newProdutoUC()
	_, err := uc.Create(context.Background(), &domain.Produto{
		Nome: "Caneca", Descricao: "Porcelana", Preco: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
}

func TestProdutoUpdatePorNome(t *testing.T) {
	uc := newProdutoUC()
	_, err := uc.Create(context.Background(), &domain.Produto{
		Nome: "Caneca", Descricao: "Porcelana", Preco: decimal.NewFromInt(40), Ativo: true,
	})
	require.NoError(t, err)

	// o nome localiza sem distinguir maiúsculas
	got, err := uc.Update(context.Background(), &domain.Produto{
		Nome: "caneca", Descricao: "Porcelana premium", Preco: decimal.NewFromInt(60), Ativo: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Caneca", got.Nome)
	assert.Equal(t, "Porcelana premium", got.Descricao)
	assert.True(t, got.Preco.Equal(decimal.NewFromInt(60)))
	assert.False(t, got.Ativo)
}

func TestProdutoUpdateInexistente(t *testing.T) {
	uc := newProdutoUC()
	_, err := uc.Update(context.Background(), &domain.Produto{
		Nome: "Fantasma", Descricao: "x", Preco: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProdutoDelete(t *testing.T) {
	uc := newProdutoUC()
	dto, err := uc.Create(context.Background(), &domain.Produto{
		Nome: "Caneca", Descricao: "Porcelana", Preco: decimal.NewFromInt(40), Ativo: true,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), dto.ID))
	assert.ErrorIs(t, uc.Delete(context.Background(), dto.ID), domain.ErrNotFound)
}
