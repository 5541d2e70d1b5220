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

type itensFixture struct {
	uc      *usecase.ItensPedidoUC
	pedido  usecase.PedidoDTO
	produto usecase.ProdutoDTO
}

func newItensFixture(t *testing.T) itensFixture {
	t.Helper()
	pedidoRepo := memory.NewPedidoRepo()
	produtoRepo := memory.NewProdutoRepo()
	pedidoUC := &usecase.PedidoUC{Pedidos: pedidoRepo}
	produtoUC := &usecase.ProdutoUC{Produtos: produtoRepo}

	pedido, err := pedidoUC.Create(context.Background(), &domain.Pedido{
		NumeroPedido: "PED-001",
		ValorTotal:   decimal.NewFromInt(100),
		DataCriacao:  day("2026-01-10"),
		Status:       domain.StatusAtivo,
	})
	require.NoError(t, err)

	produto, err := produtoUC.Create(context.Background(), &domain.Produto{
		Nome: "Caneca", Descricao: "Porcelana", Preco: decimal.NewFromInt(40), Ativo: true,
	})
	require.NoError(t, err)

	return itensFixture{
		uc: &usecase.ItensPedidoUC{
			Itens:    memory.NewItensPedidoRepo(),
			Pedidos:  pedidoRepo,
			Produtos: produtoRepo,
		},
		pedido:  pedido,
		produto: produto,
	}
}

func TestItensPedidoCreate(t *testing.T) {
	f := newItensFixture(t)

	dto, err := f.uc.Create(context.Background(), &domain.ItensPedido{
		Quantidade: 3, PedidoID: f.pedido.ID, ProdutoID: f.produto.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, dto.ID)
	assert.Equal(t, 3, dto.Quantidade)
}

func TestItensPedidoListVazia(t *testing.T) {
	f := newItensFixture(t)

	list, err := f.uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}

func TestItensPedidoCreateQuantidadeInvalida(t *testing.T) {
	f := newItensFixture(t)
	_, err := f.uc.Create(context.Background(), &domain.ItensPedido{
		Quantidade: 0, PedidoID: f.pedido.ID, ProdutoID: f.produto.ID,
	})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
}

func TestItensPedidoCreatePedidoInexistente(t *testing.T) {
	f := newItensFixture(t)
	_, err := f.uc.Create(context.Background(), &domain.ItensPedido{
		Quantidade: 1, PedidoID: 99, ProdutoID: f.produto.ID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItensPedidoCreateProdutoInexistente(t *testing.T) {
	f := newItensFixture(t)
	_, err := f.uc.Create(context.Background(), &domain.ItensPedido{
		Quantidade: 1, PedidoID: f.pedido.ID, ProdutoID: 99,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItensPedidoParUnico(t *testing.T) {
	f := newItensFixture(t)
	_, err := f.uc.Create(context.Background(), &domain.ItensPedido{
		Quantidade: 1, PedidoID: f.pedido.ID, ProdutoID: f.produto.ID,
	})
	require.NoError(t, err)

	_, err = f.uc.Create(context.Background(), &domain.ItensPedido{
		Quantidade: 5, PedidoID: f.pedido.ID, ProdutoID: f.produto.ID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConstraint)
}

func TestItensPedidoUpdateSobrescreveQuantidade(t *testing.T) {
	f := newItensFixture(t)
	_, err := f.uc.Create(context.Background(), &domain.ItensPedido{
		Quantidade: 1, PedidoID: f.pedido.ID, ProdutoID: f.produto.ID,
	})
	require.NoError(t, err)

	dto, err := f.uc.Update(context.Background(), &domain.ItensPedido{
		Quantidade: 7, PedidoID: f.pedido.ID, ProdutoID: f.produto.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, dto.Quantidade)
}

func TestItensPedidoUpdateInexistente(t *testing.T) {
	f := newItensFixture(t)
	_, err := f.uc.Update(context.Background(), &domain.ItensPedido{
		Quantidade: 7, PedidoID: f.pedido.ID, ProdutoID: f.produto.ID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItensPedidoDelete(t *testing.T) {
	f := newItensFixture(t)
	dto, err := f.uc.Create(context.Background(), &domain.ItensPedido{
		Quantidade: 2, PedidoID: f.pedido.ID, ProdutoID: f.produto.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), dto.ID))
	assert.ErrorIs(t, f.uc.Delete(context.Background(), dto.ID), domain.ErrNotFound)
}
