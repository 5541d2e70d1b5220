package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zebodega/vendas/internal/domain"
)

func TestClienteRepoIndicesUnicos(t *testing.T) {
	r := NewClienteRepo()
	ctx := context.Background()

	base := domain.Cliente{
		Nome: "Maria", CPF: "12345678901", Email: "maria@example.com",
		Telefone: "11987654321", DataNascimento: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC), Sexo: "F",
	}
	c1 := base
	require.NoError(t, r.Save(ctx, &c1))
	require.NotZero(t, c1.ID)

	mesmoCPF := base
	mesmoCPF.Email = "outra@example.com"
	assert.ErrorIs(t, r.Save(ctx, &mesmoCPF), domain.ErrDataIntegrity)

	mesmoEmail := base
	mesmoEmail.CPF = "98765432100"
	mesmoEmail.Email = "MARIA@example.com"
	assert.ErrorIs(t, r.Save(ctx, &mesmoEmail), domain.ErrDataIntegrity)

	// atualizar o próprio registro não conflita consigo mesmo
	c1.Nome = "Maria Souza"
	require.NoError(t, r.Save(ctx, &c1))

	ok, err := r.ExistsByCPF(ctx, "12345678901")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProdutoRepoNomeUnicoSemMaiusculas(t *testing.T) {
	r := NewProdutoRepo()
	ctx := context.Background()

	p := domain.Produto{Nome: "Caneca", Descricao: "Porcelana", Preco: decimal.NewFromInt(40), Ativo: true}
	require.NoError(t, r.Save(ctx, &p))

	dup := domain.Produto{Nome: "cAnEcA", Descricao: "Outra", Preco: decimal.NewFromInt(10)}
	assert.ErrorIs(t, r.Save(ctx, &dup), domain.ErrDataIntegrity)

	found, err := r.FindByNome(ctx, "CANECA")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)

	ok, err := r.ExistsByNome(ctx, "caneca")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPedidoRepoFindByPeriodoEStatus(t *testing.T) {
	r := NewPedidoRepo()
	ctx := context.Background()

	dia := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}
	save := func(numero, data, status string, total int64) {
		require.NoError(t, r.Save(ctx, &domain.Pedido{
			NumeroPedido: numero, ValorTotal: decimal.NewFromInt(total),
			DataCriacao: dia(data), Status: status,
		}))
	}
	save("PED-001", "2026-01-10", "ATIVO", 100)
	save("PED-002", "2026-01-31", "ativo", 250)
	save("PED-003", "2026-01-15", "CANCELADO", 999)
	save("PED-004", "2026-02-01", "ATIVO", 500)

	list, err := r.FindByPeriodoEStatus(ctx, dia("2026-01-10"), dia("2026-01-31"), "ATIVO")
	require.NoError(t, err)
	require.Len(t, list, 2)
	// ordenado por data de criação
	assert.Equal(t, "PED-001", list[0].NumeroPedido)
	assert.Equal(t, "PED-002", list[1].NumeroPedido)
}

func TestItensPedidoRepoParUnico(t *testing.T) {
	r := NewItensPedidoRepo()
	ctx := context.Background()

	i1 := domain.ItensPedido{Quantidade: 1, PedidoID: 1, ProdutoID: 2}
	require.NoError(t, r.Save(ctx, &i1))

	dup := domain.ItensPedido{Quantidade: 9, PedidoID: 1, ProdutoID: 2}
	assert.ErrorIs(t, r.Save(ctx, &dup), domain.ErrDataIntegrity)

	outroProduto := domain.ItensPedido{Quantidade: 1, PedidoID: 1, ProdutoID: 3}
	require.NoError(t, r.Save(ctx, &outroProduto))

	found, err := r.FindByPedidoEProduto(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, i1.ID, found.ID)

	_, err = r.FindByPedidoEProduto(ctx, 7, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUsuarioRepoIndicesUnicos(t *testing.T) {
	r := NewUsuarioRepo()
	ctx := context.Background()

	u := domain.Usuario{UserName: "maria", Password: "x", Ativo: true, ClienteID: 1}
	require.NoError(t, r.Save(ctx, &u))

	mesmoUser := domain.Usuario{UserName: "maria", Password: "y", ClienteID: 2}
	assert.ErrorIs(t, r.Save(ctx, &mesmoUser), domain.ErrDataIntegrity)

	mesmoCliente := domain.Usuario{UserName: "outra", Password: "y", ClienteID: 1}
	assert.ErrorIs(t, r.Save(ctx, &mesmoCliente), domain.ErrDataIntegrity)

	found, err := r.FindByCliente(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
}
