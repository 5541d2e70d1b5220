package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zebodega/vendas/internal/adapters/repo/memory"
	"github.com/zebodega/vendas/internal/domain"
	"github.com/zebodega/vendas/internal/usecase"
)

func validCliente() *domain.Cliente {
	return &domain.Cliente{
		Nome:           "Maria Silva",
		CPF:            "12345678901",
		Email:          "maria@example.com",
		Telefone:       "11987654321",
		DataNascimento: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Sexo:           "F",
	}
}

func TestClienteCreateEGetByID(t *testing.T) {
	uc := &usecase.ClienteUC{Clientes: memory.NewClienteRepo()}

	dto, err := uc.Create(context.Background(), validCliente())
	require.NoError(t, err)
	require.NotZero(t, dto.ID)

	got, err := uc.GetByID(context.Background(), dto.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", got.Nome)
	assert.Equal(t, "12345678901", got.CPF)
	assert.Equal(t, "1990-05-20", got.DataNascimento)
}

func TestClienteListVazia(t *testing.T) {
	uc := &usecase.ClienteUC{Clientes: memory.NewClienteRepo()}

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}

func TestClienteCreateValidacao(t *testing.T) {
	uc := &usecase.ClienteUC{Clientes: memory.NewClienteRepo()}

	cases := []struct {
		name string
		mut  func(*domain.Cliente)
	}{
		{"nome vazio", func(c *domain.Cliente) { c.Nome = "" }},
		{"cpf curto", func(c *domain.Cliente) { c.CPF = "123" }},
		{"cpf com letras", func(c *domain.Cliente) { c.CPF = "1234567890a" }},
		{"email sem arroba", func(c *domain.Cliente) { c.Email = "maria.example.com" }},
		{"telefone vazio", func(c *domain.Cliente) { c.Telefone = "" }},
		{"nascimento no futuro", func(c *domain.Cliente) { c.DataNascimento = time.Now().AddDate(1, 0, 0) }},
		{"sexo inválido", func(c *domain.Cliente) { c.Sexo = "X" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCliente()
			tc.mut(c)
			_, err := uc.Create(context.Background(), c)
			assert.ErrorIs(t, err, domain.ErrBusinessRule)
		})
	}
}

func TestClienteCreateCPFDuplicado(t *testing.T) {
	uc := &usecase.ClienteUC{Clientes: memory.NewClienteRepo()}
	_, err := uc.Create(context.Background(), validCliente())
	require.NoError(t, err)

	outro := validCliente()
	outro.Email = "outra@example.com"
	_, err = uc.Create(context.Background(), outro)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConstraint)
	assert.Contains(t, err.Error(), "CPF")
}

func TestClienteCreateEmailDuplicado(t *testing.T) {
	uc := &usecase.ClienteUC{Clientes: memory.NewClienteRepo()}
	_, err := uc.Create(context.Background(), validCliente())
	require.NoError(t, err)

	outro := validCliente()
	outro.CPF = "98765432100"
	_, err = uc.Create(context.Background(), outro)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConstraint)
	assert.Contains(t, err.Error(), "e-mail")
}

func TestClienteUpdate(t *testing.T) {
	uc := &usecase.ClienteUC{Clientes: memory.NewClienteRepo()}
	dto, err := uc.Create(context.Background(), validCliente())
	require.NoError(t, err)

	alterado := validCliente()
	alterado.ID = dto.ID
	alterado.Nome = "Maria Souza"
	alterado.Apelido = "Mari"
	got, err := uc.Update(context.Background(), alterado)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", got.Nome)
	assert.Equal(t, "Mari", got.Apelido)
}

func TestClienteUpdateInexistente(t *testing.T) {
	uc := &usecase.ClienteUC{Clientes: memory.NewClienteRepo()}
	c := validCliente()
	c.ID = 42
	_, err := uc.Update(context.Background(), c)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClienteDelete(t *testing.T) {
	uc := &usecase.ClienteUC{Clientes: memory.NewClienteRepo()}
	dto, err := uc.Create(context.Background(), validCliente())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), dto.ID))
	_, err = uc.GetByID(context.Background(), dto.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(context.Background(), dto.ID), domain.ErrNotFound)
}
