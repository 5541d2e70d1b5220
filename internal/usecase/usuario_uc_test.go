package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zebodega/vendas/internal/adapters/repo/memory"
	"github.com/zebodega/vendas/internal/domain"
	"github.com/zebodega/vendas/internal/usecase"
)

func newUsuarioFixture(t *testing.T) (*usecase.UsuarioUC, uint) {
	t.Helper()
	clienteRepo := memory.NewClienteRepo()
	clienteUC := &usecase.ClienteUC{Clientes: clienteRepo}
	dto, err := clienteUC.Create(context.Background(), validCliente())
	require.NoError(t, err)
	return &usecase.UsuarioUC{Usuarios: memory.NewUsuarioRepo(), Clientes: clienteRepo}, dto.ID
}

func TestUsuarioCreate(t *testing.T) {
	uc, clienteID := newUsuarioFixture(t)

	dto, err := uc.Create(context.Background(), &domain.Usuario{
		UserName: "maria", Password: "s3gr3d0", Ativo: true, ClienteID: clienteID,
	})
	require.NoError(t, err)
	assert.NotZero(t, dto.ID)
	assert.Equal(t, "maria", dto.UserName)
	assert.Equal(t, clienteID, dto.ClienteID)
}

func TestUsuarioListVazia(t *testing.T) {
	uc, _ := newUsuarioFixture(t)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}

func TestUsuarioCreateClienteInexistente(t *testing.T) {
	uc, _ := newUsuarioFixture(t)
	_, err := uc.Create(context.Background(), &domain.Usuario{
		UserName: "maria", Password: "s3gr3d0", ClienteID: 99,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUsuarioUmPorCliente(t *testing.T) {
	uc, clienteID := newUsuarioFixture(t)
	_, err := uc.Create(context.Background(), &domain.Usuario{
		UserName: "maria", Password: "s3gr3d0", ClienteID: clienteID,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), &domain.Usuario{
		UserName: "maria2", Password: "outra", ClienteID: clienteID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConstraint)
}

func TestUsuarioDTONaoExpoeSenha(t *testing.T) {
	uc, clienteID := newUsuarioFixture(t)
	dto, err := uc.Create(context.Background(), &domain.Usuario{
		UserName: "maria", Password: "s3gr3d0", ClienteID: clienteID,
	})
	require.NoError(t, err)

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "s3gr3d0")
	assert.NotContains(t, string(raw), "password")
}

func TestUsuarioUpdatePorCliente(t *testing.T) {
	uc, clienteID := newUsuarioFixture(t)
	_, err := uc.Create(context.Background(), &domain.Usuario{
		UserName: "maria", Password: "s3gr3d0", Ativo: true, ClienteID: clienteID,
	})
	require.NoError(t, err)

	dto, err := uc.Update(context.Background(), &domain.Usuario{
		UserName: "maria.silva", Password: "nova", Ativo: false, ClienteID: clienteID,
	})
	require.NoError(t, err)
	assert.Equal(t, "maria.silva", dto.UserName)
	assert.False(t, dto.Ativo)
}

func TestUsuarioUpdateInexistente(t *testing.T) {
	uc, clienteID := newUsuarioFixture(t)
	_, err := uc.Update(context.Background(), &domain.Usuario{
		UserName: "maria", Password: "x", ClienteID: clienteID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUsuarioDelete(t *testing.T) {
	uc, clienteID := newUsuarioFixture(t)
	dto, err := uc.Create(context.Background(), &domain.Usuario{
		UserName: "maria", Password: "s3gr3d0", ClienteID: clienteID,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), dto.ID))
	assert.ErrorIs(t, uc.Delete(context.Background(), dto.ID), domain.ErrNotFound)
}
