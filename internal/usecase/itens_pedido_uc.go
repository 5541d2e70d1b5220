package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/zebodega/vendas/internal/domain"
)

type ItensPedidoUC struct {
	Itens    domain.ItensPedidoRepo
	Pedidos  domain.PedidoRepo
	Produtos domain.ProdutoRepo
}

func (uc *ItensPedidoUC) GetByID(ctx context.Context, id uint) (ItensPedidoDTO, error) {
	i, err := uc.Itens.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ItensPedidoDTO{}, fmt.Errorf("itens pedido com ID %d: %w", id, domain.ErrNotFound)
		}
		return ItensPedidoDTO{}, err
	}
	return toItensPedidoDTO(i), nil
}

func (uc *ItensPedidoUC) List(ctx context.Context) ([]ItensPedidoDTO, error) {
	itens, err := uc.Itens.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ItensPedidoDTO, 0, len(itens))
	for i := range itens {
		out = append(out, toItensPedidoDTO(&itens[i]))
	}
	return out, nil
}

// Create exige que pedido e produto referenciados existam e que o par
// (pedido, produto) ainda não tenha item.
func (uc *ItensPedidoUC) Create(ctx context.Context, novo *domain.ItensPedido) (ItensPedidoDTO, error) {
	if novo == nil {
		return ItensPedidoDTO{}, fmt.Errorf("itens pedido nil: %w", domain.ErrInvalidArgument)
	}
	if err := novo.Validate(); err != nil {
		return ItensPedidoDTO{}, err
	}
	if _, err := uc.Pedidos.FindByID(ctx, novo.PedidoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ItensPedidoDTO{}, fmt.Errorf("pedido com ID %d: %w", novo.PedidoID, domain.ErrNotFound)
		}
		return ItensPedidoDTO{}, err
	}
	if _, err := uc.Produtos.FindByID(ctx, novo.ProdutoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ItensPedidoDTO{}, fmt.Errorf("produto com ID %d: %w", novo.ProdutoID, domain.ErrNotFound)
		}
		return ItensPedidoDTO{}, err
	}
	if ok, err := uc.Itens.ExistsByPedidoEProduto(ctx, novo.PedidoID, novo.ProdutoID); err != nil {
		return ItensPedidoDTO{}, err
	} else if ok {
		return ItensPedidoDTO{}, fmt.Errorf("já existe um item do produto %d no pedido %d: %w", novo.ProdutoID, novo.PedidoID, domain.ErrConstraint)
	}
	if err := uc.Itens.Save(ctx, novo); err != nil {
		return ItensPedidoDTO{}, fmt.Errorf("não foi possível criar o item do pedido %d: %w", novo.PedidoID, err)
	}
	return toItensPedidoDTO(novo), nil
}

// Update localiza o item pelo par (pedido, produto) e sobrescreve a
// quantidade.
func (uc *ItensPedidoUC) Update(ctx context.Context, candidato *domain.ItensPedido) (ItensPedidoDTO, error) {
	if candidato == nil {
		return ItensPedidoDTO{}, fmt.Errorf("itens pedido nil: %w", domain.ErrInvalidArgument)
	}
	if err := candidato.Validate(); err != nil {
		return ItensPedidoDTO{}, err
	}
	existente, err := uc.Itens.FindByPedidoEProduto(ctx, candidato.PedidoID, candidato.ProdutoID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ItensPedidoDTO{}, fmt.Errorf("item do produto %d no pedido %d: %w", candidato.ProdutoID, candidato.PedidoID, domain.ErrNotFound)
		}
		return ItensPedidoDTO{}, err
	}
	existente.Quantidade = candidato.Quantidade
	if err := uc.Itens.Save(ctx, existente); err != nil {
		return ItensPedidoDTO{}, fmt.Errorf("não foi possível atualizar o item %d: %w", existente.ID, err)
	}
	return toItensPedidoDTO(existente), nil
}

func (uc *ItensPedidoUC) Delete(ctx context.Context, id uint) error {
	i, err := uc.Itens.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("itens pedido com ID %d: %w", id, domain.ErrNotFound)
		}
		return err
	}
	if err := uc.Itens.Delete(ctx, i); err != nil {
		return fmt.Errorf("não foi possível deletar o item %d: %w", id, err)
	}
	return nil
}
