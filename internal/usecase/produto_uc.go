package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/zebodega/vendas/internal/domain"
)

type ProdutoUC struct {
	Produtos domain.ProdutoRepo
}

func (uc *ProdutoUC) GetByID(ctx context.Context, id uint) (ProdutoDTO, error) {
	p, err := uc.Produtos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ProdutoDTO{}, fmt.Errorf("produto com ID %d: %w", id, domain.ErrNotFound)
		}
		return ProdutoDTO{}, err
	}
	return toProdutoDTO(p), nil
}

func (uc *ProdutoUC) List(ctx context.Context) ([]ProdutoDTO, error) {
	produtos, err := uc.Produtos.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProdutoDTO, 0, len(produtos))
	for i := range produtos {
		out = append(out, toProdutoDTO(&produtos[i]))
	}
	return out, nil
}

func (uc *ProdutoUC) Create(ctx context.Context, novo *domain.Produto) (ProdutoDTO, error) {
	if novo == nil {
		return ProdutoDTO{}, fmt.Errorf("produto nil: %w", domain.ErrInvalidArgument)
	}
	if err := novo.Validate(); err != nil {
		return ProdutoDTO{}, err
	}
	if ok, err := uc.Produtos.ExistsByNome(ctx, novo.Nome); err != nil {
		return ProdutoDTO{}, err
	} else if ok {
		return ProdutoDTO{}, fmt.Errorf("já existe um produto cadastrado com esse nome %s: %w", novo.Nome, domain.ErrConstraint)
	}
	if err := uc.Produtos.Save(ctx, novo); err != nil {
		return ProdutoDTO{}, fmt.Errorf("não foi possível criar o produto %s: %w", novo.Nome, err)
	}
	return toProdutoDTO(novo), nil
}

// Update localiza o produto pela chave natural (nome, sem distinguir
// maiúsculas) e sobrescreve os campos mutáveis.
func (uc *ProdutoUC) Update(ctx context.Context, candidato *domain.Produto) (ProdutoDTO, error) {
	if candidato == nil {
		return ProdutoDTO{}, fmt.Errorf("produto nil: %w", domain.ErrInvalidArgument)
	}
	if err := candidato.Validate(); err != nil {
		return ProdutoDTO{}, err
	}
	existente, err := uc.Produtos.FindByNome(ctx, candidato.Nome)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ProdutoDTO{}, fmt.Errorf("o produto %s não foi encontrado: %w", candidato.Nome, domain.ErrNotFound)
		}
		return ProdutoDTO{}, err
	}
	existente.Descricao = candidato.Descricao
	existente.Preco = candidato.Preco
	existente.Ativo = candidato.Ativo
	if err := uc.Produtos.Save(ctx, existente); err != nil {
		return ProdutoDTO{}, fmt.Errorf("não foi possível atualizar o produto %s: %w", candidato.Nome, err)
	}
	return toProdutoDTO(existente), nil
}

func (uc *ProdutoUC) Delete(ctx context.Context, id uint) error {
	p, err := uc.Produtos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("produto com ID %d: %w", id, domain.ErrNotFound)
		}
		return err
	}
	if err := uc.Produtos.Delete(ctx, p); err != nil {
		return fmt.Errorf("não foi possível deletar o produto %s: %w", p.Nome, err)
	}
	return nil
}
