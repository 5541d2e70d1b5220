package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/zebodega/vendas/internal/domain"
)

type FormaPagamentoUC struct {
	Formas domain.FormaPagamentoRepo
}

func (uc *FormaPagamentoUC) GetByID(ctx context.Context, id uint) (FormaPagamentoDTO, error) {
	f, err := uc.Formas.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return FormaPagamentoDTO{}, fmt.Errorf("forma de pagamento com ID %d: %w", id, domain.ErrNotFound)
		}
		return FormaPagamentoDTO{}, err
	}
	return toFormaPagamentoDTO(f), nil
}

func (uc *FormaPagamentoUC) List(ctx context.Context) ([]FormaPagamentoDTO, error) {
	formas, err := uc.Formas.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]FormaPagamentoDTO, 0, len(formas))
	for i := range formas {
		out = append(out, toFormaPagamentoDTO(&formas[i]))
	}
	return out, nil
}

func (uc *FormaPagamentoUC) Create(ctx context.Context, nova *domain.FormaPagamento) (FormaPagamentoDTO, error) {
	if nova == nil {
		return FormaPagamentoDTO{}, fmt.Errorf("forma de pagamento nil: %w", domain.ErrInvalidArgument)
	}
	if err := nova.Validate(); err != nil {
		return FormaPagamentoDTO{}, err
	}
	if nova.ID != 0 {
		if ok, err := uc.Formas.ExistsByID(ctx, nova.ID); err != nil {
			return FormaPagamentoDTO{}, err
		} else if ok {
			return FormaPagamentoDTO{}, fmt.Errorf("já existe uma forma de pagamento cadastrada com esse id %d: %w", nova.ID, domain.ErrConstraint)
		}
	}
	if err := uc.Formas.Save(ctx, nova); err != nil {
		return FormaPagamentoDTO{}, fmt.Errorf("não foi possível criar a forma de pagamento %s: %w", nova.Nome, err)
	}
	return toFormaPagamentoDTO(nova), nil
}

func (uc *FormaPagamentoUC) Update(ctx context.Context, candidata *domain.FormaPagamento) (FormaPagamentoDTO, error) {
	if candidata == nil {
		return FormaPagamentoDTO{}, fmt.Errorf("forma de pagamento nil: %w", domain.ErrInvalidArgument)
	}
	if err := candidata.Validate(); err != nil {
		return FormaPagamentoDTO{}, err
	}
	existente, err := uc.Formas.FindByID(ctx, candidata.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return FormaPagamentoDTO{}, fmt.Errorf("forma de pagamento com ID %d: %w", candidata.ID, domain.ErrNotFound)
		}
		return FormaPagamentoDTO{}, err
	}
	existente.Nome = candidata.Nome
	existente.Descricao = candidata.Descricao
	if err := uc.Formas.Save(ctx, existente); err != nil {
		return FormaPagamentoDTO{}, fmt.Errorf("não foi possível atualizar a forma de pagamento %d: %w", candidata.ID, err)
	}
	return toFormaPagamentoDTO(existente), nil
}

func (uc *FormaPagamentoUC) Delete(ctx context.Context, id uint) error {
	f, err := uc.Formas.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("forma de pagamento com ID %d: %w", id, domain.ErrNotFound)
		}
		return err
	}
	if err := uc.Formas.Delete(ctx, f); err != nil {
		return fmt.Errorf("não foi possível deletar a forma de pagamento %d: %w", id, err)
	}
	return nil
}
