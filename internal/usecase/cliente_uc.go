package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/zebodega/vendas/internal/domain"
)

type ClienteUC struct {
	Clientes domain.ClienteRepo
}

func (uc *ClienteUC) GetByID(ctx context.Context, id uint) (ClienteDTO, error) {
	c, err := uc.Clientes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ClienteDTO{}, fmt.Errorf("cliente com ID %d: %w", id, domain.ErrNotFound)
		}
		return ClienteDTO{}, err
	}
	return toClienteDTO(c), nil
}

func (uc *ClienteUC) List(ctx context.Context) ([]ClienteDTO, error) {
	clientes, err := uc.Clientes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ClienteDTO, 0, len(clientes))
	for i := range clientes {
		out = append(out, toClienteDTO(&clientes[i]))
	}
	return out, nil
}

func (uc *ClienteUC) Create(ctx context.Context, novo *domain.Cliente) (ClienteDTO, error) {
	if novo == nil {
		return ClienteDTO{}, fmt.Errorf("cliente nil: %w", domain.ErrInvalidArgument)
	}
	if err := novo.Validate(); err != nil {
		return ClienteDTO{}, err
	}
	if ok, err := uc.Clientes.ExistsByCPF(ctx, novo.CPF); err != nil {
		return ClienteDTO{}, err
	} else if ok {
		return ClienteDTO{}, fmt.Errorf("já existe um cliente cadastrado com esse CPF %s: %w", novo.CPF, domain.ErrConstraint)
	}
	if ok, err := uc.Clientes.ExistsByEmail(ctx, novo.Email); err != nil {
		return ClienteDTO{}, err
	} else if ok {
		return ClienteDTO{}, fmt.Errorf("já existe um cliente com esse e-mail %s: %w", novo.Email, domain.ErrConstraint)
	}
	if err := uc.Clientes.Save(ctx, novo); err != nil {
		return ClienteDTO{}, fmt.Errorf("não foi possível criar o cliente %s: %w", novo.Nome, err)
	}
	return toClienteDTO(novo), nil
}

// Update localiza o cliente pelo id e sobrescreve os campos de negócio.
func (uc *ClienteUC) Update(ctx context.Context, candidato *domain.Cliente) (ClienteDTO, error) {
	if candidato == nil {
		return ClienteDTO{}, fmt.Errorf("cliente nil: %w", domain.ErrInvalidArgument)
	}
	existente, err := uc.Clientes.FindByID(ctx, candidato.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ClienteDTO{}, fmt.Errorf("cliente com ID %d: %w", candidato.ID, domain.ErrNotFound)
		}
		return ClienteDTO{}, err
	}
	existente.Nome = candidato.Nome
	existente.CPF = candidato.CPF
	existente.Email = candidato.Email
	existente.Telefone = candidato.Telefone
	existente.DataNascimento = candidato.DataNascimento
	existente.Sexo = candidato.Sexo
	existente.Apelido = candidato.Apelido
	if err := existente.Validate(); err != nil {
		return ClienteDTO{}, err
	}
	if err := uc.Clientes.Save(ctx, existente); err != nil {
		return ClienteDTO{}, fmt.Errorf("não foi possível atualizar o cliente %d: %w", candidato.ID, err)
	}
	return toClienteDTO(existente), nil
}

func (uc *ClienteUC) Delete(ctx context.Context, id uint) error {
	c, err := uc.Clientes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("cliente com ID %d: %w", id, domain.ErrNotFound)
		}
		return err
	}
	if err := uc.Clientes.Delete(ctx, c); err != nil {
		return fmt.Errorf("não foi possível deletar o cliente %d: %w", id, err)
	}
	return nil
}
