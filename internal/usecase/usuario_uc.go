package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/zebodega/vendas/internal/domain"
)

type UsuarioUC struct {
	Usuarios domain.UsuarioRepo
	Clientes domain.ClienteRepo
}

func (uc *UsuarioUC) GetByID(ctx context.Context, id uint) (UsuarioDTO, error) {
	u, err := uc.Usuarios.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return UsuarioDTO{}, fmt.Errorf("usuário com ID %d: %w", id, domain.ErrNotFound)
		}
		return UsuarioDTO{}, err
	}
	return toUsuarioDTO(u), nil
}

func (uc *UsuarioUC) List(ctx context.Context) ([]UsuarioDTO, error) {
	usuarios, err := uc.Usuarios.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UsuarioDTO, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, toUsuarioDTO(&usuarios[i]))
	}
	return out, nil
}

// Create exige que o cliente referenciado exista e ainda não tenha
// usuário.
func (uc *UsuarioUC) Create(ctx context.Context, novo *domain.Usuario) (UsuarioDTO, error) {
	if novo == nil {
		return UsuarioDTO{}, fmt.Errorf("usuário nil: %w", domain.ErrInvalidArgument)
	}
	if err := novo.Validate(); err != nil {
		return UsuarioDTO{}, err
	}
	if _, err := uc.Clientes.FindByID(ctx, novo.ClienteID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return UsuarioDTO{}, fmt.Errorf("cliente com ID %d: %w", novo.ClienteID, domain.ErrNotFound)
		}
		return UsuarioDTO{}, err
	}
	if ok, err := uc.Usuarios.ExistsByCliente(ctx, novo.ClienteID); err != nil {
		return UsuarioDTO{}, err
	} else if ok {
		return UsuarioDTO{}, fmt.Errorf("já existe um usuário cadastrado para o cliente %d: %w", novo.ClienteID, domain.ErrConstraint)
	}
	if err := uc.Usuarios.Save(ctx, novo); err != nil {
		return UsuarioDTO{}, fmt.Errorf("não foi possível criar o usuário %s: %w", novo.UserName, err)
	}
	return toUsuarioDTO(novo), nil
}

// Update localiza o usuário pelo cliente vinculado e sobrescreve os
// campos mutáveis.
func (uc *UsuarioUC) Update(ctx context.Context, candidato *domain.Usuario) (UsuarioDTO, error) {
	if candidato == nil {
		return UsuarioDTO{}, fmt.Errorf("usuário nil: %w", domain.ErrInvalidArgument)
	}
	if err := candidato.Validate(); err != nil {
		return UsuarioDTO{}, err
	}
	existente, err := uc.Usuarios.FindByCliente(ctx, candidato.ClienteID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return UsuarioDTO{}, fmt.Errorf("usuário do cliente %d: %w", candidato.ClienteID, domain.ErrNotFound)
		}
		return UsuarioDTO{}, err
	}
	existente.UserName = candidato.UserName
	existente.Password = candidato.Password
	existente.Ativo = candidato.Ativo
	if err := uc.Usuarios.Save(ctx, existente); err != nil {
		return UsuarioDTO{}, fmt.Errorf("não foi possível atualizar o usuário %s: %w", candidato.UserName, err)
	}
	return toUsuarioDTO(existente), nil
}

func (uc *UsuarioUC) Delete(ctx context.Context, id uint) error {
	u, err := uc.Usuarios.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("usuário com ID %d: %w", id, domain.ErrNotFound)
		}
		return err
	}
	if err := uc.Usuarios.Delete(ctx, u); err != nil {
		return fmt.Errorf("não foi possível deletar o usuário %d: %w", id, err)
	}
	return nil
}
