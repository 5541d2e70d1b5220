package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zebodega/vendas/internal/domain"
)

// Faixas de desconto sobre o valor total do pedido. Os limites são
// estritos no piso de cada faixa: 500.00 e 1000.00 ficam na faixa de
// baixo.
var (
	descontoPiso5  = decimal.NewFromInt(500)
	descontoPiso10 = decimal.NewFromInt(1000)
	taxaDesconto5  = decimal.NewFromFloat(0.05)
	taxaDesconto10 = decimal.NewFromFloat(0.10)
)

type PedidoUC struct {
	Pedidos domain.PedidoRepo
}

func (uc *PedidoUC) GetByID(ctx context.Context, id uint) (PedidoDTO, error) {
	p, err := uc.Pedidos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return PedidoDTO{}, fmt.Errorf("pedido com ID %d: %w", id, domain.ErrNotFound)
		}
		return PedidoDTO{}, err
	}
	return toPedidoDTO(p), nil
}

func (uc *PedidoUC) List(ctx context.Context) ([]PedidoDTO, error) {
	pedidos, err := uc.Pedidos.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PedidoDTO, 0, len(pedidos))
	for i := range pedidos {
		out = append(out, toPedidoDTO(&pedidos[i]))
	}
	return out, nil
}

func (uc *PedidoUC) Create(ctx context.Context, novo *domain.Pedido) (PedidoDTO, error) {
	if novo == nil {
		return PedidoDTO{}, fmt.Errorf("pedido nil: %w", domain.ErrInvalidArgument)
	}
	if novo.NumeroPedido == "" {
		novo.NumeroPedido = "PED-" + uuid.NewString()[:8]
	}
	if err := novo.Validate(); err != nil {
		return PedidoDTO{}, err
	}
	if ok, err := uc.Pedidos.ExistsByNumero(ctx, novo.NumeroPedido); err != nil {
		return PedidoDTO{}, err
	} else if ok {
		return PedidoDTO{}, fmt.Errorf("já existe um pedido cadastrado com esse número %s: %w", novo.NumeroPedido, domain.ErrConstraint)
	}
	if err := uc.Pedidos.Save(ctx, novo); err != nil {
		return PedidoDTO{}, fmt.Errorf("não foi possível criar o pedido %s: %w", novo.NumeroPedido, err)
	}
	return toPedidoDTO(novo), nil
}

// Update localiza o pedido pelo número e sobrescreve os campos mutáveis.
func (uc *PedidoUC) Update(ctx context.Context, candidato *domain.Pedido) (PedidoDTO, error) {
	if candidato == nil {
		return PedidoDTO{}, fmt.Errorf("pedido nil: %w", domain.ErrInvalidArgument)
	}
	if err := candidato.Validate(); err != nil {
		return PedidoDTO{}, err
	}
	existente, err := uc.Pedidos.FindByNumero(ctx, candidato.NumeroPedido)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return PedidoDTO{}, fmt.Errorf("o pedido %s não foi encontrado: %w", candidato.NumeroPedido, domain.ErrNotFound)
		}
		return PedidoDTO{}, err
	}
	existente.ValorTotal = candidato.ValorTotal
	existente.DataCriacao = candidato.DataCriacao
	existente.Status = candidato.Status
	if err := uc.Pedidos.Save(ctx, existente); err != nil {
		return PedidoDTO{}, fmt.Errorf("não foi possível atualizar o pedido %s: %w", candidato.NumeroPedido, err)
	}
	return toPedidoDTO(existente), nil
}

func (uc *PedidoUC) Delete(ctx context.Context, id uint) error {
	p, err := uc.Pedidos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("pedido com ID %d: %w", id, domain.ErrNotFound)
		}
		return err
	}
	if err := uc.Pedidos.Delete(ctx, p); err != nil {
		return fmt.Errorf("não foi possível deletar o pedido %s: %w", p.NumeroPedido, err)
	}
	return nil
}

// RevenueForPeriod soma o valor total dos pedidos ativos criados no
// intervalo fechado [inicio, fim]. Conjunto vazio soma zero.
func (uc *PedidoUC) RevenueForPeriod(ctx context.Context, inicio, fim time.Time) (decimal.Decimal, error) {
	if inicio.After(fim) {
		return decimal.Zero, fmt.Errorf("a data inicial não pode ser posterior à data final: %w", domain.ErrInvalidArgument)
	}
	pedidos, err := uc.Pedidos.FindByPeriodoEStatus(ctx, inicio, fim, domain.StatusAtivo)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range pedidos {
		total = total.Add(pedidos[i].ValorTotal)
	}
	return total, nil
}

// SalesForPeriod devolve os pedidos ativos do intervalo fechado
// [inicio, fim] junto com o faturamento somado, para o relatório de
// vendas.
func (uc *PedidoUC) SalesForPeriod(ctx context.Context, inicio, fim time.Time) ([]PedidoDTO, decimal.Decimal, error) {
	if inicio.After(fim) {
		return nil, decimal.Zero, fmt.Errorf("a data inicial não pode ser posterior à data final: %w", domain.ErrInvalidArgument)
	}
	pedidos, err := uc.Pedidos.FindByPeriodoEStatus(ctx, inicio, fim, domain.StatusAtivo)
	if err != nil {
		return nil, decimal.Zero, err
	}
	out := make([]PedidoDTO, 0, len(pedidos))
	total := decimal.Zero
	for i := range pedidos {
		out = append(out, toPedidoDTO(&pedidos[i]))
		total = total.Add(pedidos[i].ValorTotal)
	}
	return out, total, nil
}

// ApplyDiscount aplica a faixa de desconto sobre o total atual do
// pedido, persiste e devolve o novo total arredondado a centavos.
// Apenas pedidos ativos recebem desconto; em caso de recusa ou faixa
// sem desconto o total armazenado não muda.
func (uc *PedidoUC) ApplyDiscount(ctx context.Context, id uint) (decimal.Decimal, error) {
	p, err := uc.Pedidos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("pedido com ID %d: %w", id, domain.ErrNotFound)
		}
		return decimal.Zero, err
	}
	if !p.Ativo() {
		return decimal.Zero, fmt.Errorf("apenas pedidos ativos podem receber descontos: %w", domain.ErrBusinessRule)
	}

	total := p.ValorTotal
	desconto := decimal.Zero
	switch {
	case total.GreaterThan(descontoPiso10):
		desconto = total.Mul(taxaDesconto10)
	case total.GreaterThan(descontoPiso5):
		desconto = total.Mul(taxaDesconto5)
	}
	if desconto.IsZero() {
		// faixa sem desconto: nada a regravar
		return total, nil
	}

	p.ValorTotal = total.Sub(desconto).Round(2)
	if err := uc.Pedidos.Save(ctx, p); err != nil {
		return decimal.Zero, fmt.Errorf("não foi possível aplicar desconto ao pedido %s: %w", p.NumeroPedido, err)
	}
	return p.ValorTotal, nil
}
