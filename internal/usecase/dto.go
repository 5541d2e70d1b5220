package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zebodega/vendas/internal/domain"
)

// Representações externas das entidades. A conversão é sempre campo a
// campo, escrita à mão, nos dois sentidos.

const dateLayout = "2006-01-02"

type ClienteDTO struct {
	ID             uint   `json:"idCliente"`
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	DataNascimento string `json:"dataNascimento"`
	Sexo           string `json:"sexo"`
	Apelido        string `json:"apelido,omitempty"`
}

func toClienteDTO(c *domain.Cliente) ClienteDTO {
	return ClienteDTO{
		ID:             c.ID,
		Nome:           c.Nome,
		CPF:            c.CPF,
		Email:          c.Email,
		Telefone:       c.Telefone,
		DataNascimento: c.DataNascimento.Format(dateLayout),
		Sexo:           c.Sexo,
		Apelido:        c.Apelido,
	}
}

func (d ClienteDTO) ToModel() (domain.Cliente, error) {
	var nasc time.Time
	if d.DataNascimento != "" {
		var err error
		nasc, err = time.Parse(dateLayout, d.DataNascimento)
		if err != nil {
			return domain.Cliente{}, err
		}
	}
	return domain.Cliente{
		ID:             d.ID,
		Nome:           d.Nome,
		CPF:            d.CPF,
		Email:          d.Email,
		Telefone:       d.Telefone,
		DataNascimento: nasc,
		Sexo:           d.Sexo,
		Apelido:        d.Apelido,
	}, nil
}

type ProdutoDTO struct {
	ID        uint            `json:"idProduto"`
	Nome      string          `json:"nome"`
	Descricao string          `json:"descricao"`
	Preco     decimal.Decimal `json:"preco"`
	Ativo     bool            `json:"ativo"`
}

func toProdutoDTO(p *domain.Produto) ProdutoDTO {
	return ProdutoDTO{ID: p.ID, Nome: p.Nome, Descricao: p.Descricao, Preco: p.Preco, Ativo: p.Ativo}
}

func (d ProdutoDTO) ToModel() domain.Produto {
	return domain.Produto{ID: d.ID, Nome: d.Nome, Descricao: d.Descricao, Preco: d.Preco, Ativo: d.Ativo}
}

type FormaPagamentoDTO struct {
	ID        uint   `json:"idFormaPagamento"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
}

func toFormaPagamentoDTO(f *domain.FormaPagamento) FormaPagamentoDTO {
	return FormaPagamentoDTO{ID: f.ID, Nome: f.Nome, Descricao: f.Descricao}
}

func (d FormaPagamentoDTO) ToModel() domain.FormaPagamento {
	return domain.FormaPagamento{ID: d.ID, Nome: d.Nome, Descricao: d.Descricao}
}

type PedidoDTO struct {
	ID           uint            `json:"idPedido"`
	NumeroPedido string          `json:"numeroPedido"`
	ValorTotal   decimal.Decimal `json:"valorTotal"`
	DataCriacao  string          `json:"dataCriacao"`
	Status       string          `json:"status"`
}

func toPedidoDTO(p *domain.Pedido) PedidoDTO {
	return PedidoDTO{
		ID:           p.ID,
		NumeroPedido: p.NumeroPedido,
		ValorTotal:   p.ValorTotal,
		DataCriacao:  p.DataCriacao.Format(dateLayout),
		Status:       p.Status,
	}
}

func (d PedidoDTO) ToModel() (domain.Pedido, error) {
	var criacao time.Time
	if d.DataCriacao != "" {
		var err error
		criacao, err = time.Parse(dateLayout, d.DataCriacao)
		if err != nil {
			return domain.Pedido{}, err
		}
	}
	return domain.Pedido{
		ID:           d.ID,
		NumeroPedido: d.NumeroPedido,
		ValorTotal:   d.ValorTotal,
		DataCriacao:  criacao,
		Status:       d.Status,
	}, nil
}

type ItensPedidoDTO struct {
	ID         uint `json:"idItensPedido"`
	Quantidade int  `json:"quantidade"`
	PedidoID   uint `json:"idPedido"`
	ProdutoID  uint `json:"idProduto"`
}

func toItensPedidoDTO(i *domain.ItensPedido) ItensPedidoDTO {
	return ItensPedidoDTO{ID: i.ID, Quantidade: i.Quantidade, PedidoID: i.PedidoID, ProdutoID: i.ProdutoID}
}

func (d ItensPedidoDTO) ToModel() domain.ItensPedido {
	return domain.ItensPedido{ID: d.ID, Quantidade: d.Quantidade, PedidoID: d.PedidoID, ProdutoID: d.ProdutoID}
}

type UsuarioDTO struct {
	ID        uint   `json:"idUsuario"`
	UserName  string `json:"userName"`
	Ativo     bool   `json:"ativo"`
	ClienteID uint   `json:"idCliente"`
}

// toUsuarioDTO nunca expõe a senha.
func toUsuarioDTO(u *domain.Usuario) UsuarioDTO {
	return UsuarioDTO{ID: u.ID, UserName: u.UserName, Ativo: u.Ativo, ClienteID: u.ClienteID}
}
