package app

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/zebodega/vendas/internal/adapters/httpserver"
	"github.com/zebodega/vendas/internal/adapters/repo/postgres"
	"github.com/zebodega/vendas/internal/domain"
	"github.com/zebodega/vendas/internal/usecase"
)

type App struct {
	DB               *gorm.DB
	ClienteUC        *usecase.ClienteUC
	ProdutoUC        *usecase.ProdutoUC
	FormaPagamentoUC *usecase.FormaPagamentoUC
	PedidoUC         *usecase.PedidoUC
	ItensPedidoUC    *usecase.ItensPedidoUC
	UsuarioUC        *usecase.UsuarioUC
}

func NewApp(db *gorm.DB) (*App, error) {
	clienteRepo := postgres.NewClienteRepo(db)
	produtoRepo := postgres.NewProdutoRepo(db)
	formaRepo := postgres.NewFormaPagamentoRepo(db)
	pedidoRepo := postgres.NewPedidoRepo(db)
	itensRepo := postgres.NewItensPedidoRepo(db)
	usuarioRepo := postgres.NewUsuarioRepo(db)

	app := &App{DB: db}
	app.ClienteUC = &usecase.ClienteUC{Clientes: clienteRepo}
	app.ProdutoUC = &usecase.ProdutoUC{Produtos: produtoRepo}
	app.FormaPagamentoUC = &usecase.FormaPagamentoUC{Formas: formaRepo}
	app.PedidoUC = &usecase.PedidoUC{Pedidos: pedidoRepo}
	app.ItensPedidoUC = &usecase.ItensPedidoUC{Itens: itensRepo, Pedidos: pedidoRepo, Produtos: produtoRepo}
	app.UsuarioUC = &usecase.UsuarioUC{Usuarios: usuarioRepo, Clientes: clienteRepo}

	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.ClienteUC, a.ProdutoUC, a.FormaPagamentoUC, a.PedidoUC, a.ItensPedidoUC, a.UsuarioUC)
}

func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(
		&domain.Cliente{}, &domain.Produto{}, &domain.FormaPagamento{}, &domain.Pedido{}, &domain.ItensPedido{}, &domain.Usuario{},
	); err != nil {
		return err
	}

	// AutoMigrate não cria índice funcional; nome de produto e e-mail de
	// cliente são únicos sem distinção de maiúsculas.
	_ = a.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_produtos_nome_lower ON produtos (LOWER(nome))").Error
	_ = a.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_clientes_email_lower ON clientes (LOWER(email))").Error

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_pedidos_data_status ON pedidos (data_criacao, status)").Error

	seedFormasPagamento(a.DB)
	return nil
}

func seedFormasPagamento(db *gorm.DB) {
	var count int64
	if err := db.Model(&domain.FormaPagamento{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	formas := []domain.FormaPagamento{
		{Nome: "Dinheiro", Descricao: "Pagamento em espécie"},
		{Nome: "Cartão de Crédito", Descricao: "Crédito em até 12x"},
		{Nome: "Cartão de Débito", Descricao: "Débito à vista"},
		{Nome: "Pix", Descricao: "Transferência instantânea"},
		{Nome: "Boleto", Descricao: "Boleto bancário"},
	}
	for _, f := range formas {
		db.Create(&f)
	}
}
