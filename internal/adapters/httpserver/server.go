package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/zebodega/vendas/internal/domain"
	"github.com/zebodega/vendas/internal/usecase"
)

type Server struct {
	mux      *http.ServeMux
	clientes *usecase.ClienteUC
	produtos *usecase.ProdutoUC
	formas   *usecase.FormaPagamentoUC
	pedidos  *usecase.PedidoUC
	itens    *usecase.ItensPedidoUC
	usuarios *usecase.UsuarioUC
}

func New(clientes *usecase.ClienteUC, produtos *usecase.ProdutoUC, formas *usecase.FormaPagamentoUC,
	pedidos *usecase.PedidoUC, itens *usecase.ItensPedidoUC, usuarios *usecase.UsuarioUC) http.Handler {
	s := &Server{
		mux:      http.NewServeMux(),
		clientes: clientes,
		produtos: produtos,
		formas:   formas,
		pedidos:  pedidos,
		itens:    itens,
		usuarios: usuarios,
	}
	s.routes()
	return s.withLogging(s.mux)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/clientes", s.apiClientes)
	s.mux.HandleFunc("/api/clientes/", s.apiClienteByID)
	s.mux.HandleFunc("/api/produtos", s.apiProdutos)
	s.mux.HandleFunc("/api/produtos/", s.apiProdutoByID)
	s.mux.HandleFunc("/api/formas-pagamento", s.apiFormasPagamento)
	s.mux.HandleFunc("/api/formas-pagamento/", s.apiFormaPagamentoByID)
	s.mux.HandleFunc("/api/pedidos", s.apiPedidos)
	s.mux.HandleFunc("/api/pedidos/faturamento", s.apiFaturamento)
	s.mux.HandleFunc("/api/pedidos/", s.apiPedidoByID)
	s.mux.HandleFunc("/api/itens-pedido", s.apiItensPedido)
	s.mux.HandleFunc("/api/itens-pedido/", s.apiItensPedidoByID)
	s.mux.HandleFunc("/api/usuarios", s.apiUsuarios)
	s.mux.HandleFunc("/api/usuarios/", s.apiUsuarioByID)
	s.mux.HandleFunc("/api/relatorios/vendas.xlsx", s.apiRelatorioVendas)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Dur("dur", time.Since(start)).Msg("http")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr mapeia os sentinelas do domínio para códigos HTTP:
// not found 404, restrição 409, regra de negócio 422, argumento 400,
// integridade e desconhecidos 500.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrConstraint):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrBusinessRule):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrDataIntegrity):
		log.Error().Err(err).Msg("integridade")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		log.Error().Err(err).Msg("interno")
		http.Error(w, "erro interno", http.StatusInternalServerError)
	}
}

func pathID(r *http.Request, prefix string) (uint, bool) {
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	raw = strings.TrimSuffix(raw, "/")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// --- Clientes ---

func (s *Server) apiClientes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.clientes.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req usecase.ClienteDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", http.StatusBadRequest)
			return
		}
		c, err := req.ToModel()
		if err != nil {
			http.Error(w, "dataNascimento", http.StatusBadRequest)
			return
		}
		c.ID = 0
		dto, err := s.clientes.Create(r.Context(), &c)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dto)
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) apiClienteByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/clientes/")
	if !ok {
		http.Error(w, "id", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet:
		dto, err := s.clientes.GetByID(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
	case http.MethodPut:
		var req usecase.ClienteDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", http.StatusBadRequest)
			return
		}
		c, err := req.ToModel()
		if err != nil {
			http.Error(w, "dataNascimento", http.StatusBadRequest)
			return
		}
		c.ID = id
		dto, err := s.clientes.Update(r.Context(), &c)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
	case http.MethodDelete:
		if err := s.clientes.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

// --- Produtos ---

func (s *Server) apiProdutos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.produtos.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req usecase.ProdutoDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", http.StatusBadRequest)
			return
		}
		p := req.ToModel()
		p.ID = 0
		dto, err := s.produtos.Create(r.Context(), &p)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dto)
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) apiProdutoByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/produtos/")
	if !ok {
		http.Error(w, "id", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet:
		dto, err := s.produtos.GetByID(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
	case http.MethodPut:
		var req usecase.ProdutoDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", http.StatusBadRequest)
			return
		}
		p := req.ToModel()
		p.ID = id
		dto, err := s.produtos.Update(r.Context(), &p)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
	case http.MethodDelete:
		if err := s.produtos.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

// --- Formas de pagamento ---

func (s *Server) apiFormasPagamento(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.formas.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req usecase.FormaPagamentoDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", http.StatusBadRequest)
			return
		}
		f := req.ToModel()
		dto, err := s.formas.Create(r.Context(), &f)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dto)
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) apiFormaPagamentoByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/formas-pagamento/")
	if !ok {
		http.Error(w, "id", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet:
		dto, err := s.formas.GetByID(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
	case http.MethodPut:
		var req usecase.FormaPagamentoDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", http.StatusBadRequest)
			return
		}
		f := req.ToModel()
		f.ID = id
		dto, err := s.formas.Update(r.Context(), &f)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
	case http.MethodDelete:
		if err := s.formas.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

// --- Pedidos ---

func (s *Server) apiPedidos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.pedidos.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req usecase.PedidoDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", http.StatusBadRequest)
			return
		}
		p, err := req.ToModel()
		if err != nil {
			http.Error(w, "dataCriacao", http.StatusBadRequest)
			return
		}
		p.ID = 0
		dto, err := s.pedidos.Create(r.Context(), &p)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dto)
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

// apiPedidoByID atende /api/pedidos/{id} e /api/pedidos/{id}/desconto.
func (s *Server) apiPedidoByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/pedidos/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	if len(parts) == 2 && parts[1] == "desconto" {
		if r.Method != http.MethodPost {
			http.Error(w, "method", http.StatusMethodNotAllowed)
			return
		}
		id64, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil || id64 == 0 {
			http.Error(w, "id", http.StatusBadRequest)
			return
		}
		novoTotal, err := s.pedidos.ApplyDiscount(r.Context(), uint(id64))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"valorTotal": novoTotal})
		return
	}

	id, ok := pathID(r, "/api/pedidos/")
	if !ok {
		http.Error(w, "id", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet:
		dto, err := s.pedidos.GetByID(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
	case http.MethodPut:
		var req usecase.PedidoDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", http.StatusBadRequest)
			return
		}
		p, err := req.ToModel()
		if err != nil {
			http.Error(w, "dataCriacao", http.StatusBadRequest)
			return
		}
		p.ID = id
		dto, err := s.pedidos.Update(r.Context(), &p)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
	case http.MethodDelete:
		if err := s.pedidos.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func parsePeriodo(r *http.Request) (time.Time, time.Time, error) {
	inicio, err := time.Parse("2006-01-02", r.URL.Query().Get("inicio"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	fim, err := time.Parse("2006-01-02", r.URL.Query().Get("fim"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return inicio, fim, nil
}

func (s *Server) apiFaturamento(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	inicio, fim, err := parsePeriodo(r)
	if err != nil {
		http.Error(w, "inicio/fim", http.StatusBadRequest)
		return
	}
	total, err := s.pedidos.RevenueForPeriod(r.Context(), inicio, fim)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"faturamento": total})
}

// --- Itens de pedido ---

func (s *Server) apiItensPedido(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.itens.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req usecase.ItensPedidoDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", http.StatusBadRequest)
			return
		}
		i := req.ToModel()
		i.ID = 0
		dto, err := s.itens.Create(r.Context(), &i)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dto)
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) apiItensPedidoByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/itens-pedido/")
	if !ok {
		http.Error(w, "id", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet:
		dto, err := s.itens.GetByID(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
	case http.MethodPut:
		var req usecase.ItensPedidoDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", http.StatusBadRequest)
			return
		}
		i := req.ToModel()
		i.ID = id
		dto, err := s.itens.Update(r.Context(), &i)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
	case http.MethodDelete:
		if err := s.itens.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

// --- Usuários ---

type usuarioReq struct {
	UserName  string `json:"userName"`
	Password  string `json:"password"`
	Ativo     bool   `json:"ativo"`
	ClienteID uint   `json:"idCliente"`
}

func (s *Server) apiUsuarios(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.usuarios.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req usuarioReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", http.StatusBadRequest)
			return
		}
		u := domain.Usuario{
			UserName:  req.UserName,
			Password:  req.Password,
			Ativo:     req.Ativo,
			ClienteID: req.ClienteID,
		}
		dto, err := s.usuarios.Create(r.Context(), &u)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dto)
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

func (s *Server) apiUsuarioByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "/api/usuarios/")
	if !ok {
		http.Error(w, "id", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet:
		dto, err := s.usuarios.GetByID(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
	case http.MethodPut:
		var req usuarioReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "json", http.StatusBadRequest)
			return
		}
		u := domain.Usuario{
			ID:        id,
			UserName:  req.UserName,
			Password:  req.Password,
			Ativo:     req.Ativo,
			ClienteID: req.ClienteID,
		}
		dto, err := s.usuarios.Update(r.Context(), &u)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
	case http.MethodDelete:
		if err := s.usuarios.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

// --- Relatório de vendas ---

func (s *Server) apiRelatorioVendas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	inicio, fim, err := parsePeriodo(r)
	if err != nil {
		http.Error(w, "inicio/fim", http.StatusBadRequest)
		return
	}
	pedidos, total, err := s.pedidos.SalesForPeriod(r.Context(), inicio, fim)
	if err != nil {
		writeErr(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Vendas"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		writeErr(w, err)
		return
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Número", "Data", "Status", "Valor"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, p := range pedidos {
		vals := []any{p.NumeroPedido, p.DataCriacao, p.Status, p.ValorTotal.InexactFloat64()}
		for col, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	labelCell, _ := excelize.CoordinatesToCellName(3, len(pedidos)+2)
	totalCell, _ := excelize.CoordinatesToCellName(4, len(pedidos)+2)
	_ = f.SetCellValue(sheet, labelCell, "Total")
	_ = f.SetCellValue(sheet, totalCell, total.InexactFloat64())

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="vendas.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("relatório")
	}
}
