package domain

import "errors"

// Erros sentinela do domínio. Os serviços anexam contexto com
// fmt.Errorf("...: %w", Err...) e os chamadores testam com errors.Is.
var (
	// ErrNotFound: o registro referenciado não existe.
	ErrNotFound = errors.New("registro não encontrado")

	// ErrConstraint: violação de unicidade ou pré-condição de chave natural.
	ErrConstraint = errors.New("violação de restrição")

	// ErrBusinessRule: regra de negócio violada (campos inválidos,
	// desconto sobre pedido não ativo, etc).
	ErrBusinessRule = errors.New("violação de regra de negócio")

	// ErrDataIntegrity: o banco rejeitou a escrita (índice único, FK,
	// corrida perdida para outra escrita concorrente).
	ErrDataIntegrity = errors.New("falha de integridade de dados")

	// ErrInvalidArgument: parâmetros estruturalmente inválidos do chamador.
	ErrInvalidArgument = errors.New("argumento inválido")
)
