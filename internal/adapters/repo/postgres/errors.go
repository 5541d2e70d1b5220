package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zebodega/vendas/internal/domain"
)

// translate converte os erros do gorm para os sentinelas do domínio.
// Precisa de gorm.Config{TranslateError: true} para que índice único e
// FK violados cheguem como ErrDuplicatedKey/ErrForeignKeyViolated.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("chave duplicada: %w", domain.ErrDataIntegrity)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("chave estrangeira violada: %w", domain.ErrDataIntegrity)
	default:
		return err
	}
}
