package domain

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

var (
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	cpfRe   = regexp.MustCompile(`^[0-9]{11}$`)
)

// Cliente é o comprador cadastrado. CPF e e-mail são chaves naturais,
// únicas entre todos os clientes.
type Cliente struct {
	ID             uint      `gorm:"primaryKey"`
	Nome           string    `gorm:"size:255;not null"`
	CPF            string    `gorm:"column:cpf;size:11;not null;uniqueIndex"`
	Email          string    `gorm:"size:255;not null;uniqueIndex"`
	Telefone       string    `gorm:"size:14;not null"`
	DataNascimento time.Time `gorm:"type:date;not null"`
	Sexo           string    `gorm:"size:1;not null"`
	Apelido        string    `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Cliente) TableName() string { return "clientes" }

func (c *Cliente) Validate() error {
	if c.Nome == "" {
		return fmt.Errorf("nome do cliente é obrigatório: %w", ErrBusinessRule)
	}
	if !cpfRe.MatchString(c.CPF) {
		return fmt.Errorf("CPF inválido %q: %w", c.CPF, ErrBusinessRule)
	}
	if !emailRe.MatchString(c.Email) {
		return fmt.Errorf("e-mail inválido %q: %w", c.Email, ErrBusinessRule)
	}
	if c.Telefone == "" {
		return fmt.Errorf("telefone do cliente é obrigatório: %w", ErrBusinessRule)
	}
	if c.DataNascimento.IsZero() || !c.DataNascimento.Before(time.Now()) {
		return fmt.Errorf("data de nascimento deve ser anterior à data atual: %w", ErrBusinessRule)
	}
	if c.Sexo != "M" && c.Sexo != "F" {
		return fmt.Errorf("sexo deve ser 'M' ou 'F': %w", ErrBusinessRule)
	}
	return nil
}

type ClienteRepo interface {
	FindByID(ctx context.Context, id uint) (*Cliente, error)
	FindAll(ctx context.Context) ([]Cliente, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, c *Cliente) error
	Delete(ctx context.Context, c *Cliente) error
}
