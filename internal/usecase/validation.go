package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Mesmo padrão usado pelo front; propositalmente simples.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

type AddLeadInput struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Objetivo string `json:"objetivo"`
	Detalhes string `json:"detalhes"`
}

func ValidateAddLeadInput(input AddLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Nome) == "" {
		errors = append(errors, ValidationError{"nome", "é obrigatório"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "é obrigatório"})
	} else if !IsValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "inválido"})
	}
	if strings.TrimSpace(input.Telefone) == "" {
		errors = append(errors, ValidationError{"telefone", "é obrigatório"})
	}
	if strings.TrimSpace(input.Objetivo) == "" {
		errors = append(errors, ValidationError{"objetivo", "é obrigatório"})
	}

	return errors
}

type AddDepoimentoInput struct {
	Nome       string `json:"nome"`
	Depoimento string `json:"depoimento"`
	Avaliacao  int    `json:"avaliacao"`
	Token      string `json:"token"`
}

func ValidateAddDepoimentoInput(input AddDepoimentoInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Nome) == "" {
		errors = append(errors, ValidationError{"nome", "é obrigatório"})
	}
	if strings.TrimSpace(input.Depoimento) == "" {
		errors = append(errors, ValidationError{"depoimento", "é obrigatório"})
	}
	if input.Avaliacao == 0 {
		errors = append(errors, ValidationError{"avaliacao", "é obrigatória"})
	} else if input.Avaliacao < 1 || input.Avaliacao > 5 {
		errors = append(errors, ValidationError{"avaliacao", "deve ser entre 1 e 5"})
	}

	return errors
}
