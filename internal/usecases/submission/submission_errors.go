package submission

import (
	"errors"
	"fmt"
)

// Erros específicos do envio de campanhas
var (
	// Erros de recurso
	ErrClientNotFound = errors.New("client not found, please complete onboarding first")

	// Erros de validação
	ErrInvalidSubmission = errors.New("invalid campaign submission")

	// Erros da automação
	ErrWorkflowUnavailable = errors.New("workflow engine unavailable")
	ErrWorkflowRejected    = errors.New("workflow engine rejected the request")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// SubmissionError é um erro com contexto adicional para o envio de campanhas
type SubmissionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *SubmissionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func NewSubmissionError(err error, code string, details string) *SubmissionError {
	return &SubmissionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
