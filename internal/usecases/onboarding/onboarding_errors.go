package onboarding

import (
	"errors"
	"fmt"
)

var (
	ErrClientNotFound      = errors.New("client not found, please complete onboarding first")
	ErrClientAlreadyExists = errors.New("client already registered for this user")
	ErrMissingRequiredData = errors.New("missing required fields")
	ErrGenerateID          = errors.New("error generating client id")
	ErrDatabaseOperation   = errors.New("database operation error")
)

// OnboardingError é um erro com contexto adicional para o cadastro do client
type OnboardingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  int    // Usuário dono do client
	Details string // Detalhes adicionais
}

func (e *OnboardingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OnboardingError) Unwrap() error {
	return e.Err
}

func NewOnboardingError(err error, code string, userID int, details string) *OnboardingError {
	return &OnboardingError{
		Err:     err,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
