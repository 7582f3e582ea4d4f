package tracking

import (
	"errors"
	"fmt"
)

// Erros específicos do acompanhamento de anúncios
var (
	// Erros de recurso
	ErrClientNotFound   = errors.New("client not found, please complete onboarding first")
	ErrAdNotFound       = errors.New("ad not found")
	ErrAdsetNotFound    = errors.New("adset not found")
	ErrCampaignNotFound = errors.New("campaign not found")

	// Erros de validação
	ErrMissingRequiredData = errors.New("missing required fields")
	ErrInvalidStatus       = errors.New("invalid ad status")
	ErrPostedWithoutAdID   = errors.New("a posted ad requires the platform ad id")

	// Erros de transição
	ErrStaleTransition = errors.New("status transition not allowed")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// TrackingError é um erro com contexto adicional para anúncios
type TrackingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	AdID    string // ID do anúncio envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *TrackingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TrackingError) Unwrap() error {
	return e.Err
}

func NewTrackingError(err error, code string, details string) *TrackingError {
	return &TrackingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewTrackingErrorWithID(err error, code string, adID string, details string) *TrackingError {
	return &TrackingError{
		Err:     err,
		Code:    code,
		AdID:    adID,
		Details: details,
	}
}
