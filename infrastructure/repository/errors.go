package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrDuplicateKey indica violação de chave única no banco
var ErrDuplicateKey = errors.New("registro duplicado")

const uniqueViolationCode = "23505"

func wrapDatabaseError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, pqErr.Constraint)
		}
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}
