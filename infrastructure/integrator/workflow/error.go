package workflow

import (
	"context"
	"fmt"
	"net"
	"syscall"

	"github.com/pkg/errors"
)

// ErrorKind classifica as falhas da chamada ao webhook da automação
type ErrorKind string

const (
	KindEndpointNotFound  ErrorKind = "endpoint_not_found"
	KindConnectionRefused ErrorKind = "connection_refused"
	KindHostNotFound      ErrorKind = "host_not_found"
	KindTimeout           ErrorKind = "timeout"
	KindUnreachable       ErrorKind = "unreachable"
	KindRejected          ErrorKind = "rejected"
)

var kindMessages = map[ErrorKind]string{
	KindEndpointNotFound:  "Workflow webhook not found. Check that the workflow is active and the webhook URL is correct.",
	KindConnectionRefused: "Workflow service refused the connection. Check that the workflow service is running.",
	KindHostNotFound:      "Workflow service host could not be resolved. Check the webhook URL.",
	KindTimeout:           "Workflow service did not respond in time. Try again later.",
	KindUnreachable:       "Workflow service is unreachable. Try again later.",
	KindRejected:          "Workflow service rejected the request.",
}

// Error é a falha classificada de uma chamada ao webhook
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("workflow %s: status %d", e.Kind, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("workflow %s: %s", e.Kind, e.Err.Error())
	}
	return fmt.Sprintf("workflow %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnavailable indica que a automação não pôde ser alcançada.
// Falso significa que ela respondeu e recusou o pedido.
func (e *Error) IsUnavailable() bool {
	switch e.Kind {
	case KindConnectionRefused, KindHostNotFound, KindTimeout, KindUnreachable:
		return true
	}
	return false
}

// Message é o texto exibido ao usuário para cada classificação
func (e *Error) Message() string {
	return kindMessages[e.Kind]
}

func newStatusError(statusCode int, body string) *Error {
	kind := KindRejected
	if statusCode == 404 {
		kind = KindEndpointNotFound
	}

	return &Error{
		Kind:       kind,
		StatusCode: statusCode,
		Body:       body,
	}
}

// classifyTransportError converte um erro de transporte do http.Client
func classifyTransportError(err error) *Error {
	var dnsErr *net.DNSError
	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: KindTimeout, Err: err}
	case errors.As(err, &dnsErr) && !dnsErr.IsTimeout:
		return &Error{Kind: KindHostNotFound, Err: err}
	case errors.Is(err, syscall.ECONNREFUSED):
		return &Error{Kind: KindConnectionRefused, Err: err}
	case errors.As(err, &netErr) && netErr.Timeout():
		return &Error{Kind: KindTimeout, Err: err}
	}

	return &Error{Kind: KindUnreachable, Err: err}
}
