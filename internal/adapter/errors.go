package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels wrapped by [*APIError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimited         = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrServerUnreachable is returned when the request could not be sent or the
// circuit breaker is open.
var ErrServerUnreachable = errors.New("Serveur injoignable, réessayez plus tard")

// errServerFault marks 5xx answers so the breaker counts them as failures.
var errServerFault = errors.New("server fault")

// APIError is a non-2xx answer. Message is the server's own text.
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

// Error returns the server message, or the status code when there is none.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d", e.StatusCode)
	}
	return e.Message
}

// Unwrap returns the status sentinel, so errors.Is matches on status class.
func (e *APIError) Unwrap() error {
	return e.kind
}

// Message returns the text to show the user for err: the server's message
// for an [*APIError], a fixed text when the server is unreachable, and
// err.Error() otherwise.
func Message(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, ErrServerUnreachable):
		return ErrServerUnreachable.Error()
	default:
		return err.Error()
	}
}
