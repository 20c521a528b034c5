package service

import "errors"

// Client-side errors.
var (
	ErrNoSession      = errors.New("no saved session")
	ErrSessionExpired = errors.New("Session expirée, reconnectez-vous")
	ErrNotFound       = errors.New("not found on server")
	ErrConflict       = errors.New("conflict on server")
)
