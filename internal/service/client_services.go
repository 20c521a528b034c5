package service

import (
	"github.com/MKhiriev/go-cols/internal/adapter"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/validators"
)

// ClientServices groups the services the terminal client uses.
type ClientServices struct {
	AuthService    ClientAuthService
	TrackerService ClientTrackerService
}

// NewClientServices wires the client services for the server at serverURL,
// which also keys the saved session.
func NewClientServices(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, serverURL string, logger *logger.Logger) *ClientServices {
	validator := validators.NewDomainValidator()

	return &ClientServices{
		AuthService:    NewClientAuthService(sessions, serverAdapter, validator, serverURL, logger),
		TrackerService: NewClientTrackerService(serverAdapter, validator, logger),
	}
}
