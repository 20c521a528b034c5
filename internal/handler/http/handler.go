package http

import (
	"github.com/MKhiriev/go-cols/internal/config"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/service"
)

// Handler serves the cols REST API over the domain services.
type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *metrics

	logger *logger.Logger
}

// NewHandler returns a Handler with its own Prometheus request metrics.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  newMetrics(),
		logger:   logger,
	}
}
