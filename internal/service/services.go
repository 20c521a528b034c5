package service

import (
	"github.com/MKhiriev/go-cols/internal/config"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/store"
	"github.com/MKhiriev/go-cols/internal/validators"
)

// Services groups the domain services used by the HTTP handler.
type Services struct {
	AuthService      AuthService
	ColService       ColService
	AscensionService AscensionService
	ExplorerService  ExplorerService
	DashboardService DashboardService
	AppInfoService   AppInfoService
}

// NewServices builds every server-side service over storages. All of them
// share one validator.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewDomainValidator()

	return &Services{
		AuthService:      NewAuthService(storages.ProfileRepository, validator, cfg, logger),
		ColService:       NewColService(storages, validator, logger),
		AscensionService: NewAscensionValidationService(validator).Wrap(NewAscensionService(storages, logger)),
		ExplorerService:  NewExplorerService(storages, logger),
		DashboardService: NewDashboardService(storages, logger),
		AppInfoService:   appInfo,
	}, nil
}
