package config

import (
	"fmt"
	"time"
)

// ClientConfig is the part of the configuration used by cmd/client.
type ClientConfig struct {
	Adapter Adapter
	Session Session
	Workers Workers
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig loads the structured config and validates the fields the
// terminal client needs.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ForClient()
	return clientCfg, clientCfg.validate()
}

// ForClient projects the structured config onto a [ClientConfig].
func (cfg *StructuredConfig) ForClient() *ClientConfig {
	return &ClientConfig{
		Adapter:  cfg.Adapter,
		Session:  cfg.Storage.Session,
		Workers:  cfg.Workers,
		LogLevel: cfg.App.LogLevel,
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Session.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval < time.Second {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
