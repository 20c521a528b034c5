package config

import "fmt"

// ServerConfig is the part of the configuration used by cmd/server.
type ServerConfig struct {
	App     App
	DB      DB
	Server  Server
	Version string
}

// GetServerConfig loads the structured config and validates the fields the
// API server needs.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ForServer()
	return serverCfg, serverCfg.validate()
}

// ForServer projects the structured config onto a [ServerConfig].
func (cfg *StructuredConfig) ForServer() *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		DB:      cfg.Storage.DB,
		Server:  cfg.Server,
		Version: cfg.App.Version,
	}
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.RateLimit <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
