package config

import "time"

const (
	defaultTokenIssuer     = "go-cols"
	defaultTokenDuration   = 24 * time.Hour
	defaultBcryptCost      = 10
	defaultLogLevel        = "debug"
	defaultHTTPAddress     = "localhost:8080"
	defaultAdapterAddress  = "http://localhost:8080"
	defaultRequestTimeout  = 10 * time.Second
	defaultRateLimit       = 120
	defaultBreakerFailures = 5
	defaultBreakerTimeout  = 30 * time.Second
	defaultRefreshInterval = time.Minute
	defaultSessionPath     = "cols-session.db"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
			LogLevel:      defaultLogLevel,
		},
		Storage: Storage{
			Session: Session{Path: defaultSessionPath},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			RateLimit:      defaultRateLimit,
		},
		Adapter: Adapter{
			HTTPAddress:     defaultAdapterAddress,
			RequestTimeout:  defaultRequestTimeout,
			BreakerFailures: defaultBreakerFailures,
			BreakerTimeout:  defaultBreakerTimeout,
		},
		Workers: Workers{RefreshInterval: defaultRefreshInterval},
	}
}
