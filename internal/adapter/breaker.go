package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-cols/internal/config"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
)

const (
	defaultBreakerFailures = 3
	defaultBreakerTimeout  = 30 * time.Second
)

// newBreaker opens after cfg.BreakerFailures consecutive failures and probes
// again after cfg.BreakerTimeout. A canceled request is not a failure.
func newBreaker(cfg config.Adapter, log *logger.Logger) *gobreaker.CircuitBreaker[*resty.Response] {
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = defaultBreakerFailures
	}
	timeout := cfg.BreakerTimeout
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}

	return gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name:        "cols-api",
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})
}
