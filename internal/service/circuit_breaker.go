// Package service provides business logic implementation for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/config"
)

// ErrCircuitOpen is returned when a breaker rejects a call without running it.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitBreaker guards one upstream (the Graph API or the completion endpoint).
type CircuitBreaker struct {
	name   string
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

type BreakerOption func(*breakerOptions)

type breakerOptions struct {
	notUpstreamFault func(error) bool
}

// WithNotUpstreamFault marks errors that must not count against the upstream,
// such as a rejected recipient number. They are still returned to the caller.
func WithNotUpstreamFault(fn func(error) bool) BreakerOption {
	return func(o *breakerOptions) {
		o.notUpstreamFault = fn
	}
}

func NewCircuitBreaker(name string, cfg *config.CircuitBreakerConfig, logger *zap.Logger, opts ...BreakerOption) *CircuitBreaker {
	o := breakerOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	logger = logger.With(zap.String("breaker", name))

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.ConsecutiveFails {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		OnStateChange: func(_ string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			return o.notUpstreamFault != nil && o.notUpstreamFault(err)
		},
	}

	return &CircuitBreaker{
		name:   name,
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

// Execute runs fn unless the breaker is open or ctx is already done.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := cb.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		cb.logger.Warn("Request rejected, upstream marked unavailable")
		return fmt.Errorf("%s unavailable: %w", cb.name, ErrCircuitOpen)
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		cb.logger.Warn("Request rejected while probing upstream")
		return fmt.Errorf("%s unavailable: too many requests: %w", cb.name, ErrCircuitOpen)
	default:
		return err
	}
}

// GetState returns the current state of the circuit breaker.
func (cb *CircuitBreaker) GetState() api.CircuitBreakerState {
	switch cb.cb.State() {
	case gobreaker.StateHalfOpen:
		return api.HalfOpen
	case gobreaker.StateOpen:
		return api.Open
	default:
		return api.Closed
	}
}

// GetCounts returns requests and failures in the current interval.
func (cb *CircuitBreaker) GetCounts() (requests, failures uint32) {
	counts := cb.cb.Counts()
	return counts.Requests, counts.TotalFailures
}
