package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/config"
	"github.com/popeskul/whatsapp-assistant/internal/service"
)

func newTestBreaker(cfg config.CircuitBreakerConfig) *service.CircuitBreaker {
	return service.NewCircuitBreaker("test", &cfg, zap.NewNop())
}

func tripBreaker(cb *service.CircuitBreaker, attempts int) {
	for i := 0; i < attempts; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("failure")
		})
	}
}

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	tests := []struct {
		name     string
		function func() error
	}{
		{
			name: "successful execution",
			function: func() error {
				return nil
			},
		},
		{
			name: "successful execution with delay",
			function: func() error {
				time.Sleep(10 * time.Millisecond)
				return nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := newTestBreaker(config.CircuitBreakerConfig{
				MaxRequests:      3,
				Interval:         10,
				Timeout:          60,
				FailureRatio:     0.6,
				ConsecutiveFails: 5,
			})

			assert.NoError(t, cb.Execute(context.Background(), tt.function))
		})
	}
}

func TestCircuitBreaker_Execute_Failure(t *testing.T) {
	tests := []struct {
		name        string
		setupFunc   func(*service.CircuitBreaker)
		cancelCtx   bool
		function    func() error
		expectedErr error
		expectedMsg string
	}{
		{
			name: "function returns error",
			function: func() error {
				return errors.New("test error")
			},
			expectedMsg: "test error",
		},
		{
			name:      "context cancelled",
			cancelCtx: true,
			function: func() error {
				return nil
			},
			expectedErr: context.Canceled,
		},
		{
			name: "circuit breaker open",
			setupFunc: func(cb *service.CircuitBreaker) {
				tripBreaker(cb, 10)
			},
			function: func() error {
				return nil
			},
			expectedErr: service.ErrCircuitOpen,
			expectedMsg: "test unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := newTestBreaker(config.CircuitBreakerConfig{
				MaxRequests:      3,
				Interval:         10,
				Timeout:          60,
				FailureRatio:     0.5,
				ConsecutiveFails: 3,
			})

			if tt.setupFunc != nil {
				tt.setupFunc(cb)
			}

			ctx := context.Background()
			if tt.cancelCtx {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			err := cb.Execute(ctx, tt.function)
			require.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
			if tt.expectedMsg != "" {
				assert.Contains(t, err.Error(), tt.expectedMsg)
			}
		})
	}
}

func TestCircuitBreaker_StateTransitions(t *testing.T) {
	cb := newTestBreaker(config.CircuitBreakerConfig{
		MaxRequests:      3,
		Interval:         10,
		Timeout:          1,
		FailureRatio:     0.5,
		ConsecutiveFails: 2,
	})

	assert.Equal(t, api.Closed, cb.GetState())

	tripBreaker(cb, 3)
	assert.Equal(t, api.Open, cb.GetState())

	err := cb.Execute(context.Background(), func() error {
		return nil
	})
	assert.ErrorIs(t, err, service.ErrCircuitOpen)

	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, api.HalfOpen, cb.GetState())

	for i := 0; i < 3; i++ {
		require.NoError(t, cb.Execute(context.Background(), func() error {
			return nil
		}))
	}
	assert.Equal(t, api.Closed, cb.GetState())
}

func TestCircuitBreaker_GetCounts(t *testing.T) {
	cb := newTestBreaker(config.CircuitBreakerConfig{
		MaxRequests:      10,
		Interval:         60,
		Timeout:          60,
		FailureRatio:     0.8,
		ConsecutiveFails: 10,
	})

	requests, failures := cb.GetCounts()
	assert.Equal(t, uint32(0), requests)
	assert.Equal(t, uint32(0), failures)

	for i := 0; i < 5; i++ {
		fail := i%2 == 1
		_ = cb.Execute(context.Background(), func() error {
			if fail {
				return errors.New("failure")
			}
			return nil
		})
	}

	requests, failures = cb.GetCounts()
	assert.Equal(t, uint32(5), requests)
	assert.Equal(t, uint32(2), failures)
}

func TestCircuitBreaker_IgnoresNonUpstreamErrors(t *testing.T) {
	errRejected := errors.New("recipient rejected")

	cfg := config.CircuitBreakerConfig{
		MaxRequests:      3,
		Interval:         60,
		Timeout:          60,
		FailureRatio:     0.5,
		ConsecutiveFails: 2,
	}
	cb := service.NewCircuitBreaker("test", &cfg, zap.NewNop(),
		service.WithNotUpstreamFault(func(err error) bool {
			return errors.Is(err, errRejected)
		}),
	)

	for i := 0; i < 5; i++ {
		err := cb.Execute(context.Background(), func() error {
			return errRejected
		})
		assert.ErrorIs(t, err, errRejected)
	}
	for i := 0; i < 5; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return context.Canceled
		})
	}

	assert.Equal(t, api.Closed, cb.GetState())
	_, failures := cb.GetCounts()
	assert.Equal(t, uint32(0), failures)
}
