package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/repository"
)

const redisPingTimeout = 2 * time.Second

type healthService struct {
	repo              repository.Repository
	redisClient       *redis.Client
	deliveryService   DeliveryService
	completionService CompletionService
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	deliveryService DeliveryService,
	completionService CompletionService,
) HealthService {
	return &healthService{
		repo:              repo,
		redisClient:       redisClient,
		deliveryService:   deliveryService,
		completionService: completionService,
	}
}

func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status: api.Healthy,
	}

	status.DatabaseStatus = s.checkDatabaseHealth(ctx)

	status.RedisStatus = s.checkRedisHealth(ctx)

	state, requests, failures := s.deliveryService.GetCircuitBreakerStatus()
	status.DeliveryCircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.DeliveryCircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.DeliveryCircuitBreakerStatus = "No requests yet"
	}

	status.CompletionCircuitBreakerState = s.completionService.GetCircuitBreakerState()

	// Redis only backs deduplication, the database is required.
	if status.DatabaseStatus != api.HealthResponseDatabaseStatusConnected {
		status.Status = api.Unhealthy
		return status
	}

	if status.RedisStatus != api.HealthResponseRedisStatusConnected ||
		state == api.Open ||
		status.CompletionCircuitBreakerState == api.Open {
		status.Status = api.Degraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth(ctx context.Context) api.HealthResponseDatabaseStatus {
	if err := s.repo.Ping(ctx); err != nil {
		return api.HealthResponseDatabaseStatusDisconnected
	}
	return api.HealthResponseDatabaseStatusConnected
}

func (s *healthService) checkRedisHealth(ctx context.Context) api.HealthResponseRedisStatus {
	ctx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return api.HealthResponseRedisStatusDisconnected
	}

	return api.HealthResponseRedisStatusConnected
}
