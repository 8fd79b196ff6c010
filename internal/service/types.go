package service

import "github.com/popeskul/whatsapp-assistant/internal/api"

type HealthStatus struct {
	Status                        api.HealthResponseStatus         `json:"status"`
	DatabaseStatus                api.HealthResponseDatabaseStatus `json:"database_status"`
	RedisStatus                   api.HealthResponseRedisStatus    `json:"redis_status"`
	DeliveryCircuitBreakerStatus  string                           `json:"delivery_circuit_breaker_status,omitempty"`
	DeliveryCircuitBreakerState   api.CircuitBreakerState          `json:"delivery_circuit_breaker_state,omitempty"`
	CompletionCircuitBreakerState api.CircuitBreakerState          `json:"completion_circuit_breaker_state,omitempty"`
}
