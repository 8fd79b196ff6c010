package service

import (
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/auth"
	"github.com/popeskul/whatsapp-assistant/internal/config"
	"github.com/popeskul/whatsapp-assistant/internal/repository"
)

type Service struct {
	Completion CompletionService
	Delivery   DeliveryService
	Webhook    WebhookService
	Admin      AdminService
	Health     HealthService
	Tokens     *auth.TokenManager
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	completionService := NewCompletionService(&cfg.AI, logger.Named("completion"))
	deliveryService := NewDeliveryService(&cfg.WhatsApp, logger.Named("delivery"))
	dedup := NewRedisDeduplicator(redisClient, time.Duration(cfg.Redis.DedupTTL)*time.Second)
	tokens := auth.NewTokenManager(cfg.Admin.JWTSecret, time.Duration(cfg.Admin.TokenTTLMinutes)*time.Minute)

	webhookService := NewWebhookService(cfg, repo, completionService, deliveryService, dedup, logger.Named("webhook"))
	adminService := NewAdminService(&cfg.Admin, tokens, repo, completionService, logger.Named("admin"))
	healthService := NewHealthService(repo, redisClient, deliveryService, completionService)

	return &Service{
		Completion: completionService,
		Delivery:   deliveryService,
		Webhook:    webhookService,
		Admin:      adminService,
		Health:     healthService,
		Tokens:     tokens,
	}
}
