package service

import (
	"context"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

// CompletionService produces the assistant reply for a conversation turn.
type CompletionService interface {
	GenerateReply(ctx context.Context, message string, history []models.ChatTurn) string
	GetCircuitBreakerState() api.CircuitBreakerState
}

// DeliveryService talks to the WhatsApp Cloud API.
type DeliveryService interface {
	SendText(ctx context.Context, to, body string) (*models.SendResult, error)
	MarkRead(ctx context.Context, externalID string) bool
	GetCircuitBreakerStatus() (state api.CircuitBreakerState, requests uint32, failures uint32)
}

type Deduplicator interface {
	Claim(ctx context.Context, externalID string) (bool, error)
	Release(ctx context.Context, externalID string) error
}

type WebhookService interface {
	VerifySubscription(mode, token, challenge string) (string, error)
	ProcessPayload(ctx context.Context, payload *models.WebhookPayload) (api.WebhookAckStatus, error)
	ProcessMessage(ctx context.Context, msg *models.InboundMessage, senderName string) error
	ResolveUser(ctx context.Context, phoneNumber, name string) (*models.User, error)
}

type AdminService interface {
	Login(ctx context.Context, username, password string) (*api.TokenResponse, error)
	ListUsers(ctx context.Context, skip, limit int) (*api.UserListResponse, error)
	GetConversation(ctx context.Context, userID int64, limit int) (*api.ConversationResponse, error)
	GetStats(ctx context.Context) (*api.StatsResponse, error)
	GetLatestChats(ctx context.Context, limit int) ([]api.LatestChat, error)
	ChatWithAI(ctx context.Context, message string) (*api.AIChatResponse, error)
}

type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}
