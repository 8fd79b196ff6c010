package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/config"
	"github.com/popeskul/whatsapp-assistant/internal/models"
	"github.com/popeskul/whatsapp-assistant/internal/repository"
)

const subscribeMode = "subscribe"

var ErrInvalidVerifyToken = errors.New("invalid verify token")

type webhookService struct {
	verifyToken string
	maxHistory  int
	repo        repository.Repository
	completion  CompletionService
	delivery    DeliveryService
	dedup       Deduplicator
	logger      *zap.Logger
}

func NewWebhookService(
	cfg *config.Config,
	repo repository.Repository,
	completion CompletionService,
	delivery DeliveryService,
	dedup Deduplicator,
	logger *zap.Logger,
) WebhookService {
	maxHistory := cfg.AI.MaxHistory
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}

	return &webhookService{
		verifyToken: cfg.WhatsApp.VerifyToken,
		maxHistory:  maxHistory,
		repo:        repo,
		completion:  completion,
		delivery:    delivery,
		dedup:       dedup,
		logger:      logger,
	}
}

// VerifySubscription answers Meta's subscription handshake.
func (s *webhookService) VerifySubscription(mode, token, challenge string) (string, error) {
	if mode != subscribeMode || s.verifyToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(s.verifyToken)) != 1 {
		s.logger.Warn("Webhook verification failed", zap.String("mode", mode))
		return "", ErrInvalidVerifyToken
	}

	s.logger.Info("Webhook verified")
	return challenge, nil
}

// ProcessPayload walks every message of the payload in order. A failing
// message does not stop the walk; all failures are returned together.
func (s *webhookService) ProcessPayload(ctx context.Context, payload *models.WebhookPayload) (api.WebhookAckStatus, error) {
	if payload == nil || payload.Object != models.WhatsAppBusinessAccountObject {
		return api.WebhookAckStatusOk, nil
	}

	var errs error
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			value := change.Value
			for i := range value.Messages {
				msg := &value.Messages[i]
				if err := s.ProcessMessage(ctx, msg, value.SenderName(msg.From)); err != nil {
					s.logger.Error("Failed to process message",
						zap.String("messageID", msg.ID),
						zap.String("from", MaskPhone(msg.From)),
						zap.Error(err))
					errs = multierr.Append(errs, fmt.Errorf("message %s: %w", msg.ID, err))
				}
			}
		}
	}

	if errs != nil {
		return api.WebhookAckStatusError, errs
	}

	return api.WebhookAckStatusSuccess, nil
}

// ProcessMessage runs one inbound text message through the pipeline: store it,
// build the context window, ask for a reply, store the reply and deliver it.
// Delivery failures are logged only; the reply is already persisted.
func (s *webhookService) ProcessMessage(ctx context.Context, msg *models.InboundMessage, senderName string) (err error) {
	if msg.Type != models.MessageTypeText {
		s.logger.Debug("Skipping non-text message",
			zap.String("messageID", msg.ID),
			zap.String("type", msg.Type))
		return nil
	}

	body := msg.TextBody()
	if strings.TrimSpace(body) == "" {
		s.logger.Debug("Skipping empty message", zap.String("messageID", msg.ID))
		return nil
	}

	claimed, duplicate := s.claim(ctx, msg.ID)
	if duplicate {
		s.logger.Info("Skipping already processed message", zap.String("messageID", msg.ID))
		return nil
	}

	persisted := false
	defer func() {
		if err != nil && claimed && !persisted {
			s.release(msg.ID)
		}
	}()

	user, err := s.ResolveUser(ctx, msg.From, senderName)
	if err != nil {
		return fmt.Errorf("failed to resolve user: %w", err)
	}

	externalID := msg.ID
	inbound, err := s.repo.Message().Append(ctx, user.ID, models.MessageRoleUser, body, &externalID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateMessage) {
			s.logger.Info("Message already stored", zap.String("messageID", msg.ID))
			return nil
		}
		return fmt.Errorf("failed to save inbound message: %w", err)
	}
	persisted = true

	if msg.ID != "" {
		s.delivery.MarkRead(ctx, msg.ID)
	}

	history, err := s.loadHistory(ctx, user.ID, inbound.ID)
	if err != nil {
		return err
	}

	reply := s.completion.GenerateReply(ctx, body, history)

	if _, err := s.repo.Message().Append(ctx, user.ID, models.MessageRoleAssistant, reply, nil); err != nil {
		return fmt.Errorf("failed to save assistant message: %w", err)
	}

	result, err := s.delivery.SendText(ctx, user.PhoneNumber, reply)
	if err != nil {
		fields := []zap.Field{
			zap.Int64("userID", user.ID),
			zap.String("to", MaskPhone(user.PhoneNumber)),
			zap.Error(err),
		}
		var deliveryErr *DeliveryError
		if errors.As(err, &deliveryErr) {
			fields = append(fields, zap.Int("statusCode", deliveryErr.StatusCode))
		}
		s.logger.Error("Reply stored but not delivered", fields...)
		return nil
	}

	s.logger.Info("Reply delivered",
		zap.Int64("userID", user.ID),
		zap.String("messageID", result.MessageID))

	return nil
}

// ResolveUser finds or creates the user for phoneNumber and keeps the stored
// profile name in sync with a non-empty name from the webhook.
func (s *webhookService) ResolveUser(ctx context.Context, phoneNumber, name string) (*models.User, error) {
	user, err := s.repo.User().FindByPhone(ctx, phoneNumber)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if user == nil {
		var namePtr *string
		if name != "" {
			namePtr = &name
		}

		user, err = s.repo.User().Create(ctx, phoneNumber, namePtr)
		if err != nil {
			return nil, err
		}

		s.logger.Info("User resolved",
			zap.Int64("userID", user.ID),
			zap.String("phone", MaskPhone(phoneNumber)))
	}

	if name == "" || user.NameEquals(name) {
		return user, nil
	}

	return s.repo.User().UpdateName(ctx, user.ID, name)
}

// loadHistory returns up to maxHistory prior messages in chronological order,
// leaving out the inbound message that was just stored.
func (s *webhookService) loadHistory(ctx context.Context, userID, currentID int64) ([]models.ChatTurn, error) {
	messages, err := s.repo.Message().ListForUser(ctx, userID, s.maxHistory+1, repository.SortDesc)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation history: %w", err)
	}

	history := make([]models.ChatTurn, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].ID == currentID {
			continue
		}
		history = append(history, models.ChatTurn{
			Role:    messages[i].Role,
			Content: messages[i].Content,
		})
	}

	if len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}

	return history, nil
}

// claim returns whether the id was claimed in redis and whether it is a
// known duplicate. Redis errors fall through to the database guard.
func (s *webhookService) claim(ctx context.Context, externalID string) (claimed, duplicate bool) {
	if s.dedup == nil || externalID == "" {
		return false, false
	}

	ok, err := s.dedup.Claim(ctx, externalID)
	if err != nil {
		s.logger.Warn("Deduplication unavailable", zap.Error(err))
		return false, false
	}

	return ok, !ok
}

func (s *webhookService) release(externalID string) {
	if err := s.dedup.Release(context.Background(), externalID); err != nil {
		s.logger.Warn("Failed to release message claim",
			zap.String("messageID", externalID),
			zap.Error(err))
	}
}
