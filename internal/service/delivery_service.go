package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/config"
	"github.com/popeskul/whatsapp-assistant/internal/models"
)

const (
	defaultMarkReadTimeout = 10 * time.Second
	unknownMessageID       = "unknown"
	unknownProviderError   = "Unknown error"
	sentStatus             = "sent"
	maxErrorBodyBytes      = 64 << 10
)

// DeliveryError is returned when the Graph API answers with a non-200 status.
type DeliveryError struct {
	StatusCode      int
	ProviderMessage string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("WhatsApp API error %d: %s", e.StatusCode, e.ProviderMessage)
}

// IsClientError reports whether the Graph API rejected the request itself
// (bad recipient, malformed body) rather than failing to serve it.
func IsClientError(err error) bool {
	var deliveryErr *DeliveryError
	if !errors.As(err, &deliveryErr) {
		return false
	}
	code := deliveryErr.StatusCode
	return code >= 400 && code < 500 &&
		code != http.StatusRequestTimeout && code != http.StatusTooManyRequests
}

// NormalizePhoneNumber strips a "whatsapp:" prefix, a leading plus and surrounding spaces.
func NormalizePhoneNumber(to string) string {
	to = strings.TrimSpace(to)
	to = strings.TrimPrefix(to, "whatsapp:")
	to = strings.TrimSpace(to)
	return strings.TrimPrefix(to, "+")
}

type deliveryService struct {
	cfg             *config.WhatsAppConfig
	httpClient      *http.Client
	logger          *zap.Logger
	circuitBreaker  *CircuitBreaker
	markReadTimeout time.Duration
}

func NewDeliveryService(cfg *config.WhatsAppConfig, logger *zap.Logger) DeliveryService {
	markReadTimeout := defaultMarkReadTimeout
	if cfg.MarkReadTimeout > 0 {
		markReadTimeout = time.Duration(cfg.MarkReadTimeout) * time.Second
	}

	return &deliveryService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		logger:          logger,
		circuitBreaker:  NewCircuitBreaker("delivery", &cfg.CircuitBreaker, logger, WithNotUpstreamFault(IsClientError)),
		markReadTimeout: markReadTimeout,
	}
}

// SendText delivers a plain text message to a WhatsApp user.
func (s *deliveryService) SendText(ctx context.Context, to, body string) (*models.SendResult, error) {
	recipient := NormalizePhoneNumber(to)

	reqBody := models.SendMessageRequest{
		MessagingProduct: models.MessagingProductWhatsApp,
		RecipientType:    models.RecipientTypeIndividual,
		To:               recipient,
		Type:             models.MessageTypeText,
		Text: models.OutboundTextBody{
			PreviewURL: false,
			Body:       body,
		},
	}

	var result *models.SendResult
	err := s.circuitBreaker.Execute(ctx, func() error {
		resp, err := s.post(ctx, reqBody)
		if err != nil {
			return err
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				s.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		if resp.StatusCode != http.StatusOK {
			return s.deliveryError(resp)
		}

		var sendResp models.SendMessageResponse
		if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
			s.logger.Warn("Failed to decode send response", zap.Error(err))
		}

		messageID := unknownMessageID
		if len(sendResp.Messages) > 0 && sendResp.Messages[0].ID != "" {
			messageID = sendResp.Messages[0].ID
		}

		result = &models.SendResult{
			MessageID: messageID,
			Status:    sentStatus,
			To:        recipient,
		}
		return nil
	})
	if err != nil {
		requests, failures := s.circuitBreaker.GetCounts()
		s.logger.Error("Failed to send WhatsApp message",
			zap.String("to", MaskPhone(recipient)),
			zap.Error(err),
			zap.String("circuitBreakerState", string(s.circuitBreaker.GetState())),
			zap.Uint32("totalRequests", requests),
			zap.Uint32("totalFailures", failures))
		return nil, err
	}

	s.logger.Info("WhatsApp message sent",
		zap.String("to", MaskPhone(recipient)),
		zap.String("messageID", result.MessageID))

	return result, nil
}

// MarkRead marks an inbound message as read. Failures are logged and reported as false.
func (s *deliveryService) MarkRead(ctx context.Context, externalID string) bool {
	ctx, cancel := context.WithTimeout(ctx, s.markReadTimeout)
	defer cancel()

	reqBody := models.MarkReadRequest{
		MessagingProduct: models.MessagingProductWhatsApp,
		Status:           models.MessageStatusRead,
		MessageID:        externalID,
	}

	resp, err := s.post(ctx, reqBody)
	if err != nil {
		s.logger.Warn("Failed to mark message as read",
			zap.String("messageID", externalID),
			zap.Error(err))
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("Mark as read rejected",
			zap.String("messageID", externalID),
			zap.Error(s.deliveryError(resp)))
		return false
	}

	return true
}

func (s *deliveryService) GetCircuitBreakerStatus() (state api.CircuitBreakerState, requests uint32, failures uint32) {
	state = s.circuitBreaker.GetState()
	requests, failures = s.circuitBreaker.GetCounts()
	return
}

func (s *deliveryService) post(ctx context.Context, payload any) (*http.Response, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.MessagesURL(), bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.AccessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

func (s *deliveryService) deliveryError(resp *http.Response) *DeliveryError {
	providerMessage := unknownProviderError

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err == nil {
		var graphErr models.GraphErrorResponse
		if json.Unmarshal(data, &graphErr) == nil && graphErr.Error.Message != "" {
			providerMessage = graphErr.Error.Message
		}
	}

	return &DeliveryError{
		StatusCode:      resp.StatusCode,
		ProviderMessage: providerMessage,
	}
}
