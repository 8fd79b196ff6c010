package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/middleware"
	"github.com/popeskul/whatsapp-assistant/internal/models"
	"github.com/popeskul/whatsapp-assistant/internal/service"
)

const (
	webhookInvalidToken    = "Invalid token"
	webhookInvalidPayload  = "Invalid payload"
	webhookProcessingError = "Failed to process one or more messages"
)

// VerifyWebhook implements api.ServerInterface.
func (h *Handler) VerifyWebhook(w http.ResponseWriter, r *http.Request, params api.VerifyWebhookParams) {
	challenge, err := h.service.Webhook.VerifySubscription(
		deref(params.HubMode),
		deref(params.HubVerifyToken),
		deref(params.HubChallenge),
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err != nil {
		if !errors.Is(err, service.ErrInvalidVerifyToken) {
			h.logger.Error("Webhook verification error", zap.Error(err))
		}
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(webhookInvalidToken))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(challenge))
}

// ReceiveWebhook implements api.ServerInterface.
// Meta retries anything that is not a 200, so every outcome is acknowledged
// with 200 and the status field carries the result.
func (h *Handler) ReceiveWebhook(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	// Lift the server write timeout: a multi-message payload can outlast it.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.logger.Warn("Failed to clear write deadline",
			zap.String("request_id", requestID),
			zap.Error(err))
	}

	var payload models.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Warn("Failed to decode webhook payload",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendAck(w, r, api.WebhookAckStatusError, webhookInvalidPayload)
		return
	}

	// The provider may drop the connection early; the pipeline still has to finish.
	status, err := h.processPayload(context.WithoutCancel(r.Context()), &payload)
	if err != nil {
		h.logger.Error("Webhook processing failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		h.sendAck(w, r, status, webhookProcessingError)
		return
	}

	h.sendAck(w, r, status, "")
}

func (h *Handler) processPayload(ctx context.Context, payload *models.WebhookPayload) (status api.WebhookAckStatus, err error) {
	defer func() {
		if p := recover(); p != nil {
			status = api.WebhookAckStatusError
			err = fmt.Errorf("panic while processing webhook: %v", p)
		}
	}()

	return h.service.Webhook.ProcessPayload(ctx, payload)
}

func (h *Handler) sendAck(w http.ResponseWriter, r *http.Request, status api.WebhookAckStatus, message string) {
	ack := api.WebhookAck{Status: status}
	if message != "" {
		ack.Message = &message
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, ack)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
