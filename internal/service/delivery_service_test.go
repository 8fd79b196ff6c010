package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/config"
	"github.com/popeskul/whatsapp-assistant/internal/models"
	"github.com/popeskul/whatsapp-assistant/internal/service"
)

func newTestWhatsAppConfig(baseURL string) *config.WhatsAppConfig {
	return &config.WhatsAppConfig{
		BaseURL:         baseURL,
		APIVersion:      "v24.0",
		PhoneNumberID:   "123456",
		AccessToken:     "test-token",
		VerifyToken:     "verify-me",
		Timeout:         5,
		MarkReadTimeout: 1,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      3,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.6,
			ConsecutiveFails: 100,
		},
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "15551234567", expected: "15551234567"},
		{input: "+15551234567", expected: "15551234567"},
		{input: "whatsapp:+15551234567", expected: "15551234567"},
		{input: "  +15551234567 ", expected: "15551234567"},
		{input: "whatsapp: +15551234567", expected: "15551234567"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.NormalizePhoneNumber(tt.input))
		})
	}
}

func TestDeliveryService_SendText_Success(t *testing.T) {
	var captured models.SendMessageRequest
	var authHeader, path string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		authHeader = r.Header.Get("Authorization")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"messaging_product":"whatsapp","contacts":[{"input":"15551234567","wa_id":"15551234567"}],"messages":[{"id":"wamid.OUT1"}]}`)
	}))
	defer server.Close()

	svc := service.NewDeliveryService(newTestWhatsAppConfig(server.URL), zap.NewNop())

	result, err := svc.SendText(context.Background(), "whatsapp:+15551234567", "Hi there")
	require.NoError(t, err)

	assert.Equal(t, "/v24.0/123456/messages", path)
	assert.Equal(t, "Bearer test-token", authHeader)
	assert.Equal(t, "whatsapp", captured.MessagingProduct)
	assert.Equal(t, "individual", captured.RecipientType)
	assert.Equal(t, "15551234567", captured.To)
	assert.Equal(t, "text", captured.Type)
	assert.False(t, captured.Text.PreviewURL)
	assert.Equal(t, "Hi there", captured.Text.Body)

	assert.Equal(t, &models.SendResult{MessageID: "wamid.OUT1", Status: "sent", To: "15551234567"}, result)
}

func TestDeliveryService_SendText_MissingMessageID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"messaging_product":"whatsapp","messages":[]}`)
	}))
	defer server.Close()

	svc := service.NewDeliveryService(newTestWhatsAppConfig(server.URL), zap.NewNop())

	result, err := svc.SendText(context.Background(), "15551234567", "Hi")
	require.NoError(t, err)
	assert.Equal(t, "unknown", result.MessageID)
}

func TestDeliveryService_SendText_Failure(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedMessage string
	}{
		{
			name:            "graph error message",
			status:          http.StatusBadRequest,
			body:            `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100,"fbtrace_id":"abc"}}`,
			expectedMessage: "Invalid parameter",
		},
		{
			name:            "unparseable error body",
			status:          http.StatusInternalServerError,
			body:            `<html>oops</html>`,
			expectedMessage: "Unknown error",
		},
		{
			name:            "error without message",
			status:          http.StatusUnauthorized,
			body:            `{"error":{"code":190}}`,
			expectedMessage: "Unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			svc := service.NewDeliveryService(newTestWhatsAppConfig(server.URL), zap.NewNop())

			result, err := svc.SendText(context.Background(), "15551234567", "Hi")
			require.Error(t, err)
			assert.Nil(t, result)

			var deliveryErr *service.DeliveryError
			require.True(t, errors.As(err, &deliveryErr))
			assert.Equal(t, tt.status, deliveryErr.StatusCode)
			assert.Equal(t, tt.expectedMessage, deliveryErr.ProviderMessage)
		})
	}
}

func TestDeliveryService_SendText_OpenCircuit(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := newTestWhatsAppConfig(server.URL)
	cfg.CircuitBreaker.ConsecutiveFails = 2
	cfg.CircuitBreaker.FailureRatio = 0.5

	svc := service.NewDeliveryService(cfg, zap.NewNop())

	for i := 0; i < 2; i++ {
		_, err := svc.SendText(context.Background(), "15551234567", "Hi")
		require.Error(t, err)
	}

	_, err := svc.SendText(context.Background(), "15551234567", "Hi")
	assert.ErrorIs(t, err, service.ErrCircuitOpen)
	assert.Equal(t, 2, calls)

	state, requests, failures := svc.GetCircuitBreakerStatus()
	assert.Equal(t, "open", string(state))
	assert.Equal(t, uint32(0), requests)
	assert.Equal(t, uint32(0), failures)
}

func TestDeliveryService_SendText_RecipientErrorsKeepCircuitClosed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprint(w, `{"error":{"message":"Recipient phone number not in allowed list","code":131030}}`)
	}))
	defer server.Close()

	cfg := newTestWhatsAppConfig(server.URL)
	cfg.CircuitBreaker.ConsecutiveFails = 2
	cfg.CircuitBreaker.FailureRatio = 0.5

	svc := service.NewDeliveryService(cfg, zap.NewNop())

	for i := 0; i < 4; i++ {
		_, err := svc.SendText(context.Background(), "15551234567", "Hi")
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrCircuitOpen)
	}

	state, _, failures := svc.GetCircuitBreakerStatus()
	assert.Equal(t, "closed", string(state))
	assert.Equal(t, uint32(0), failures)
}

func TestIsClientError(t *testing.T) {
	assert.True(t, service.IsClientError(&service.DeliveryError{StatusCode: http.StatusBadRequest}))
	assert.True(t, service.IsClientError(fmt.Errorf("send: %w", &service.DeliveryError{StatusCode: http.StatusNotFound})))
	assert.False(t, service.IsClientError(&service.DeliveryError{StatusCode: http.StatusTooManyRequests}))
	assert.False(t, service.IsClientError(&service.DeliveryError{StatusCode: http.StatusBadGateway}))
	assert.False(t, service.IsClientError(errors.New("dial tcp: connection refused")))
}

func TestDeliveryService_MarkRead(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		expected bool
	}{
		{
			name: "accepted",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var body models.MarkReadRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "whatsapp", body.MessagingProduct)
				assert.Equal(t, "read", body.Status)
				assert.Equal(t, "wamid.IN1", body.MessageID)
				_, _ = fmt.Fprint(w, `{"success":true}`)
			},
			expected: true,
		},
		{
			name: "rejected",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = fmt.Fprint(w, `{"error":{"message":"Invalid message id"}}`)
			},
			expected: false,
		},
		{
			name: "too slow",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(3 * time.Second):
				}
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			svc := service.NewDeliveryService(newTestWhatsAppConfig(server.URL), zap.NewNop())

			assert.Equal(t, tt.expected, svc.MarkRead(context.Background(), "wamid.IN1"))
		})
	}
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "*******4567", service.MaskPhone("15551234567"))
	assert.Equal(t, "****", service.MaskPhone("1234"))
	assert.Equal(t, "", service.MaskPhone(""))
}
