// Package handler provides HTTP request handlers for the application.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/middleware"
	"github.com/popeskul/whatsapp-assistant/internal/service"
)

const (
	ErrorCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrorCodeUserNotFound       = "USER_NOT_FOUND"
	ErrorCodeEmptyMessage       = "EMPTY_MESSAGE"
	ErrorCodeInvalidRequest     = "INVALID_REQUEST"
)

const (
	errorMessageInvalidCredentials = "Incorrect username or password"
	errorMessageUserNotFound       = "User not found"
	errorMessageEmptyMessage       = "Message cannot be empty"
	errorMessageInvalidBody        = "Invalid request body"
	errorMessageFailedToLogin      = "Failed to issue access token"
	errorMessageFailedToListUsers  = "Failed to retrieve users"
	errorMessageFailedToGetHistory = "Failed to retrieve conversation"
	errorMessageFailedToGetStats   = "Failed to retrieve statistics"
	errorMessageFailedToGetChats   = "Failed to retrieve latest chats"
	errorMessageFailedToChat       = "Failed to get AI response"
)

const (
	serviceName    = "whatsapp-ai-backend"
	serviceVersion = "1.0.0"
	serviceStatus  = "running"
	docsPath       = "/api/openapi.yaml"
	frontendPath   = "/frontend/"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
func NewHandler(service *service.Service, logger *zap.Logger) api.ServerInterface {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// AdminLogin implements api.ServerInterface.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, ErrorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}

	token, err := h.service.Admin.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.sendError(w, r, http.StatusUnauthorized, ErrorCodeInvalidCredentials, errorMessageInvalidCredentials)
			return
		}

		h.internalError(w, r, "Failed to login", errorMessageFailedToLogin, err)
		return
	}

	render.JSON(w, r, token)
}

// ListUsers implements api.ServerInterface.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request, params api.ListUsersParams) {
	skip := 0
	limit := service.DefaultUsersLimit

	if params.Skip != nil && *params.Skip >= 0 {
		skip = *params.Skip
	}

	if params.Limit != nil && *params.Limit >= 1 {
		limit = *params.Limit
	}

	result, err := h.service.Admin.ListUsers(r.Context(), skip, limit)
	if err != nil {
		h.internalError(w, r, "Failed to list users", errorMessageFailedToListUsers, err)
		return
	}

	render.JSON(w, r, result)
}

// GetConversation implements api.ServerInterface.
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request, userId int64, params api.GetConversationParams) {
	limit := service.DefaultConversationLimit
	if params.Limit != nil && *params.Limit >= 1 {
		limit = *params.Limit
	}

	result, err := h.service.Admin.GetConversation(r.Context(), userId, limit)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			h.sendError(w, r, http.StatusNotFound, ErrorCodeUserNotFound, errorMessageUserNotFound)
			return
		}

		h.internalError(w, r, "Failed to get conversation", errorMessageFailedToGetHistory, err)
		return
	}

	render.JSON(w, r, result)
}

// GetStats implements api.ServerInterface.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Admin.GetStats(r.Context())
	if err != nil {
		h.internalError(w, r, "Failed to get stats", errorMessageFailedToGetStats, err)
		return
	}

	render.JSON(w, r, result)
}

// GetLatestChats implements api.ServerInterface.
func (h *Handler) GetLatestChats(w http.ResponseWriter, r *http.Request, params api.GetLatestChatsParams) {
	limit := service.DefaultLatestChatsLimit
	if params.Limit != nil && *params.Limit >= 1 {
		limit = *params.Limit
	}

	result, err := h.service.Admin.GetLatestChats(r.Context(), limit)
	if err != nil {
		h.internalError(w, r, "Failed to get latest chats", errorMessageFailedToGetChats, err)
		return
	}

	render.JSON(w, r, result)
}

// AdminAIChat implements api.ServerInterface.
func (h *Handler) AdminAIChat(w http.ResponseWriter, r *http.Request) {
	var req api.AIChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, ErrorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}

	result, err := h.service.Admin.ChatWithAI(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			h.sendError(w, r, http.StatusBadRequest, ErrorCodeEmptyMessage, errorMessageEmptyMessage)
			return
		}

		h.internalError(w, r, "Failed to chat with AI", errorMessageFailedToChat, err)
		return
	}

	render.JSON(w, r, result)
}

// GetAPIInfo implements api.ServerInterface.
func (h *Handler) GetAPIInfo(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, api.APIInfo{
		Service:  serviceName,
		Version:  serviceVersion,
		Status:   serviceStatus,
		Docs:     docsPath,
		Frontend: frontendPath,
	})
}

// HealthCheck implements api.ServerInterface.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	response := api.HealthResponse{
		Status:    health.Status,
		Timestamp: time.Now(),
	}

	if health.DatabaseStatus != "" {
		status := health.DatabaseStatus
		response.DatabaseStatus = &status
	}

	if health.RedisStatus != "" {
		status := health.RedisStatus
		response.RedisStatus = &status
	}

	if health.DeliveryCircuitBreakerStatus != "" {
		response.DeliveryCircuitBreakerStatus = &health.DeliveryCircuitBreakerStatus
	}

	if health.DeliveryCircuitBreakerState != "" {
		state := health.DeliveryCircuitBreakerState
		response.DeliveryCircuitBreakerState = &state
	}

	if health.CompletionCircuitBreakerState != "" {
		state := health.CompletionCircuitBreakerState
		response.CompletionCircuitBreakerState = &state
	}

	// Degraded still answers 200 so the load balancer keeps routing webhooks.
	if health.Status == api.Unhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, logMessage, message string, err error) {
	h.logger.Error(logMessage,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err))
	h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, message)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	middleware.WriteError(w, r, statusCode, errorCode, message)
}
