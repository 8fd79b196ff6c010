package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/config"
	"github.com/popeskul/whatsapp-assistant/internal/models"
)

const (
	DefaultCompletionTimeout = 30 * time.Second
	DefaultMaxHistory        = 10

	completionTemperature = 0.7
	completionMaxTokens   = 500
)

// Reply texts returned to the user instead of an error.
const (
	FallbackAuthFailed   = "Sorry, AI service authentication failed. Please contact support."
	FallbackRateLimited  = "Sorry, too many requests. Please try again in a moment."
	FallbackTimeout      = "Sorry, my response took too long. Please try again."
	FallbackUnavailable  = "Sorry, I'm having trouble connecting. Please try again later."
	FallbackGenericError = "Sorry, I encountered an error. Please try again later."
)

var errEmptyCompletion = errors.New("completion returned no content")

// chatCompleter is the subset of the SDK used here.
type chatCompleter interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

type CompletionOption func(*completionService)

// WithCompletionTimeout overrides the per-call budget.
func WithCompletionTimeout(timeout time.Duration) CompletionOption {
	return func(s *completionService) {
		s.timeout = timeout
	}
}

func WithMaxHistory(n int) CompletionOption {
	return func(s *completionService) {
		if n > 0 {
			s.maxHistory = n
		}
	}
}

type completionService struct {
	completions    chatCompleter
	model          string
	systemPrompt   string
	maxHistory     int
	timeout        time.Duration
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker
}

func NewCompletionService(cfg *config.AIConfig, logger *zap.Logger, opts ...CompletionOption) CompletionService {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	)

	s := &completionService{
		completions:    &client.Chat.Completions,
		model:          cfg.Model,
		systemPrompt:   cfg.SystemPrompt,
		maxHistory:     DefaultMaxHistory,
		timeout:        DefaultCompletionTimeout,
		logger:         logger,
		circuitBreaker: NewCircuitBreaker("completion", &cfg.CircuitBreaker, logger),
	}
	if cfg.MaxHistory > 0 {
		s.maxHistory = cfg.MaxHistory
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GenerateReply never fails: errors are logged and mapped to a fallback sentence.
func (s *completionService) GenerateReply(ctx context.Context, message string, history []models.ChatTurn) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(s.model),
		Messages:    s.buildMessages(message, history),
		Temperature: openai.Float(completionTemperature),
		MaxTokens:   openai.Int(completionMaxTokens),
	}

	var reply string
	err := s.circuitBreaker.Execute(ctx, func() error {
		resp, err := s.completions.New(ctx, params)
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return errEmptyCompletion
		}
		reply = strings.TrimSpace(resp.Choices[0].Message.Content)
		if reply == "" {
			return errEmptyCompletion
		}
		return nil
	})
	if err != nil {
		fallback := s.fallbackFor(ctx, err)
		s.logger.Error("Completion request failed",
			zap.Error(err),
			zap.String("model", s.model),
			zap.String("circuitBreakerState", string(s.circuitBreaker.GetState())))
		return fallback
	}

	s.logger.Debug("Completion received",
		zap.Int("historyLength", len(history)),
		zap.Int("replyLength", len(reply)))

	return reply
}

func (s *completionService) GetCircuitBreakerState() api.CircuitBreakerState {
	return s.circuitBreaker.GetState()
}

// buildMessages lays out system prompt, the most recent history and the new message.
func (s *completionService) buildMessages(message string, history []models.ChatTurn) []openai.ChatCompletionMessageParamUnion {
	if len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(s.systemPrompt))
	for _, turn := range history {
		switch turn.Role {
		case models.MessageRoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openai.UserMessage(turn.Content))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	return messages
}

func (s *completionService) fallbackFor(ctx context.Context, err error) string {
	var apiErr *openai.Error
	switch {
	case errors.As(err, &apiErr):
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			return FallbackAuthFailed
		case http.StatusTooManyRequests:
			return FallbackRateLimited
		default:
			return FallbackUnavailable
		}
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return FallbackTimeout
	case errors.Is(err, ErrCircuitOpen):
		return FallbackUnavailable
	default:
		return FallbackGenericError
	}
}
