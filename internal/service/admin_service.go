package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/auth"
	"github.com/popeskul/whatsapp-assistant/internal/config"
	"github.com/popeskul/whatsapp-assistant/internal/repository"
)

const (
	DefaultUsersLimit        = 50
	MaxUsersLimit            = 100
	DefaultConversationLimit = 100
	DefaultLatestChatsLimit  = 20

	activeUsersWindow = 24 * time.Hour
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyMessage       = errors.New("message cannot be empty")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type adminService struct {
	cfg        *config.AdminConfig
	tokens     *auth.TokenManager
	repo       repository.Repository
	completion CompletionService
	logger     *zap.Logger
	now        func() time.Time
}

func NewAdminService(
	cfg *config.AdminConfig,
	tokens *auth.TokenManager,
	repo repository.Repository,
	completion CompletionService,
	logger *zap.Logger,
) AdminService {
	return &adminService{
		cfg:        cfg,
		tokens:     tokens,
		repo:       repo,
		completion: completion,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *adminService) Login(ctx context.Context, username, password string) (*api.TokenResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	passOK := auth.CheckPassword(s.cfg.Password, password)
	if !userOK || !passOK {
		s.logger.Warn("Admin login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	expiresIn := int(s.tokens.TTL().Seconds())
	s.logger.Info("Admin logged in", zap.String("username", username))

	return &api.TokenResponse{
		AccessToken: token,
		TokenType:   auth.TokenTypeBearer,
		ExpiresIn:   &expiresIn,
	}, nil
}

// ListUsers returns a page of users, newest first, each with its message count.
func (s *adminService) ListUsers(ctx context.Context, skip, limit int) (*api.UserListResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultUsersLimit
	}
	if limit > MaxUsersLimit {
		limit = MaxUsersLimit
	}

	users, err := s.repo.User().List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	total, err := s.repo.User().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	resp := &api.UserListResponse{
		Users: make([]api.User, 0, len(users)),
		Total: total,
	}
	for _, user := range users {
		chats, err := s.repo.Message().CountForUser(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count messages for user %d: %w", user.ID, err)
		}
		resp.Users = append(resp.Users, toAPIUser(user, chats))
	}

	return resp, nil
}

// GetConversation returns the latest limit messages of a user, oldest first.
func (s *adminService) GetConversation(ctx context.Context, userID int64, limit int) (*api.ConversationResponse, error) {
	if limit <= 0 {
		limit = DefaultConversationLimit
	}

	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	messages, err := s.repo.Message().ListForUser(ctx, userID, limit, repository.SortDesc)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	chats, err := s.repo.Message().CountForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	resp := &api.ConversationResponse{
		User:          toAPIUser(user, chats),
		Messages:      make([]api.Message, 0, len(messages)),
		TotalMessages: len(messages),
	}
	for i := len(messages) - 1; i >= 0; i-- {
		resp.Messages = append(resp.Messages, toAPIMessage(messages[i]))
	}

	return resp, nil
}

func (s *adminService) GetStats(ctx context.Context) (*api.StatsResponse, error) {
	now := s.now()

	totalUsers, err := s.repo.User().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalMessages, err := s.repo.Message().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	active, err := s.repo.Message().CountDistinctActiveUsersSince(ctx, now.Add(-activeUsersWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	return &api.StatsResponse{
		TotalUsers:     totalUsers,
		TotalMessages:  totalMessages,
		ActiveUsers24h: active,
		Timestamp:      now.UTC(),
	}, nil
}

func (s *adminService) GetLatestChats(ctx context.Context, limit int) ([]api.LatestChat, error) {
	if limit <= 0 {
		limit = DefaultLatestChatsLimit
	}

	rows, err := s.repo.Message().ListLatestWithUser(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest chats: %w", err)
	}

	chats := make([]api.LatestChat, 0, len(rows))
	for _, row := range rows {
		chats = append(chats, api.LatestChat{
			UserName:    row.User.DisplayName(),
			PhoneNumber: row.User.PhoneNumber,
			Role:        api.MessageRole(row.Message.Role),
			Message:     row.Message.Content,
			Timestamp:   row.Message.CreatedAt.Format(time.RFC3339),
		})
	}

	return chats, nil
}

// ChatWithAI sends a single message to the completion endpoint without history.
func (s *adminService) ChatWithAI(ctx context.Context, message string) (*api.AIChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	reply := s.completion.GenerateReply(ctx, message, nil)

	return &api.AIChatResponse{
		Status:   api.AIChatResponseStatusSuccess,
		Message:  message,
		Response: reply,
	}, nil
}
