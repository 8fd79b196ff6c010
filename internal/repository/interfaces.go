package repository

import (
	"context"
	"errors"
	"time"

	"github.com/popeskul/whatsapp-assistant/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateMessage is returned when an inbound WhatsApp message id is already stored.
	ErrDuplicateMessage = errors.New("duplicate message")
)

type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping(ctx context.Context) error

	// User returns user repository
	User() UserRepository

	// Message returns message repository
	Message() MessageRepository
}

// UserRepository interface defines user operations.
type UserRepository interface {
	FindByPhone(ctx context.Context, phoneNumber string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// Create inserts a user. When the phone number is already stored it
	// returns the existing row instead.
	Create(ctx context.Context, phoneNumber string, name *string) (*models.User, error)
	UpdateName(ctx context.Context, id int64, name string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, error)
}

// MessageRepository interface defines message operations.
type MessageRepository interface {
	Append(ctx context.Context, userID int64, role models.MessageRole, content string, externalID *string) (*models.Message, error)
	Count(ctx context.Context) (int64, error)
	CountForUser(ctx context.Context, userID int64) (int64, error)
	ListForUser(ctx context.Context, userID int64, limit int, order SortOrder) ([]*models.Message, error)
	CountDistinctActiveUsersSince(ctx context.Context, since time.Time) (int64, error)
	ListLatestWithUser(ctx context.Context, limit int) ([]*models.MessageWithUser, error)
}
