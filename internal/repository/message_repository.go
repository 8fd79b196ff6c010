package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/popeskul/whatsapp-assistant/internal/models"
)

const (
	messageColumns = `id, user_id, role, content, meta_message_id, created_at`

	uniqueViolationCode = "23505"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Append stores a message. externalID is the WhatsApp message id of an
// inbound message; storing the same id twice yields ErrDuplicateMessage.
func (r *messageRepository) Append(ctx context.Context, userID int64, role models.MessageRole, content string, externalID *string) (*models.Message, error) {
	query := `
		INSERT INTO messages (user_id, role, content, meta_message_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + messageColumns

	var metaID sql.NullString
	if externalID != nil && *externalID != "" {
		metaID = sql.NullString{String: *externalID, Valid: true}
	}

	var message models.Message
	if err := r.db.GetContext(ctx, &message, query, userID, role, content, metaID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrDuplicateMessage
		}
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	return &message, nil
}

func (r *messageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM messages`); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return count, nil
}

func (r *messageRepository) CountForUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM messages WHERE user_id = $1`, userID); err != nil {
		return 0, fmt.Errorf("failed to count user messages: %w", err)
	}

	return count, nil
}

// ListForUser returns up to limit messages of a user ordered by creation time.
// Ties on created_at are broken by id so the order matches insertion order.
func (r *messageRepository) ListForUser(ctx context.Context, userID int64, limit int, order SortOrder) ([]*models.Message, error) {
	if order != SortAsc {
		order = SortDesc
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at %s, id %s
		LIMIT $2`, messageColumns, order, order)

	messages := make([]*models.Message, 0)
	if err := r.db.SelectContext(ctx, &messages, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list user messages: %w", err)
	}

	return messages, nil
}

// CountDistinctActiveUsersSince counts users with at least one message created at or after since.
func (r *messageRepository) CountDistinctActiveUsersSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(DISTINCT user_id) FROM messages WHERE created_at >= $1`

	if err := r.db.GetContext(ctx, &count, query, since); err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}

	return count, nil
}

// ListLatestWithUser returns the newest messages across all users joined with their owner.
func (r *messageRepository) ListLatestWithUser(ctx context.Context, limit int) ([]*models.MessageWithUser, error) {
	query := `
		SELECT
			m.id AS "message.id",
			m.user_id AS "message.user_id",
			m.role AS "message.role",
			m.content AS "message.content",
			m.meta_message_id AS "message.meta_message_id",
			m.created_at AS "message.created_at",
			u.id AS "user.id",
			u.phone_number AS "user.phone_number",
			u.name AS "user.name",
			u.is_active AS "user.is_active",
			u.created_at AS "user.created_at",
			u.updated_at AS "user.updated_at"
		FROM messages m
		JOIN users u ON u.id = m.user_id
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $1`

	rows := make([]*models.MessageWithUser, 0)
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list latest messages: %w", err)
	}

	return rows, nil
}
