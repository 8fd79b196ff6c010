package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/whatsapp-assistant/internal/models"
)

const userColumns = `id, phone_number, name, is_active, created_at, updated_at`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByPhone returns the user owning phoneNumber or ErrNotFound.
func (r *userRepository) FindByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone_number = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, phoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by phone: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Create inserts a user row. Two webhooks for a new number can race here; the
// no-op update on conflict makes RETURNING yield the row that won.
func (r *userRepository) Create(ctx context.Context, phoneNumber string, name *string) (*models.User, error) {
	query := `
		INSERT INTO users (phone_number, name, is_active, created_at, updated_at)
		VALUES ($1, $2, TRUE, NOW(), NOW())
		ON CONFLICT (phone_number) DO UPDATE SET phone_number = EXCLUDED.phone_number
		RETURNING ` + userColumns

	var nullName sql.NullString
	if name != nil && *name != "" {
		nullName = sql.NullString{String: *name, Valid: true}
	}

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, phoneNumber, nullName); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) UpdateName(ctx context.Context, id int64, name string) (*models.User, error) {
	query := `
		UPDATE users
		SET name = $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user name: %w", err)
	}

	return &user, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

// List returns users newest first.
func (r *userRepository) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	users := make([]*models.User, 0)
	if err := r.db.SelectContext(ctx, &users, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
