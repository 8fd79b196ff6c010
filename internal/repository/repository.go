package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

const pingTimeout = 2 * time.Second

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db      *sqlx.DB
	user    UserRepository
	message MessageRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:      db,
		user:    NewUserRepository(db),
		message: NewMessageRepository(db),
	}
}

// User returns the user repository.
func (r *repositoryImpl) User() UserRepository {
	return r.user
}

// Message returns the message repository.
func (r *repositoryImpl) Message() MessageRepository {
	return r.message
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return r.db.PingContext(ctx)
}
