package repository_test

import (
	"database/sql"
	"fmt"
	"time"
)

func insertTestUser(db *sql.DB, phoneNumber string, name *string, createdAt time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO users (phone_number, name, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id
	`

	err := db.QueryRow(query, phoneNumber, name, createdAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test user: %w", err)
	}

	return id, nil
}

func insertTestMessage(db *sql.DB, userID int64, role, content string, createdAt time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO messages (user_id, role, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := db.QueryRow(query, userID, role, content, createdAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert test message: %w", err)
	}

	return id, nil
}

// insertConversation stores count alternating user/assistant messages, one
// minute apart, starting at base.
func insertConversation(db *sql.DB, userID int64, count int, base time.Time) error {
	for i := 0; i < count; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		content := fmt.Sprintf("message %d", i)
		if _, err := insertTestMessage(db, userID, role, content, base.Add(time.Duration(i)*time.Minute)); err != nil {
			return fmt.Errorf("failed to insert message %d: %w", i, err)
		}
	}
	return nil
}

func ptr(s string) *string {
	return &s
}
