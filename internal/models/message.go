package models

import (
	"database/sql"
	"time"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Message represents a stored conversation message.
type Message struct {
	ID            int64          `db:"id" json:"id"`
	UserID        int64          `db:"user_id" json:"user_id"`
	Role          MessageRole    `db:"role" json:"role"`
	Content       string         `db:"content" json:"content"`
	MetaMessageID sql.NullString `db:"meta_message_id" json:"meta_message_id,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// MessageWithUser joins a message with the user who owns the conversation.
type MessageWithUser struct {
	Message Message `db:"message"`
	User    User    `db:"user"`
}

// ChatTurn is one entry of the context window sent to the completion endpoint.
type ChatTurn struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// SendResult describes an accepted outbound WhatsApp message.
type SendResult struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
	To        string `json:"to"`
}
