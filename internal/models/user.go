// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"
)

// User is a WhatsApp end user identified by phone number.
type User struct {
	ID          int64          `db:"id" json:"id"`
	PhoneNumber string         `db:"phone_number" json:"phone_number"`
	Name        sql.NullString `db:"name" json:"name,omitempty"`
	IsActive    bool           `db:"is_active" json:"is_active"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// DisplayName returns the profile name, or the phone number when no name is known.
func (u *User) DisplayName() string {
	if u.Name.Valid && u.Name.String != "" {
		return u.Name.String
	}
	return u.PhoneNumber
}

// NameEquals reports whether the stored name equals name.
func (u *User) NameEquals(name string) bool {
	return u.Name.Valid && u.Name.String == name
}
