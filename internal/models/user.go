package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents an account record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique (case-insensitive) username
	Email        string    `json:"email" db:"email"`           // Unique (case-insensitive) email
	FirstName    string    `json:"first_name" db:"first_name"` // Optional first name
	LastName     string    `json:"last_name" db:"last_name"`   // Optional last name
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
