package models

import "github.com/google/uuid"

// Registration carries the raw account and profile fields of a sign-up
type Registration struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Password        string
	PasswordConfirm *string // Checked only when supplied
	Profile         ProfileFields
}

// RegistrationResult identifies the rows created by a sign-up and the session token of the new account
type RegistrationResult struct {
	AccountID uuid.UUID `json:"account_id"`
	ProfileID int64     `json:"profile_id"`
	Token     string    `json:"token"`
}
