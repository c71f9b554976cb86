package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDB represents a profile row joined with the owning account's public fields
type ProfileDB struct {
	ProfileID      int64          `db:"profile_id"`
	UserID         uuid.UUID      `db:"user_id"`
	EducationLevel EducationLevel `db:"education_level"`
	Bio            string         `db:"bio"`
	Skills         string         `db:"skills"`    // Canonical token list
	Languages      string         `db:"languages"` // Canonical token list
	Passions       string         `db:"passions"`  // Canonical token list
	Projects       string         `db:"projects"`  // Canonical token list
	LinkedIn       string         `db:"linkedin"`
	GitHub         string         `db:"github"`
	YouTube        string         `db:"youtube"`
	Website        string         `db:"website"`
	IsValidated    bool           `db:"is_validated"`
	ValidatedBy    *uuid.UUID     `db:"validated_by"`
	ValidatedAt    *time.Time     `db:"validated_at"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`

	// Owning account, read-only
	Username         string    `db:"username"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	AccountCreatedAt time.Time `db:"account_created_at"`
}

// Profile is the profile representation returned by the workflows
type Profile struct {
	ProfileID      int64          `json:"profile_id"`
	AccountID      uuid.UUID      `json:"account_id"`
	Username       string         `json:"username"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	EducationLevel EducationLevel `json:"education_level"`
	Bio            string         `json:"bio"`
	Skills         []string       `json:"skills"`
	Languages      []string       `json:"languages"`
	Passions       []string       `json:"passions"`
	Projects       []string       `json:"projects"`
	LinkedIn       string         `json:"linkedin,omitempty"`
	GitHub         string         `json:"github,omitempty"`
	YouTube        string         `json:"youtube,omitempty"`
	Website        string         `json:"website,omitempty"`
	IsValidated    bool           `json:"is_validated"`
	ValidatedBy    *uuid.UUID     `json:"validated_by,omitempty"`
	ValidatedAt    *time.Time     `json:"validated_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ProfileFields are the owner-editable profile values supplied at registration
type ProfileFields struct {
	EducationLevel string
	Bio            string
	Skills         []string
	Languages      []string
	Passions       []string
	Projects       []string
	LinkedIn       string
	GitHub         string
	YouTube        string
	Website        string
}

// ProfileUpdate is a partial update of the owner-editable fields.
// A nil pointer or nil slice leaves the stored value untouched.
type ProfileUpdate struct {
	EducationLevel *string
	Bio            *string
	Skills         []string
	Languages      []string
	Passions       []string
	Projects       []string
	LinkedIn       *string
	GitHub         *string
	YouTube        *string
	Website        *string
}

// TalentMap is the flattened payload consumed by the talent map visualization
type TalentMap struct {
	Skills   []string `json:"skills"`
	Passions []string `json:"passions"`
}
