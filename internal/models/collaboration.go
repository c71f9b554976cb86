package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CollaborationStatus is the lifecycle state of a collaboration request.
type CollaborationStatus string

// Supported collaboration statuses
const (
	CollaborationPending  CollaborationStatus = "pending"
	CollaborationAccepted CollaborationStatus = "accepted"
	CollaborationRejected CollaborationStatus = "rejected"
)

// ErrUnknownCollaborationStatus is returned by ParseCollaborationStatus for values outside the enum.
var ErrUnknownCollaborationStatus = errors.New("unknown collaboration status")

// ParseCollaborationStatus matches s case-insensitively against the enum.
func ParseCollaborationStatus(s string) (CollaborationStatus, error) {
	switch CollaborationStatus(strings.ToLower(strings.TrimSpace(s))) {
	case CollaborationPending:
		return CollaborationPending, nil
	case CollaborationAccepted:
		return CollaborationAccepted, nil
	case CollaborationRejected:
		return CollaborationRejected, nil
	default:
		return "", ErrUnknownCollaborationStatus
	}
}

// CollaborationDB represents a collaboration row in the database
type CollaborationDB struct {
	CollaborationID int64               `json:"id" db:"collaboration_id"`
	RequesterID     uuid.UUID           `json:"requester_id" db:"requester_id"`
	ReceiverID      uuid.UUID           `json:"receiver_id" db:"receiver_id"`
	Title           string              `json:"title" db:"title"`
	Description     string              `json:"description" db:"description"`
	RequiredSkills  string              `json:"-" db:"required_skills"` // Canonical token list
	Status          CollaborationStatus `json:"status" db:"status"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" db:"updated_at"`
}

// CollaborationRequest carries the requester-supplied fields of a new collaboration
type CollaborationRequest struct {
	ReceiverID     uuid.UUID
	Title          string
	Description    string
	RequiredSkills []string
}

// Collaboration is the collaboration representation returned by the workflows
type Collaboration struct {
	CollaborationID int64               `json:"id"`
	RequesterID     uuid.UUID           `json:"requester_id"`
	ReceiverID      uuid.UUID           `json:"receiver_id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	RequiredSkills  []string            `json:"required_skills"`
	Status          CollaborationStatus `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// CollaborationDirection selects sent or received requests of an account.
type CollaborationDirection string

// Supported listing directions
const (
	DirectionSent     CollaborationDirection = "sent"
	DirectionReceived CollaborationDirection = "received"
)
