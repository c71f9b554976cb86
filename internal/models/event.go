package models

// Domain event types
const (
	EventAccountRegistered      = "account.registered"
	EventProfileUpdated         = "profile.updated"
	EventCollaborationRequested = "collaboration.requested"
)

// Event represents a domain event published to the message broker.
type Event struct {
	EventID   string            `json:"event_id"`       // EventID is a unique identifier for the event.
	Type      string            `json:"type"`           // Type is one of the Event* constants.
	AccountID string            `json:"account_id"`     // AccountID is the account that caused the event.
	Timestamp int64             `json:"timestamp"`      // Timestamp is the Unix time (in seconds) when the event occurred.
	Data      map[string]string `json:"data,omitempty"` // Data holds event specific attributes.
}
