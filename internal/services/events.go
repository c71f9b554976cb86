package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-talent-map/internal/logger"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// newEvent stamps a domain event for the account
func newEvent(eventType string, accountID uuid.UUID, data map[string]string) models.Event {
	return models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		AccountID: accountID.String(),
		Timestamp: time.Now().Unix(),
		Data:      data,
	}
}

// publishEvent publishes a domain event to Kafka keyed by account.
// Failures are logged; the workflow that produced the event has already committed.
func publishEvent(ctx context.Context, writer KafkaWriter, evt models.Event) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.AccountID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(evt.Type)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", evt.EventID, "type", evt.Type)
	}
}
