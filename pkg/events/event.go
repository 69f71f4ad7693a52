package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "TODO_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the concrete event used across the codebase.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewRecordEvent builds a mutation event for a single record. The payload
// carries just enough for a client to decide whether to re-fetch.
func NewRecordEvent(eventType, userID, recordID string) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"event_type": eventType,
			"user_id":    userID,
			"record_id":  recordID,
		},
		OccurredAt: time.Now(),
	}
}

// NewSyncCompletedEvent marks a finished full sync pass for a user.
func NewSyncCompletedEvent(eventType, userID string, watermark int64) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"event_type": eventType,
			"user_id":    userID,
			"watermark":  watermark,
		},
		OccurredAt: time.Now(),
	}
}
