package entity

import (
	"time"

	"github.com/google/uuid"
)

// SystemLog is an audit row written by the domain-event consumer.
type SystemLog struct {
	Id        uuid.UUID
	EventType string
	Payload   string
	CreatedAt time.Time
}
