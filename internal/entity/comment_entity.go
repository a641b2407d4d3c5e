package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is created by any authenticated user and never updated afterwards.
type Comment struct {
	Id               uuid.UUID
	NoteId           uuid.UUID
	OwnerId          uuid.UUID
	Text             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ModifiedUsername string
}
