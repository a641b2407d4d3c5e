package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id    uuid.UUID
	Title string
	Text  string
	// CategoryId is nil for uncategorized notes: a note belongs to at most
	// one category at a time.
	CategoryId       *uuid.UUID
	OwnerId          uuid.UUID
	LikeCount        int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ModifiedUsername string
}

// NoteLike records one user's like on one note. The (NoteId, UserId) pair
// is unique; Note.LikeCount is the denormalized count maintained in the
// same transaction as the row.
type NoteLike struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time
}
