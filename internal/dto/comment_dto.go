package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	NoteId uuid.UUID
	Text   string `json:"text" validate:"required,max=1000"`
}

type CommentResponse struct {
	Id        uuid.UUID `json:"id"`
	NoteId    uuid.UUID `json:"note_id"`
	OwnerId   uuid.UUID `json:"owner_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
