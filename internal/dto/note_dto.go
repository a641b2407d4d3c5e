package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title      string     `json:"title" validate:"required,max=100"`
	Text       string     `json:"text"`
	CategoryId *uuid.UUID `json:"category_id"`
}

type UpdateNoteRequest struct {
	Id         uuid.UUID
	Title      string     `json:"title" validate:"required,max=100"`
	Text       string     `json:"text"`
	CategoryId *uuid.UUID `json:"category_id"`
}

type NoteResponse struct {
	Id         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Text       string     `json:"text"`
	CategoryId *uuid.UUID `json:"category_id,omitempty"`
	OwnerId    uuid.UUID  `json:"owner_id"`
	LikeCount  int        `json:"like_count"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type NoteListItem struct {
	Id         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Text       string     `json:"text"`
	CategoryId *uuid.UUID `json:"category_id,omitempty"`
	OwnerId    uuid.UUID  `json:"owner_id"`
	LikeCount  int        `json:"like_count"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type LikeResponse struct {
	NoteId    uuid.UUID `json:"note_id"`
	Liked     bool      `json:"liked"`
	LikeCount int       `json:"like_count"`
}
