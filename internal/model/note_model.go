package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title            string     `gorm:"type:varchar(100);not null"`
	Text             string     `gorm:"type:text"`
	CategoryId       *uuid.UUID `gorm:"type:uuid;index"`
	OwnerId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	LikeCount        int        `gorm:"default:0"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
	ModifiedUsername string     `gorm:"type:varchar(25)"`
}

func (Note) TableName() string {
	return "notes"
}

type NoteLike struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_likes_note_user"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_likes_note_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (NoteLike) TableName() string {
	return "note_likes"
}
