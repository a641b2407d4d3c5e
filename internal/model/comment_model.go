package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId           uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerId          uuid.UUID `gorm:"type:uuid;not null;index"`
	Text             string    `gorm:"type:text;not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
	ModifiedUsername string    `gorm:"type:varchar(25)"`
}

func (Comment) TableName() string {
	return "comments"
}
