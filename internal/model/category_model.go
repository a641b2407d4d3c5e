package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title            string    `gorm:"type:varchar(50);not null"`
	Description      string    `gorm:"type:varchar(200)"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
	ModifiedUsername string    `gorm:"type:varchar(25)"`
}

func (Category) TableName() string {
	return "categories"
}
