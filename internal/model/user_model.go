package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username             string    `gorm:"type:varchar(25);uniqueIndex;not null"`
	Email                string    `gorm:"type:varchar(70);uniqueIndex;not null"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	Name                 string    `gorm:"type:varchar(35)"`
	Surname              string    `gorm:"type:varchar(35)"`
	ProfileImageFilename string    `gorm:"type:varchar(50)"`
	IsActive             bool      `gorm:"default:false"`
	IsAdmin              bool      `gorm:"default:false"`
	ActivationGuid       uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
	ModifiedUsername     string    `gorm:"type:varchar(25)"`
}

func (User) TableName() string {
	return "users"
}

type UserRefreshToken struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:text;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"default:false"`
	IpAddress string    `gorm:"type:varchar(45)"`
	UserAgent string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (UserRefreshToken) TableName() string {
	return "user_refresh_tokens"
}
