package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                   uuid.UUID
	Username             string
	Email                string
	PasswordHash         string
	Name                 string
	Surname              string
	ProfileImageFilename string
	IsActive             bool
	IsAdmin              bool
	ActivationGuid       uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
	// ModifiedUsername is audit metadata set by the server from the acting
	// user. It is never bound from client input.
	ModifiedUsername string
}

// UserRefreshToken backs the "remember me" flow. Only the sha256 hash of
// the raw token is persisted.
type UserRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	IpAddress string
	UserAgent string
	CreatedAt time.Time
}
