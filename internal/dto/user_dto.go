package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id                   uuid.UUID `json:"id"`
	Username             string    `json:"username"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	Surname              string    `json:"surname"`
	ProfileImageFilename string    `json:"profile_image_filename,omitempty"`
	IsAdmin              bool      `json:"is_admin"`
	CreatedAt            time.Time `json:"created_at"`
}

// UpdateProfileRequest deliberately has no ModifiedUsername field: the
// audit column is server-set and cannot be client-supplied.
type UpdateProfileRequest struct {
	Username string `json:"username" validate:"required,min=3,max=25"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=35"`
	Surname  string `json:"surname" validate:"max=35"`
}

type DeletedResponse struct {
	Id uuid.UUID `json:"id"`
}
