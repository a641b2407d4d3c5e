package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Title       string `json:"title" validate:"required,max=50"`
	Description string `json:"description" validate:"max=200"`
}

type UpdateCategoryRequest struct {
	Id          uuid.UUID
	Title       string `json:"title" validate:"required,max=50"`
	Description string `json:"description" validate:"max=200"`
}

type CategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
