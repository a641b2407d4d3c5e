package contract

import (
	"context"

	"noteshare-be/internal/entity"
	"noteshare-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Comment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	DeleteByNote(ctx context.Context, noteId uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerId uuid.UUID) error
}
