package contract

import (
	"context"

	"noteshare-be/internal/entity"
	"noteshare-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AdjustLikeCount atomically shifts the denormalized counter by delta.
	AdjustLikeCount(ctx context.Context, noteId uuid.UUID, delta int) error
	// DetachCategory nulls category_id for every note in the category.
	// Category deletion never cascades to notes.
	DetachCategory(ctx context.Context, categoryId uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerId uuid.UUID) error
}

type NoteLikeRepository interface {
	Create(ctx context.Context, like *entity.NoteLike) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteLike, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteLike, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByNote(ctx context.Context, noteId uuid.UUID) error
	DeleteByUser(ctx context.Context, userId uuid.UUID) error
}
