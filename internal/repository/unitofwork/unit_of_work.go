package unitofwork

import (
	"context"

	"noteshare-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to a single request. Begin/Commit
// wrap multi-repository business operations in one storage transaction;
// without Begin each call is individually atomic.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	NoteLikeRepository() contract.NoteLikeRepository
	CategoryRepository() contract.CategoryRepository
	CommentRepository() contract.CommentRepository
	SystemLogRepository() contract.SystemLogRepository
}
