package service

import (
	"context"
	"time"

	"noteshare-be/internal/business"
	"noteshare-be/internal/dto"
	"noteshare-be/internal/entity"
	"noteshare-be/internal/repository/specification"
	"noteshare-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICommentService interface {
	ListByNote(ctx context.Context, noteId uuid.UUID) (*business.Result[[]dto.CommentResponse], error)
	CreateComment(ctx context.Context, userId uuid.UUID, req *dto.CreateCommentRequest) (*business.Result[*dto.CommentResponse], error)
	DeleteComment(ctx context.Context, userId uuid.UUID, isAdmin bool, commentId uuid.UUID) (*business.Result[*dto.DeletedResponse], error)
}

type commentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCommentService(uowFactory unitofwork.RepositoryFactory) ICommentService {
	return &commentService{
		uowFactory: uowFactory,
	}
}

func toCommentResponse(c *entity.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		Id:        c.Id,
		NoteId:    c.NoteId,
		OwnerId:   c.OwnerId,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func (s *commentService) ListByNote(ctx context.Context, noteId uuid.UUID) (*business.Result[[]dto.CommentResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return business.Fail[[]dto.CommentResponse](business.ErrNoteNotFound, "Note not found"), nil
	}

	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		res = append(res, *toCommentResponse(c))
	}
	return business.OK(res), nil
}

func (s *commentService) CreateComment(ctx context.Context, userId uuid.UUID, req *dto.CreateCommentRequest) (*business.Result[*dto.CommentResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.NoteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return business.Fail[*dto.CommentResponse](business.ErrNoteNotFound, "Note not found"), nil
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return business.Fail[*dto.CommentResponse](business.ErrUserNotFound, "User not found"), nil
	}

	comment := &entity.Comment{
		Id:               uuid.New(),
		NoteId:           req.NoteId,
		OwnerId:          userId,
		Text:             req.Text,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
		ModifiedUsername: user.Username,
	}

	if err := uow.CommentRepository().Create(ctx, comment); err != nil {
		return nil, err
	}

	return business.OK(toCommentResponse(comment)), nil
}

func (s *commentService) DeleteComment(ctx context.Context, userId uuid.UUID, isAdmin bool, commentId uuid.UUID) (*business.Result[*dto.DeletedResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	comment, err := uow.CommentRepository().FindOne(ctx, specification.ByID{ID: commentId})
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return business.Fail[*dto.DeletedResponse](business.ErrCommentNotFound, "Comment not found"), nil
	}

	if comment.OwnerId != userId && !isAdmin {
		return business.Fail[*dto.DeletedResponse](business.ErrForbidden, "Only the author or an admin can delete this comment"), nil
	}

	if err := uow.CommentRepository().Delete(ctx, commentId); err != nil {
		return nil, err
	}

	return business.OK(&dto.DeletedResponse{Id: commentId}), nil
}
