package service

import (
	"context"
	"fmt"
	"time"

	"noteshare-be/internal/business"
	"noteshare-be/internal/dto"
	"noteshare-be/internal/entity"
	"noteshare-be/internal/repository/memory"
	"noteshare-be/internal/repository/specification"
	"noteshare-be/internal/repository/unitofwork"
	"noteshare-be/pkg/events"

	"github.com/google/uuid"
)

type INoteService interface {
	ListNotes(ctx context.Context) ([]dto.NoteListItem, error)
	ListNotesByCategory(ctx context.Context, categoryId uuid.UUID) (*business.Result[[]dto.NoteListItem], error)
	ListMostLiked(ctx context.Context, limit int) ([]dto.NoteListItem, error)
	ListMyNotes(ctx context.Context, userId uuid.UUID) ([]dto.NoteListItem, error)
	GetNote(ctx context.Context, noteId uuid.UUID) (*business.Result[*dto.NoteResponse], error)
	CreateNote(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*business.Result[*dto.NoteResponse], error)
	UpdateNote(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*business.Result[*dto.NoteResponse], error)
	DeleteNote(ctx context.Context, userId uuid.UUID, isAdmin bool, noteId uuid.UUID) (*business.Result[*dto.DeletedResponse], error)
	ToggleLike(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) (*business.Result[*dto.LikeResponse], error)
}

// Cache keys for the anonymous listing pages.
const (
	cacheKeyIndex     = "notes:index"
	cacheKeyMostLiked = "notes:most_liked"
)

func cacheKeyCategory(categoryId uuid.UUID) string {
	return "notes:category:" + categoryId.String()
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	listingCache     *memory.ListingCache
	publisherService IPublisherService
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	listingCache *memory.ListingCache,
	publisherService IPublisherService,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		listingCache:     listingCache,
		publisherService: publisherService,
	}
}

func toListItems(notes []*entity.Note) []dto.NoteListItem {
	items := make([]dto.NoteListItem, 0, len(notes))
	for _, n := range notes {
		items = append(items, dto.NoteListItem{
			Id:         n.Id,
			Title:      n.Title,
			Text:       n.Text,
			CategoryId: n.CategoryId,
			OwnerId:    n.OwnerId,
			LikeCount:  n.LikeCount,
			UpdatedAt:  n.UpdatedAt,
		})
	}
	return items
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:         n.Id,
		Title:      n.Title,
		Text:       n.Text,
		CategoryId: n.CategoryId,
		OwnerId:    n.OwnerId,
		LikeCount:  n.LikeCount,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (s *noteService) ListNotes(ctx context.Context) ([]dto.NoteListItem, error) {
	if cached, found := s.listingCache.Get(cacheKeyIndex); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx, specification.OrderBy{Field: "updated_at", Desc: true})
	if err != nil {
		return nil, err
	}

	items := toListItems(notes)
	s.listingCache.Set(cacheKeyIndex, items)
	return items, nil
}

func (s *noteService) ListNotesByCategory(ctx context.Context, categoryId uuid.UUID) (*business.Result[[]dto.NoteListItem], error) {
	if cached, found := s.listingCache.Get(cacheKeyCategory(categoryId)); found {
		return business.OK(cached), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: categoryId})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return business.Fail[[]dto.NoteListItem](business.ErrCategoryNotFound, "Category not found"), nil
	}

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByCategoryID{CategoryID: categoryId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := toListItems(notes)
	s.listingCache.Set(cacheKeyCategory(categoryId), items)
	return business.OK(items), nil
}

func (s *noteService) ListMostLiked(ctx context.Context, limit int) ([]dto.NoteListItem, error) {
	if limit <= 0 {
		limit = 10
	}

	if cached, found := s.listingCache.Get(cacheKeyMostLiked); found && len(cached) >= limit {
		return cached[:limit], nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OrderBy{Field: "like_count", Desc: true},
		specification.Pagination{Limit: limit, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	items := toListItems(notes)
	s.listingCache.Set(cacheKeyMostLiked, items)
	return items, nil
}

func (s *noteService) ListMyNotes(ctx context.Context, userId uuid.UUID) ([]dto.NoteListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{OwnerID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toListItems(notes), nil
}

func (s *noteService) GetNote(ctx context.Context, noteId uuid.UUID) (*business.Result[*dto.NoteResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return business.Fail[*dto.NoteResponse](business.ErrNoteNotFound, "Note not found"), nil
	}

	return business.OK(toNoteResponse(note)), nil
}

func (s *noteService) CreateNote(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*business.Result[*dto.NoteResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return business.Fail[*dto.NoteResponse](business.ErrUserNotFound, "User not found"), nil
	}

	if req.CategoryId != nil {
		category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *req.CategoryId})
		if err != nil {
			return nil, err
		}
		if category == nil {
			return business.Fail[*dto.NoteResponse](business.ErrCategoryNotFound, "Category not found"), nil
		}
	}

	note := &entity.Note{
		Id:               uuid.New(),
		Title:            req.Title,
		Text:             req.Text,
		CategoryId:       req.CategoryId,
		OwnerId:          userId,
		LikeCount:        0,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
		ModifiedUsername: user.Username,
	}

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	s.listingCache.Invalidate()

	if s.publisherService != nil {
		event := events.New(events.NoteCreated, map[string]interface{}{
			"note_id":  note.Id,
			"owner_id": userId,
		})
		if err := s.publisherService.PublishEvent(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.NoteCreated, err)
		}
	}

	return business.OK(toNoteResponse(note)), nil
}

func (s *noteService) UpdateNote(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*business.Result[*dto.NoteResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return business.Fail[*dto.NoteResponse](business.ErrNoteNotFound, "Note not found"), nil
	}

	// Editing is owner-only: admins moderate by deleting, not rewriting.
	if note.OwnerId != userId {
		return business.Fail[*dto.NoteResponse](business.ErrForbidden, "Only the owner can edit this note"), nil
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return business.Fail[*dto.NoteResponse](business.ErrUserNotFound, "User not found"), nil
	}

	if req.CategoryId != nil {
		category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *req.CategoryId})
		if err != nil {
			return nil, err
		}
		if category == nil {
			return business.Fail[*dto.NoteResponse](business.ErrCategoryNotFound, "Category not found"), nil
		}
	}

	note.Title = req.Title
	note.Text = req.Text
	note.CategoryId = req.CategoryId
	note.UpdatedAt = time.Now()
	note.ModifiedUsername = user.Username

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	s.listingCache.Invalidate()

	return business.OK(toNoteResponse(note)), nil
}

func (s *noteService) DeleteNote(ctx context.Context, userId uuid.UUID, isAdmin bool, noteId uuid.UUID) (*business.Result[*dto.DeletedResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return business.Fail[*dto.DeletedResponse](business.ErrNoteNotFound, "Note not found"), nil
	}

	if note.OwnerId != userId && !isAdmin {
		return business.Fail[*dto.DeletedResponse](business.ErrForbidden, "Only the owner or an admin can delete this note"), nil
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteLikeRepository().DeleteByNote(ctx, noteId); err != nil {
		return nil, err
	}
	if err := uow.CommentRepository().DeleteByNote(ctx, noteId); err != nil {
		return nil, err
	}
	if err := uow.NoteRepository().Delete(ctx, noteId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.listingCache.Invalidate()

	if s.publisherService != nil {
		event := events.New(events.NoteDeleted, map[string]interface{}{
			"note_id":    noteId,
			"deleted_by": userId,
		})
		if err := s.publisherService.PublishEvent(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.NoteDeleted, err)
		}
	}

	return business.OK(&dto.DeletedResponse{Id: noteId}), nil
}

func (s *noteService) ToggleLike(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) (*business.Result[*dto.LikeResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return business.Fail[*dto.LikeResponse](business.ErrNoteNotFound, "Note not found"), nil
	}

	existing, err := uow.NoteLikeRepository().FindOne(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.Filter("user_id", userId),
	)
	if err != nil {
		return nil, err
	}

	// Like row and denormalized counter move in one transaction.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	liked := false
	delta := -1

	if existing == nil {
		like := &entity.NoteLike{
			Id:        uuid.New(),
			NoteId:    noteId,
			UserId:    userId,
			CreatedAt: time.Now(),
		}
		if err := uow.NoteLikeRepository().Create(ctx, like); err != nil {
			return nil, err
		}
		liked = true
		delta = 1
	} else {
		if err := uow.NoteLikeRepository().Delete(ctx, existing.Id); err != nil {
			return nil, err
		}
	}

	if err := uow.NoteRepository().AdjustLikeCount(ctx, noteId, delta); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.listingCache.Invalidate()

	if liked && s.publisherService != nil {
		event := events.New(events.NoteLiked, map[string]interface{}{
			"note_id": noteId,
			"user_id": userId,
		})
		if err := s.publisherService.PublishEvent(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.NoteLiked, err)
		}
	}

	return business.OK(&dto.LikeResponse{
		NoteId:    noteId,
		Liked:     liked,
		LikeCount: note.LikeCount + delta,
	}), nil
}
