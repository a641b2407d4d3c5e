package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"noteshare-be/internal/business"
	"noteshare-be/internal/dto"
	"noteshare-be/internal/repository/specification"
	"noteshare-be/internal/repository/unitofwork"
	"noteshare-be/pkg/events"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*business.Result[*dto.UserProfileResponse], error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*business.Result[*dto.UserProfileResponse], error)
	UploadProfileImage(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (*business.Result[string], error)
	DeleteAccount(ctx context.Context, userId uuid.UUID) (*business.Result[*dto.DeletedResponse], error)
}

// allowedImageTypes is the content-type whitelist for profile images.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpeg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
}

type userService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	uploadDir        string
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, uploadDir string) IUserService {
	return &userService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		uploadDir:        uploadDir,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*business.Result[*dto.UserProfileResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return business.Fail[*dto.UserProfileResponse](business.ErrUserNotFound, "User not found"), nil
	}

	return business.OK(&dto.UserProfileResponse{
		Id:                   user.Id,
		Username:             user.Username,
		Email:                user.Email,
		Name:                 user.Name,
		Surname:              user.Surname,
		ProfileImageFilename: user.ProfileImageFilename,
		IsAdmin:              user.IsAdmin,
		CreatedAt:            user.CreatedAt,
	}), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*business.Result[*dto.UserProfileResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	repo := uow.UserRepository()
	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return business.Fail[*dto.UserProfileResponse](business.ErrUserNotFound, "User not found"), nil
	}

	result := &business.Result[*dto.UserProfileResponse]{}

	// Uniqueness checks exclude the user's own row: keeping the current
	// username or email is always allowed.
	if req.Username != user.Username {
		existing, err := repo.FindOne(ctx, specification.ByUsername{Username: req.Username})
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.Id != user.Id {
			result.AddError(business.ErrUsernameTaken, fmt.Sprintf("Username '%s' is already taken", req.Username))
		}
	}

	if req.Email != user.Email {
		existing, err := repo.FindOne(ctx, specification.ByEmail{Email: req.Email})
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.Id != user.Id {
			result.AddError(business.ErrEmailTaken, fmt.Sprintf("Email '%s' is already registered", req.Email))
		}
	}

	if result.HasErrors() {
		return result, nil
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Name = req.Name
	user.Surname = req.Surname
	user.UpdatedAt = time.Now()
	// Audit column comes from the acting identity, never from the payload.
	user.ModifiedUsername = req.Username

	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}

	result.Value = &dto.UserProfileResponse{
		Id:                   user.Id,
		Username:             user.Username,
		Email:                user.Email,
		Name:                 user.Name,
		Surname:              user.Surname,
		ProfileImageFilename: user.ProfileImageFilename,
		IsAdmin:              user.IsAdmin,
		CreatedAt:            user.CreatedAt,
	}
	return result, nil
}

func (s *userService) UploadProfileImage(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (*business.Result[string], error) {
	if file.Size > 2*1024*1024 {
		return business.Fail[string](business.ErrInvalidImageType, "File too large (max 2MB)"), nil
	}

	contentType := file.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return business.Fail[string](business.ErrInvalidImageType, "Only jpeg, jpg and png images are accepted"), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return business.Fail[string](business.ErrUserNotFound, "User not found"), nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return nil, err
	}

	// One file per user: re-uploading overwrites the previous image.
	filename := fmt.Sprintf("user_%s%s", userId.String(), ext)
	dstPath := filepath.Join(s.uploadDir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return nil, err
	}

	if err := uow.UserRepository().UpdateProfileImage(ctx, userId, filename); err != nil {
		return nil, err
	}

	return business.OK(filename), nil
}

func (s *userService) DeleteAccount(ctx context.Context, userId uuid.UUID) (*business.Result[*dto.DeletedResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return business.Fail[*dto.DeletedResponse](business.ErrUserNotFound, "User not found"), nil
	}

	// Likes this user placed on other people's notes keep those notes'
	// counters honest only if we decrement before removing the rows.
	ownLikes, err := uow.NoteLikeRepository().FindAll(ctx, specification.Filter("user_id", userId))
	if err != nil {
		return nil, err
	}

	ownNotes, err := uow.NoteRepository().FindAll(ctx, specification.OwnedBy{OwnerID: userId})
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for _, like := range ownLikes {
		if err := uow.NoteRepository().AdjustLikeCount(ctx, like.NoteId, -1); err != nil {
			return nil, err
		}
	}
	if err := uow.NoteLikeRepository().DeleteByUser(ctx, userId); err != nil {
		return nil, err
	}

	for _, note := range ownNotes {
		if err := uow.NoteLikeRepository().DeleteByNote(ctx, note.Id); err != nil {
			return nil, err
		}
		if err := uow.CommentRepository().DeleteByNote(ctx, note.Id); err != nil {
			return nil, err
		}
	}
	if err := uow.NoteRepository().DeleteByOwner(ctx, userId); err != nil {
		return nil, err
	}

	if err := uow.CommentRepository().DeleteByOwner(ctx, userId); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().DeleteRefreshTokensByUser(ctx, userId); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().Delete(ctx, userId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.publisherService != nil {
		event := events.New(events.UserDeleted, map[string]interface{}{
			"user_id":  userId,
			"username": user.Username,
		})
		if err := s.publisherService.PublishEvent(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.UserDeleted, err)
		}
	}

	return business.OK(&dto.DeletedResponse{Id: userId}), nil
}
