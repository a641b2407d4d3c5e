package service

import (
	"context"
	"time"

	"noteshare-be/internal/business"
	"noteshare-be/internal/dto"
	"noteshare-be/internal/entity"
	"noteshare-be/internal/repository/memory"
	"noteshare-be/internal/repository/specification"
	"noteshare-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICategoryService interface {
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	GetCategory(ctx context.Context, categoryId uuid.UUID) (*business.Result[*dto.CategoryResponse], error)
	CreateCategory(ctx context.Context, userId uuid.UUID, req *dto.CreateCategoryRequest) (*business.Result[*dto.CategoryResponse], error)
	UpdateCategory(ctx context.Context, userId uuid.UUID, req *dto.UpdateCategoryRequest) (*business.Result[*dto.CategoryResponse], error)
	DeleteCategory(ctx context.Context, categoryId uuid.UUID) (*business.Result[*dto.DeletedResponse], error)
}

type categoryService struct {
	uowFactory   unitofwork.RepositoryFactory
	listingCache *memory.ListingCache
}

func NewCategoryService(uowFactory unitofwork.RepositoryFactory, listingCache *memory.ListingCache) ICategoryService {
	return &categoryService{
		uowFactory:   uowFactory,
		listingCache: listingCache,
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.OrderBy{Field: "title", Desc: false})
	if err != nil {
		return nil, err
	}

	res := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, *toCategoryResponse(c))
	}
	return res, nil
}

func (s *categoryService) GetCategory(ctx context.Context, categoryId uuid.UUID) (*business.Result[*dto.CategoryResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: categoryId})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return business.Fail[*dto.CategoryResponse](business.ErrCategoryNotFound, "Category not found"), nil
	}

	return business.OK(toCategoryResponse(category)), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, userId uuid.UUID, req *dto.CreateCategoryRequest) (*business.Result[*dto.CategoryResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return business.Fail[*dto.CategoryResponse](business.ErrUserNotFound, "User not found"), nil
	}

	category := &entity.Category{
		Id:               uuid.New(),
		Title:            req.Title,
		Description:      req.Description,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
		ModifiedUsername: user.Username,
	}

	if err := uow.CategoryRepository().Create(ctx, category); err != nil {
		return nil, err
	}

	return business.OK(toCategoryResponse(category)), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, userId uuid.UUID, req *dto.UpdateCategoryRequest) (*business.Result[*dto.CategoryResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return business.Fail[*dto.CategoryResponse](business.ErrUserNotFound, "User not found"), nil
	}

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return business.Fail[*dto.CategoryResponse](business.ErrCategoryNotFound, "Category not found"), nil
	}

	category.Title = req.Title
	category.Description = req.Description
	category.UpdatedAt = time.Now()
	category.ModifiedUsername = user.Username

	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}

	return business.OK(toCategoryResponse(category)), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryId uuid.UUID) (*business.Result[*dto.DeletedResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: categoryId})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return business.Fail[*dto.DeletedResponse](business.ErrCategoryNotFound, "Category not found"), nil
	}

	// Notes survive their category: they become uncategorized.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().DetachCategory(ctx, categoryId); err != nil {
		return nil, err
	}
	if err := uow.CategoryRepository().Delete(ctx, categoryId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.listingCache.Invalidate()

	return business.OK(&dto.DeletedResponse{Id: categoryId}), nil
}
