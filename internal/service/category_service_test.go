package service

import (
	"context"
	"testing"
	"time"

	"noteshare-be/internal/business"
	"noteshare-be/internal/dto"
	"noteshare-be/internal/entity"
	"noteshare-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryFixture() (*fakeStore, ICategoryService) {
	store := newFakeStore()
	svc := NewCategoryService(newFakeFactory(store), memory.NewListingCache(time.Minute))
	return store, svc
}

func TestCreateCategoryStampsModifier(t *testing.T) {
	store, svc := newCategoryFixture()
	admin := seedUser(store, "admin", "admin@example.com", "secret123", true)

	result, err := svc.CreateCategory(context.Background(), admin.Id, &dto.CreateCategoryRequest{
		Title:       "Programming",
		Description: "Code notes",
	})
	require.NoError(t, err)
	require.False(t, result.HasErrors())

	created := store.categories[result.Value.Id]
	require.NotNil(t, created)
	assert.Equal(t, "admin", created.ModifiedUsername)
}

func TestUpdateCategoryUnknownId(t *testing.T) {
	store, svc := newCategoryFixture()
	admin := seedUser(store, "admin", "admin@example.com", "secret123", true)

	result, err := svc.UpdateCategory(context.Background(), admin.Id, &dto.UpdateCategoryRequest{
		Id:    uuid.New(),
		Title: "Renamed",
	})
	require.NoError(t, err)
	require.True(t, result.HasErrors())
	assert.Equal(t, business.ErrCategoryNotFound, result.First().Code)
}

func TestDeleteCategoryDetachesNotes(t *testing.T) {
	store, svc := newCategoryFixture()
	owner := seedUser(store, "owner", "owner@example.com", "secret123", true)

	category := &entity.Category{Id: uuid.New(), Title: "Doomed", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	store.categories[category.Id] = category

	note := &entity.Note{
		Id:         uuid.New(),
		Title:      "survivor",
		CategoryId: &category.Id,
		OwnerId:    owner.Id,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	store.notes[note.Id] = note

	result, err := svc.DeleteCategory(context.Background(), category.Id)
	require.NoError(t, err)
	require.False(t, result.HasErrors())

	assert.NotContains(t, store.categories, category.Id)
	require.Contains(t, store.notes, note.Id)
	assert.Nil(t, store.notes[note.Id].CategoryId)
}
