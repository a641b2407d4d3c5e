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

func newNoteFixture() (*fakeStore, INoteService) {
	store := newFakeStore()
	svc := NewNoteService(newFakeFactory(store), memory.NewListingCache(time.Minute), nil)
	return store, svc
}

func seedNote(store *fakeStore, owner *entity.User, title string) *entity.Note {
	n := &entity.Note{
		Id:        uuid.New(),
		Title:     title,
		Text:      "body of " + title,
		OwnerId:   owner.Id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	store.notes[n.Id] = n
	return n
}

func TestCreateNoteStampsOwnerAndModifier(t *testing.T) {
	store, svc := newNoteFixture()
	owner := seedUser(store, "gopher", "gopher@example.com", "secret123", true)

	result, err := svc.CreateNote(context.Background(), owner.Id, &dto.CreateNoteRequest{
		Title: "first note",
		Text:  "hello",
	})
	require.NoError(t, err)
	require.False(t, result.HasErrors())

	created := store.notes[result.Value.Id]
	require.NotNil(t, created)
	assert.Equal(t, owner.Id, created.OwnerId)
	assert.Equal(t, "gopher", created.ModifiedUsername)
	assert.Equal(t, 0, created.LikeCount)
}

func TestCreateNoteRejectsUnknownCategory(t *testing.T) {
	store, svc := newNoteFixture()
	owner := seedUser(store, "gopher", "gopher@example.com", "secret123", true)

	missing := uuid.New()
	result, err := svc.CreateNote(context.Background(), owner.Id, &dto.CreateNoteRequest{
		Title:      "note",
		CategoryId: &missing,
	})
	require.NoError(t, err)
	require.True(t, result.HasErrors())
	assert.Equal(t, business.ErrCategoryNotFound, result.First().Code)
}

func TestUpdateNoteIsOwnerOnly(t *testing.T) {
	store, svc := newNoteFixture()
	owner := seedUser(store, "owner", "owner@example.com", "secret123", true)
	other := seedUser(store, "other", "other@example.com", "secret123", true)
	note := seedNote(store, owner, "original")

	result, err := svc.UpdateNote(context.Background(), other.Id, &dto.UpdateNoteRequest{
		Id:    note.Id,
		Title: "hijacked",
	})
	require.NoError(t, err)
	require.True(t, result.HasErrors())
	assert.Equal(t, business.ErrForbidden, result.First().Code)
	assert.Equal(t, "original", store.notes[note.Id].Title)

	ok, err := svc.UpdateNote(context.Background(), owner.Id, &dto.UpdateNoteRequest{
		Id:    note.Id,
		Title: "revised",
	})
	require.NoError(t, err)
	require.False(t, ok.HasErrors())
	assert.Equal(t, "revised", store.notes[note.Id].Title)
	assert.Equal(t, "owner", store.notes[note.Id].ModifiedUsername)
}

func TestDeleteNoteAllowsOwnerOrAdmin(t *testing.T) {
	store, svc := newNoteFixture()
	owner := seedUser(store, "owner", "owner@example.com", "secret123", true)
	other := seedUser(store, "other", "other@example.com", "secret123", true)

	note := seedNote(store, owner, "kept")
	denied, err := svc.DeleteNote(context.Background(), other.Id, false, note.Id)
	require.NoError(t, err)
	require.True(t, denied.HasErrors())
	assert.Equal(t, business.ErrForbidden, denied.First().Code)
	assert.Contains(t, store.notes, note.Id)

	asAdmin, err := svc.DeleteNote(context.Background(), other.Id, true, note.Id)
	require.NoError(t, err)
	require.False(t, asAdmin.HasErrors())
	assert.NotContains(t, store.notes, note.Id)

	second := seedNote(store, owner, "mine")
	asOwner, err := svc.DeleteNote(context.Background(), owner.Id, false, second.Id)
	require.NoError(t, err)
	require.False(t, asOwner.HasErrors())
	assert.NotContains(t, store.notes, second.Id)
}

func TestDeleteNoteRemovesLikesAndComments(t *testing.T) {
	store, svc := newNoteFixture()
	owner := seedUser(store, "owner", "owner@example.com", "secret123", true)
	fan := seedUser(store, "fan", "fan@example.com", "secret123", true)
	note := seedNote(store, owner, "popular")

	like := &entity.NoteLike{Id: uuid.New(), NoteId: note.Id, UserId: fan.Id}
	store.likes[like.Id] = like
	comment := &entity.Comment{Id: uuid.New(), NoteId: note.Id, OwnerId: fan.Id, Text: "great"}
	store.comments[comment.Id] = comment

	result, err := svc.DeleteNote(context.Background(), owner.Id, false, note.Id)
	require.NoError(t, err)
	require.False(t, result.HasErrors())

	assert.Empty(t, store.likes)
	assert.Empty(t, store.comments)
}

func TestToggleLikeFlipsStateAndCounter(t *testing.T) {
	store, svc := newNoteFixture()
	owner := seedUser(store, "owner", "owner@example.com", "secret123", true)
	fan := seedUser(store, "fan", "fan@example.com", "secret123", true)
	note := seedNote(store, owner, "likeable")

	liked, err := svc.ToggleLike(context.Background(), fan.Id, note.Id)
	require.NoError(t, err)
	require.False(t, liked.HasErrors())
	assert.True(t, liked.Value.Liked)
	assert.Equal(t, 1, liked.Value.LikeCount)
	assert.Equal(t, 1, store.notes[note.Id].LikeCount)
	assert.Len(t, store.likes, 1)

	unliked, err := svc.ToggleLike(context.Background(), fan.Id, note.Id)
	require.NoError(t, err)
	require.False(t, unliked.HasErrors())
	assert.False(t, unliked.Value.Liked)
	assert.Equal(t, 0, unliked.Value.LikeCount)
	assert.Equal(t, 0, store.notes[note.Id].LikeCount)
	assert.Empty(t, store.likes)
}

func TestToggleLikeUnknownNote(t *testing.T) {
	store, svc := newNoteFixture()
	fan := seedUser(store, "fan", "fan@example.com", "secret123", true)

	result, err := svc.ToggleLike(context.Background(), fan.Id, uuid.New())
	require.NoError(t, err)
	require.True(t, result.HasErrors())
	assert.Equal(t, business.ErrNoteNotFound, result.First().Code)
}

func TestListNotesServesFromCacheUntilMutation(t *testing.T) {
	store, svc := newNoteFixture()
	owner := seedUser(store, "owner", "owner@example.com", "secret123", true)
	seedNote(store, owner, "cached")

	first, err := svc.ListNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A write that bypasses the service is invisible while cached.
	seedNote(store, owner, "sneaky")
	second, err := svc.ListNotes(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)

	// A service mutation flushes the cache.
	_, err = svc.CreateNote(context.Background(), owner.Id, &dto.CreateNoteRequest{Title: "third"})
	require.NoError(t, err)

	third, err := svc.ListNotes(context.Background())
	require.NoError(t, err)
	assert.Len(t, third, 3)
}

func TestListNotesByCategoryUnknownCategory(t *testing.T) {
	_, svc := newNoteFixture()

	result, err := svc.ListNotesByCategory(context.Background(), uuid.New())
	require.NoError(t, err)
	require.True(t, result.HasErrors())
	assert.Equal(t, business.ErrCategoryNotFound, result.First().Code)
}
