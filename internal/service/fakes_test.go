package service

import (
	"context"

	"noteshare-be/internal/entity"
	"noteshare-be/internal/repository/contract"
	"noteshare-be/internal/repository/specification"
	"noteshare-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repository fakes. They interpret the same specification
// values the gorm implementations bind to SQL, so services run unchanged.

type fakeStore struct {
	users         map[uuid.UUID]*entity.User
	refreshTokens map[uuid.UUID]*entity.UserRefreshToken
	notes         map[uuid.UUID]*entity.Note
	likes         map[uuid.UUID]*entity.NoteLike
	categories    map[uuid.UUID]*entity.Category
	comments      map[uuid.UUID]*entity.Comment
	systemLogs    []*entity.SystemLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         make(map[uuid.UUID]*entity.User),
		refreshTokens: make(map[uuid.UUID]*entity.UserRefreshToken),
		notes:         make(map[uuid.UUID]*entity.Note),
		likes:         make(map[uuid.UUID]*entity.NoteLike),
		categories:    make(map[uuid.UUID]*entity.Category),
		comments:      make(map[uuid.UUID]*entity.Comment),
	}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory(store *fakeStore) unitofwork.RepositoryFactory {
	return &fakeFactory{store: store}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}
func (u *fakeUow) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepo{store: u.store}
}
func (u *fakeUow) NoteLikeRepository() contract.NoteLikeRepository {
	return &fakeNoteLikeRepo{store: u.store}
}
func (u *fakeUow) CategoryRepository() contract.CategoryRepository {
	return &fakeCategoryRepo{store: u.store}
}
func (u *fakeUow) CommentRepository() contract.CommentRepository {
	return &fakeCommentRepo{store: u.store}
}
func (u *fakeUow) SystemLogRepository() contract.SystemLogRepository {
	return &fakeSystemLogRepo{store: u.store}
}

// --- User repository ---

type fakeUserRepo struct {
	store *fakeStore
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if u.Id != sp.ID {
				return false
			}
		case specification.ByUsername:
			if u.Username != sp.Username {
				return false
			}
		case specification.ByEmail:
			if u.Email != sp.Email {
				return false
			}
		case specification.ByActivationGuid:
			if u.ActivationGuid != sp.Guid {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	cp := *user
	r.store.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	cp := *user
	r.store.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.users, id)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	users, _ := r.FindAll(ctx, specs...)
	return int64(len(users)), nil
}

func (r *fakeUserRepo) Activate(ctx context.Context, userId uuid.UUID) error {
	if u, ok := r.store.users[userId]; ok {
		u.IsActive = true
	}
	return nil
}

func (r *fakeUserRepo) UpdateProfileImage(ctx context.Context, userId uuid.UUID, filename string) error {
	if u, ok := r.store.users[userId]; ok {
		u.ProfileImageFilename = filename
	}
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	cp := *token
	r.store.refreshTokens[token.Id] = &cp
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error) {
	for _, t := range r.store.refreshTokens {
		match := true
		for _, s := range specs {
			if sp, ok := s.(specification.ByTokenHash); ok && t.TokenHash != sp.Hash {
				match = false
			}
		}
		if match {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	for _, t := range r.store.refreshTokens {
		if t.TokenHash == tokenHash {
			t.Revoked = true
		}
	}
	return nil
}

func (r *fakeUserRepo) DeleteRefreshTokensByUser(ctx context.Context, userId uuid.UUID) error {
	for id, t := range r.store.refreshTokens {
		if t.UserId == userId {
			delete(r.store.refreshTokens, id)
		}
	}
	return nil
}

// --- Note repository ---

type fakeNoteRepo struct {
	store *fakeStore
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if n.Id != sp.ID {
				return false
			}
		case specification.ByCategoryID:
			if n.CategoryId == nil || *n.CategoryId != sp.CategoryID {
				return false
			}
		case specification.OwnedBy:
			if n.OwnerId != sp.OwnerID {
				return false
			}
		}
	}
	return true
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	cp := *note
	r.store.notes[note.Id] = &cp
	return nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	cp := *note
	r.store.notes[note.Id] = &cp
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.notes, id)
	return nil
}

func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var out []*entity.Note
	limit := -1
	for _, s := range specs {
		if sp, ok := s.(specification.Pagination); ok {
			limit = sp.Limit
		}
	}
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			cp := *n
			out = append(out, &cp)
		}
	}
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	notes, _ := r.FindAll(ctx, specs...)
	return int64(len(notes)), nil
}

func (r *fakeNoteRepo) AdjustLikeCount(ctx context.Context, noteId uuid.UUID, delta int) error {
	if n, ok := r.store.notes[noteId]; ok {
		n.LikeCount += delta
	}
	return nil
}

func (r *fakeNoteRepo) DetachCategory(ctx context.Context, categoryId uuid.UUID) error {
	for _, n := range r.store.notes {
		if n.CategoryId != nil && *n.CategoryId == categoryId {
			n.CategoryId = nil
		}
	}
	return nil
}

func (r *fakeNoteRepo) DeleteByOwner(ctx context.Context, ownerId uuid.UUID) error {
	for id, n := range r.store.notes {
		if n.OwnerId == ownerId {
			delete(r.store.notes, id)
		}
	}
	return nil
}

// --- Note like repository ---

type fakeNoteLikeRepo struct {
	store *fakeStore
}

func likeMatches(l *entity.NoteLike, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if l.Id != sp.ID {
				return false
			}
		case specification.ByNoteID:
			if l.NoteId != sp.NoteID {
				return false
			}
		case specification.FilterBy:
			if sp.Field == "user_id" {
				if userId, ok := sp.Value.(uuid.UUID); !ok || l.UserId != userId {
					return false
				}
			}
		}
	}
	return true
}

func (r *fakeNoteLikeRepo) Create(ctx context.Context, like *entity.NoteLike) error {
	cp := *like
	r.store.likes[like.Id] = &cp
	return nil
}

func (r *fakeNoteLikeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteLike, error) {
	for _, l := range r.store.likes {
		if likeMatches(l, specs) {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteLikeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteLike, error) {
	var out []*entity.NoteLike
	for _, l := range r.store.likes {
		if likeMatches(l, specs) {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNoteLikeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.likes, id)
	return nil
}

func (r *fakeNoteLikeRepo) DeleteByNote(ctx context.Context, noteId uuid.UUID) error {
	for id, l := range r.store.likes {
		if l.NoteId == noteId {
			delete(r.store.likes, id)
		}
	}
	return nil
}

func (r *fakeNoteLikeRepo) DeleteByUser(ctx context.Context, userId uuid.UUID) error {
	for id, l := range r.store.likes {
		if l.UserId == userId {
			delete(r.store.likes, id)
		}
	}
	return nil
}

// --- Category repository ---

type fakeCategoryRepo struct {
	store *fakeStore
}

func categoryMatches(c *entity.Category, specs []specification.Specification) bool {
	for _, s := range specs {
		if sp, ok := s.(specification.ByID); ok && c.Id != sp.ID {
			return false
		}
	}
	return true
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	cp := *category
	r.store.categories[category.Id] = &cp
	return nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	cp := *category
	r.store.categories[category.Id] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.categories, id)
	return nil
}

func (r *fakeCategoryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	for _, c := range r.store.categories {
		if categoryMatches(c, specs) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.store.categories {
		if categoryMatches(c, specs) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	categories, _ := r.FindAll(ctx, specs...)
	return int64(len(categories)), nil
}

// --- Comment repository ---

type fakeCommentRepo struct {
	store *fakeStore
}

func commentMatches(c *entity.Comment, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if c.Id != sp.ID {
				return false
			}
		case specification.ByNoteID:
			if c.NoteId != sp.NoteID {
				return false
			}
		case specification.OwnedBy:
			if c.OwnerId != sp.OwnerID {
				return false
			}
		}
	}
	return true
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	cp := *comment
	r.store.comments[comment.Id] = &cp
	return nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.comments, id)
	return nil
}

func (r *fakeCommentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Comment, error) {
	for _, c := range r.store.comments {
		if commentMatches(c, specs) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCommentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range r.store.comments {
		if commentMatches(c, specs) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	comments, _ := r.FindAll(ctx, specs...)
	return int64(len(comments)), nil
}

func (r *fakeCommentRepo) DeleteByNote(ctx context.Context, noteId uuid.UUID) error {
	for id, c := range r.store.comments {
		if c.NoteId == noteId {
			delete(r.store.comments, id)
		}
	}
	return nil
}

func (r *fakeCommentRepo) DeleteByOwner(ctx context.Context, ownerId uuid.UUID) error {
	for id, c := range r.store.comments {
		if c.OwnerId == ownerId {
			delete(r.store.comments, id)
		}
	}
	return nil
}

// --- System log repository ---

type fakeSystemLogRepo struct {
	store *fakeStore
}

func (r *fakeSystemLogRepo) Create(ctx context.Context, log *entity.SystemLog) error {
	cp := *log
	r.store.systemLogs = append(r.store.systemLogs, &cp)
	return nil
}

func (r *fakeSystemLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemLog, error) {
	return r.store.systemLogs, nil
}

// --- Mailer fake ---

type fakeMailer struct {
	sentTo []string
}

func (m *fakeMailer) SendActivationLink(toEmail, activationURL string) error {
	m.sentTo = append(m.sentTo, toEmail)
	return nil
}
