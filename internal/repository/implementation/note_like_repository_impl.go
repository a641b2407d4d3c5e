package implementation

import (
	"context"
	"errors"

	"noteshare-be/internal/entity"
	"noteshare-be/internal/mapper"
	"noteshare-be/internal/model"
	"noteshare-be/internal/repository/contract"
	"noteshare-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteLikeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteLikeRepository(db *gorm.DB) contract.NoteLikeRepository {
	return &NoteLikeRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteLikeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteLikeRepositoryImpl) Create(ctx context.Context, like *entity.NoteLike) error {
	m := r.mapper.LikeToModel(like)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*like = *r.mapper.LikeToEntity(m)
	return nil
}

func (r *NoteLikeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteLike, error) {
	var m model.NoteLike
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.LikeToEntity(&m), nil
}

func (r *NoteLikeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteLike, error) {
	var ms []*model.NoteLike
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	likes := make([]*entity.NoteLike, 0, len(ms))
	for _, m := range ms {
		likes = append(likes, r.mapper.LikeToEntity(m))
	}
	return likes, nil
}

func (r *NoteLikeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NoteLike{}).Error
}

func (r *NoteLikeRepositoryImpl) DeleteByNote(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteLike{}).Error
}

func (r *NoteLikeRepositoryImpl) DeleteByUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.NoteLike{}).Error
}
