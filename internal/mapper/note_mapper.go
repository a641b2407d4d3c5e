package mapper

import (
	"noteshare-be/internal/entity"
	"noteshare-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}
	return &entity.Note{
		Id:               n.Id,
		Title:            n.Title,
		Text:             n.Text,
		CategoryId:       n.CategoryId,
		OwnerId:          n.OwnerId,
		LikeCount:        n.LikeCount,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
		ModifiedUsername: n.ModifiedUsername,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	return &model.Note{
		Id:               n.Id,
		Title:            n.Title,
		Text:             n.Text,
		CategoryId:       n.CategoryId,
		OwnerId:          n.OwnerId,
		LikeCount:        n.LikeCount,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
		ModifiedUsername: n.ModifiedUsername,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *NoteMapper) LikeToEntity(l *model.NoteLike) *entity.NoteLike {
	if l == nil {
		return nil
	}
	return &entity.NoteLike{
		Id:        l.Id,
		NoteId:    l.NoteId,
		UserId:    l.UserId,
		CreatedAt: l.CreatedAt,
	}
}

func (m *NoteMapper) LikeToModel(l *entity.NoteLike) *model.NoteLike {
	if l == nil {
		return nil
	}
	return &model.NoteLike{
		Id:        l.Id,
		NoteId:    l.NoteId,
		UserId:    l.UserId,
		CreatedAt: l.CreatedAt,
	}
}
