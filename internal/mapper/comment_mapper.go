package mapper

import (
	"noteshare-be/internal/entity"
	"noteshare-be/internal/model"
)

type CommentMapper struct{}

func NewCommentMapper() *CommentMapper {
	return &CommentMapper{}
}

func (m *CommentMapper) ToEntity(c *model.Comment) *entity.Comment {
	if c == nil {
		return nil
	}
	return &entity.Comment{
		Id:               c.Id,
		NoteId:           c.NoteId,
		OwnerId:          c.OwnerId,
		Text:             c.Text,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
		ModifiedUsername: c.ModifiedUsername,
	}
}

func (m *CommentMapper) ToModel(c *entity.Comment) *model.Comment {
	if c == nil {
		return nil
	}
	return &model.Comment{
		Id:               c.Id,
		NoteId:           c.NoteId,
		OwnerId:          c.OwnerId,
		Text:             c.Text,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
		ModifiedUsername: c.ModifiedUsername,
	}
}

func (m *CommentMapper) ToEntities(comments []*model.Comment) []*entity.Comment {
	entities := make([]*entity.Comment, len(comments))
	for i, c := range comments {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
