package mapper

import (
	"noteshare-be/internal/entity"
	"noteshare-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                   u.Id,
		Username:             u.Username,
		Email:                u.Email,
		PasswordHash:         u.PasswordHash,
		Name:                 u.Name,
		Surname:              u.Surname,
		ProfileImageFilename: u.ProfileImageFilename,
		IsActive:             u.IsActive,
		IsAdmin:              u.IsAdmin,
		ActivationGuid:       u.ActivationGuid,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
		ModifiedUsername:     u.ModifiedUsername,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                   u.Id,
		Username:             u.Username,
		Email:                u.Email,
		PasswordHash:         u.PasswordHash,
		Name:                 u.Name,
		Surname:              u.Surname,
		ProfileImageFilename: u.ProfileImageFilename,
		IsActive:             u.IsActive,
		IsAdmin:              u.IsAdmin,
		ActivationGuid:       u.ActivationGuid,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
		ModifiedUsername:     u.ModifiedUsername,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) RefreshTokenToEntity(t *model.UserRefreshToken) *entity.UserRefreshToken {
	if t == nil {
		return nil
	}
	return &entity.UserRefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
		IpAddress: t.IpAddress,
		UserAgent: t.UserAgent,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) RefreshTokenToModel(t *entity.UserRefreshToken) *model.UserRefreshToken {
	if t == nil {
		return nil
	}
	return &model.UserRefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
		IpAddress: t.IpAddress,
		UserAgent: t.UserAgent,
		CreatedAt: t.CreatedAt,
	}
}
