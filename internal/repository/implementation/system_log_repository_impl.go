package implementation

import (
	"context"

	"noteshare-be/internal/entity"
	"noteshare-be/internal/model"
	"noteshare-be/internal/repository/contract"
	"noteshare-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SystemLogRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{db: db}
}

func (r *SystemLogRepositoryImpl) Create(ctx context.Context, log *entity.SystemLog) error {
	m := &model.SystemLog{
		Id:        log.Id,
		EventType: log.EventType,
		Payload:   log.Payload,
		CreatedAt: log.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *SystemLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemLog, error) {
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}

	var models []*model.SystemLog
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	logs := make([]*entity.SystemLog, len(models))
	for i, m := range models {
		logs[i] = &entity.SystemLog{
			Id:        m.Id,
			EventType: m.EventType,
			Payload:   m.Payload,
			CreatedAt: m.CreatedAt,
		}
	}
	return logs, nil
}
