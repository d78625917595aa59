package implementation

import (
	"context"
	"errors"

	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/mapper"
	"miva-analytics-be/internal/model"
	"miva-analytics-be/internal/repository/contract"
	"miva-analytics-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ConversationHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationHistoryRepository(db *gorm.DB) contract.ConversationHistoryRepository {
	return &ConversationHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConversationHistoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConversationHistory, error) {
	var m model.ConversationHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ConversationToEntity(&m), nil
}

func (r *ConversationHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationHistory, error) {
	var models []*model.ConversationHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ConversationsToEntities(models), nil
}

func (r *ConversationHistoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ConversationHistory{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
