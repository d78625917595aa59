package implementation

import (
	"context"
	"errors"
	"fmt"

	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/mapper"
	"miva-analytics-be/internal/model"
	"miva-analytics-be/internal/repository/contract"
	"miva-analytics-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatFeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatFeedbackRepository(db *gorm.DB) contract.ChatFeedbackRepository {
	return &ChatFeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatFeedbackRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatFeedbackRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatFeedback, error) {
	var m model.ChatFeedback
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatFeedbackToEntity(&m), nil
}

func (r *ChatFeedbackRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatFeedback, error) {
	var models []*model.ChatFeedback
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ChatFeedbacksToEntities(models), nil
}

func (r *ChatFeedbackRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatFeedback{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChatFeedbackRepositoryImpl) DailyCounts(ctx context.Context, days int) ([]contract.DailyCount, error) {
	var results []contract.DailyCount
	err := r.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT to_char(created_at, 'YYYY-MM-DD') as date, COUNT(*) as count
		FROM chat_feedback
		WHERE created_at > NOW() - INTERVAL '%d days'
		GROUP BY date
		ORDER BY date ASC
	`, days)).Scan(&results).Error
	return results, err
}
