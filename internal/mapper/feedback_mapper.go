package mapper

import (
	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) UserFeedbackToEntity(f *model.UserFeedback) *entity.UserFeedback {
	if f == nil {
		return nil
	}
	return &entity.UserFeedback{
		Id:        f.Id,
		UserId:    f.UserId,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FeedbackMapper) UserFeedbackToModel(f *entity.UserFeedback) *model.UserFeedback {
	if f == nil {
		return nil
	}
	return &model.UserFeedback{
		Id:        f.Id,
		UserId:    f.UserId,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}

func (m *FeedbackMapper) UserFeedbacksToEntities(models []*model.UserFeedback) []*entity.UserFeedback {
	entities := make([]*entity.UserFeedback, len(models))
	for i, f := range models {
		entities[i] = m.UserFeedbackToEntity(f)
	}
	return entities
}
