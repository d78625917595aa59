package mapper

import (
	"encoding/json"

	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/model"

	"gorm.io/datatypes"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ConversationToEntity(c *model.ConversationHistory) *entity.ConversationHistory {
	if c == nil {
		return nil
	}

	var sources map[string]interface{}
	if len(c.Sources) > 0 {
		// Malformed JSON in the column degrades to nil sources, not an error.
		_ = json.Unmarshal(c.Sources, &sources)
	}

	return &entity.ConversationHistory{
		Id:        c.Id,
		UserId:    c.UserId,
		Question:  c.Question,
		Answer:    c.Answer,
		Sources:   sources,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ConversationMapper) ConversationToModel(c *entity.ConversationHistory) *model.ConversationHistory {
	if c == nil {
		return nil
	}

	var sources datatypes.JSON
	if c.Sources != nil {
		if data, err := json.Marshal(c.Sources); err == nil {
			sources = data
		}
	}

	return &model.ConversationHistory{
		Id:        c.Id,
		UserId:    c.UserId,
		Question:  c.Question,
		Answer:    c.Answer,
		Sources:   sources,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ConversationMapper) ConversationsToEntities(models []*model.ConversationHistory) []*entity.ConversationHistory {
	entities := make([]*entity.ConversationHistory, len(models))
	for i, c := range models {
		entities[i] = m.ConversationToEntity(c)
	}
	return entities
}
