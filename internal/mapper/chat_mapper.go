package mapper

import (
	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func (m *ChatMapper) ChatSessionsToEntities(models []*model.ChatSession) []*entity.ChatSession {
	entities := make([]*entity.ChatSession, len(models))
	for i, s := range models {
		entities[i] = m.ChatSessionToEntity(s)
	}
	return entities
}

// Message mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Sender:    msg.Sender,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Sender:    msg.Sender,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessagesToEntities(models []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(models))
	for i, msg := range models {
		entities[i] = m.ChatMessageToEntity(msg)
	}
	return entities
}

// Feedback mappers

func (m *ChatMapper) ChatFeedbackToEntity(f *model.ChatFeedback) *entity.ChatFeedback {
	if f == nil {
		return nil
	}
	return &entity.ChatFeedback{
		Id:           f.Id,
		SessionId:    f.SessionId,
		Email:        f.Email,
		Rating:       f.Rating,
		FeedbackType: f.FeedbackType,
		Comment:      f.Comment,
		CreatedAt:    f.CreatedAt,
	}
}

func (m *ChatMapper) ChatFeedbackToModel(f *entity.ChatFeedback) *model.ChatFeedback {
	if f == nil {
		return nil
	}
	return &model.ChatFeedback{
		Id:           f.Id,
		SessionId:    f.SessionId,
		Email:        f.Email,
		Rating:       f.Rating,
		FeedbackType: f.FeedbackType,
		Comment:      f.Comment,
		CreatedAt:    f.CreatedAt,
	}
}

func (m *ChatMapper) ChatFeedbacksToEntities(models []*model.ChatFeedback) []*entity.ChatFeedback {
	entities := make([]*entity.ChatFeedback, len(models))
	for i, f := range models {
		entities[i] = m.ChatFeedbackToEntity(f)
	}
	return entities
}
