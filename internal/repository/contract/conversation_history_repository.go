package contract

import (
	"context"

	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/repository/specification"
)

type ConversationHistoryRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConversationHistory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationHistory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
