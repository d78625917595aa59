package contract

import (
	"context"

	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/repository/specification"
)

type ChatMessageRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
