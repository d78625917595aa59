package contract

import (
	"context"

	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/repository/specification"
)

type ChatSessionRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
