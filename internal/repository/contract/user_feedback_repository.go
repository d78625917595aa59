package contract

import (
	"context"

	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/repository/specification"
)

type UserFeedbackRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserFeedback, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserFeedback, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
