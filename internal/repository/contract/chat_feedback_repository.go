package contract

import (
	"context"

	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/repository/specification"
)

// DailyCount is one point of a per-day volume series.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type ChatFeedbackRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatFeedback, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatFeedback, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// DailyCounts groups feedback volume by day over the trailing window.
	DailyCounts(ctx context.Context, days int) ([]DailyCount, error)
}
