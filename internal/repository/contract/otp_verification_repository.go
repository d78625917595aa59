package contract

import (
	"context"

	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/repository/specification"
)

type OtpVerificationRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.OtpVerification, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OtpVerification, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
