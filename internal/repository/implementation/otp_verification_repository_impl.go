package implementation

import (
	"context"
	"errors"

	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/mapper"
	"miva-analytics-be/internal/model"
	"miva-analytics-be/internal/repository/contract"
	"miva-analytics-be/internal/repository/specification"

	"gorm.io/gorm"
)

type OtpVerificationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OtpMapper
}

func NewOtpVerificationRepository(db *gorm.DB) contract.OtpVerificationRepository {
	return &OtpVerificationRepositoryImpl{
		db:     db,
		mapper: mapper.NewOtpMapper(),
	}
}

func (r *OtpVerificationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OtpVerificationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.OtpVerification, error) {
	var m model.OtpVerification
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.OtpVerificationToEntity(&m), nil
}

func (r *OtpVerificationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OtpVerification, error) {
	var models []*model.OtpVerification
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.OtpVerificationsToEntities(models), nil
}

func (r *OtpVerificationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.OtpVerification{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
