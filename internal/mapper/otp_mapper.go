package mapper

import (
	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/model"
)

type OtpMapper struct{}

func NewOtpMapper() *OtpMapper {
	return &OtpMapper{}
}

func (m *OtpMapper) OtpVerificationToEntity(o *model.OtpVerification) *entity.OtpVerification {
	if o == nil {
		return nil
	}
	return &entity.OtpVerification{
		Id:        o.Id,
		UserId:    o.UserId,
		CodeHash:  o.CodeHash,
		Verified:  o.Verified,
		CreatedAt: o.CreatedAt,
	}
}

func (m *OtpMapper) OtpVerificationToModel(o *entity.OtpVerification) *model.OtpVerification {
	if o == nil {
		return nil
	}
	return &model.OtpVerification{
		Id:        o.Id,
		UserId:    o.UserId,
		CodeHash:  o.CodeHash,
		Verified:  o.Verified,
		CreatedAt: o.CreatedAt,
	}
}

func (m *OtpMapper) OtpVerificationsToEntities(models []*model.OtpVerification) []*entity.OtpVerification {
	entities := make([]*entity.OtpVerification, len(models))
	for i, o := range models {
		entities[i] = m.OtpVerificationToEntity(o)
	}
	return entities
}
