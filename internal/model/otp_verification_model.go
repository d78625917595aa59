package model

import (
	"time"

	"github.com/google/uuid"
)

type OtpVerification struct {
	Id        uuid.UUID `gorm:"column:otp_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CodeHash  string    `gorm:"type:varchar(255);not null"`
	Verified  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (OtpVerification) TableName() string {
	return "otp_verifications"
}
