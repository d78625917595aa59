package model

import (
	"time"

	"github.com/google/uuid"
)

type UserFeedback struct {
	Id        uuid.UUID `gorm:"column:feedback_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    *int      `gorm:"type:smallint"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (UserFeedback) TableName() string {
	return "user_feedback"
}
