package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatFeedback struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Email        string    `gorm:"type:varchar(255)"`
	Rating       *int      `gorm:"type:smallint"`
	FeedbackType string    `gorm:"type:varchar(50)"`
	Comment      string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
}

func (ChatFeedback) TableName() string {
	return "chat_feedback"
}
