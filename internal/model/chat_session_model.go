package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID  `gorm:"column:session_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartTime time.Time  `gorm:"not null;index"`
	EndTime   *time.Time `gorm:""`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
