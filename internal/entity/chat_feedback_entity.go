package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	FeedbackTypeThumbsUp   = "thumbs_up"
	FeedbackTypeThumbsDown = "thumbs_down"
)

type ChatFeedback struct {
	Id           uuid.UUID
	SessionId    uuid.UUID
	Email        string
	Rating       *int // 1..5, nullable in the source table
	FeedbackType string
	Comment      string
	CreatedAt    time.Time
}
