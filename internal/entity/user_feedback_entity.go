package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserFeedback struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Rating    *int
	Comment   string
	CreatedAt time.Time
}
