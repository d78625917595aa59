package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Sender    string // "user" or "bot"
	Text      string
	CreatedAt time.Time
}
