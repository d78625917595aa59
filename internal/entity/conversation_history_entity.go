package entity

import (
	"time"

	"github.com/google/uuid"
)

type ConversationHistory struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Question  string
	Answer    string
	Sources   map[string]interface{} // retrieval sources attached by the chatbot
	CreatedAt time.Time
}
