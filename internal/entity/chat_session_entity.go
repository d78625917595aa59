package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	StartTime time.Time
	EndTime   *time.Time // nil while the session is still open
}

// Duration returns the session length, or false when the session
// has no recorded end time.
func (s *ChatSession) Duration() (time.Duration, bool) {
	if s.EndTime == nil || s.EndTime.Before(s.StartTime) {
		return 0, false
	}
	return s.EndTime.Sub(s.StartTime), true
}
