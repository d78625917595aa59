package entity

import (
	"time"

	"github.com/google/uuid"
)

type OtpVerification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	CodeHash  string
	Verified  bool
	CreatedAt time.Time
}
