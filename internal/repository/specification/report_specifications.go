package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByRating struct {
	Rating int
}

func (s ByRating) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("rating = ?", s.Rating)
}

type ByFeedbackType struct {
	FeedbackType string
}

func (s ByFeedbackType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feedback_type = ?", s.FeedbackType)
}
