package main

import (
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"miva-analytics-be/internal/config"
	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/mapper"
	"miva-analytics-be/internal/model"
	"miva-analytics-be/pkg/database"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo analytics data into %s...", cfg.Database.Name)

	chatMapper := mapper.NewChatMapper()
	feedbackMapper := mapper.NewFeedbackMapper()
	otpMapper := mapper.NewOtpMapper()
	convMapper := mapper.NewConversationMapper()

	now := time.Now()
	userA := uuid.New()
	userB := uuid.New()

	sessionEntities := []*entity.ChatSession{
		{Id: uuid.New(), UserId: userA, StartTime: now.Add(-3 * time.Hour), EndTime: timePtr(now.Add(-3*time.Hour + 12*time.Minute))},
		{Id: uuid.New(), UserId: userA, StartTime: now.Add(-26 * time.Hour), EndTime: timePtr(now.Add(-26*time.Hour + 4*time.Minute))},
		{Id: uuid.New(), UserId: userB, StartTime: now.Add(-40 * time.Minute)}, // still open
	}
	sessions := make([]*model.ChatSession, len(sessionEntities))
	for i, e := range sessionEntities {
		sessions[i] = chatMapper.ChatSessionToModel(e)
	}
	if err := db.Create(&sessions).Error; err != nil {
		log.Fatalf("Failed to seed chat_sessions: %v", err)
	}

	messageEntities := []*entity.ChatMessage{
		{Id: uuid.New(), SessionId: sessionEntities[0].Id, Sender: "user", Text: "What are the admission requirements?", CreatedAt: now.Add(-3 * time.Hour)},
		{Id: uuid.New(), SessionId: sessionEntities[0].Id, Sender: "bot", Text: "Admission requires a completed application and transcripts.", CreatedAt: now.Add(-3*time.Hour + time.Minute)},
		{Id: uuid.New(), SessionId: sessionEntities[1].Id, Sender: "user", Text: "How do I reset my portal password?", CreatedAt: now.Add(-26 * time.Hour)},
		{Id: uuid.New(), SessionId: sessionEntities[2].Id, Sender: "user", Text: "When is the next enrollment window?", CreatedAt: now.Add(-40 * time.Minute)},
	}
	messages := make([]*model.ChatMessage, len(messageEntities))
	for i, e := range messageEntities {
		messages[i] = chatMapper.ChatMessageToModel(e)
	}
	if err := db.Create(&messages).Error; err != nil {
		log.Fatalf("Failed to seed chat_messages: %v", err)
	}

	feedbackEntities := []*entity.ChatFeedback{
		{Id: uuid.New(), SessionId: sessionEntities[0].Id, Email: "student@example.edu", Rating: intPtr(5), FeedbackType: entity.FeedbackTypeThumbsUp, Comment: "Very helpful", CreatedAt: now.Add(-2 * time.Hour)},
		{Id: uuid.New(), SessionId: sessionEntities[1].Id, Email: "alum@example.edu", Rating: intPtr(2), FeedbackType: entity.FeedbackTypeThumbsDown, Comment: "Answer was off topic", CreatedAt: now.Add(-25 * time.Hour)},
		{Id: uuid.New(), SessionId: sessionEntities[2].Id, FeedbackType: entity.FeedbackTypeThumbsUp, CreatedAt: now.Add(-30 * time.Minute)},
	}
	feedback := make([]*model.ChatFeedback, len(feedbackEntities))
	for i, e := range feedbackEntities {
		feedback[i] = chatMapper.ChatFeedbackToModel(e)
	}
	if err := db.Create(&feedback).Error; err != nil {
		log.Fatalf("Failed to seed chat_feedback: %v", err)
	}

	otpEntities := []*entity.OtpVerification{
		{Id: uuid.New(), UserId: userA, CodeHash: "2c6ee24b09816a6f14f95d1698b24ead", Verified: true, CreatedAt: now.Add(-3 * time.Hour)},
		{Id: uuid.New(), UserId: userB, CodeHash: "9d5ed678fe57bcca610140957afab571", Verified: false, CreatedAt: now.Add(-45 * time.Minute)},
	}
	otps := make([]*model.OtpVerification, len(otpEntities))
	for i, e := range otpEntities {
		otps[i] = otpMapper.OtpVerificationToModel(e)
	}
	if err := db.Create(&otps).Error; err != nil {
		log.Fatalf("Failed to seed otp_verifications: %v", err)
	}

	userFeedbackEntities := []*entity.UserFeedback{
		{Id: uuid.New(), UserId: userA, Rating: intPtr(4), Comment: "Portal is easy to use", CreatedAt: now.Add(-2 * time.Hour)},
		{Id: uuid.New(), UserId: userB, Comment: "Would like dark mode", CreatedAt: now.Add(-20 * time.Minute)},
	}
	userFeedback := make([]*model.UserFeedback, len(userFeedbackEntities))
	for i, e := range userFeedbackEntities {
		userFeedback[i] = feedbackMapper.UserFeedbackToModel(e)
	}
	if err := db.Create(&userFeedback).Error; err != nil {
		log.Fatalf("Failed to seed user_feedback: %v", err)
	}

	historyEntities := []*entity.ConversationHistory{
		{
			Id:        uuid.New(),
			UserId:    userA,
			Question:  "What are the admission requirements?",
			Answer:    "Admission requires a completed application and transcripts.",
			Sources:   map[string]interface{}{"documents": []string{"admissions-handbook.pdf"}},
			CreatedAt: now.Add(-3 * time.Hour),
		},
		{
			Id:        uuid.New(),
			UserId:    userB,
			Question:  "When is the next enrollment window?",
			Answer:    "Enrollment opens on the first Monday of next month.",
			Sources:   map[string]interface{}{"documents": []string{"academic-calendar.pdf"}},
			CreatedAt: now.Add(-40 * time.Minute),
		},
	}
	history := make([]*model.ConversationHistory, len(historyEntities))
	for i, e := range historyEntities {
		history[i] = convMapper.ConversationToModel(e)
	}
	if err := db.Create(&history).Error; err != nil {
		log.Fatalf("Failed to seed conversation_history: %v", err)
	}

	color.Green("✅ Seed complete")
	fmt.Printf("  chat_sessions: %d\n  chat_messages: %d\n  chat_feedback: %d\n  otp_verifications: %d\n  user_feedback: %d\n  conversation_history: %d\n",
		len(sessions), len(messages), len(feedback), len(otps), len(userFeedback), len(history))
}
