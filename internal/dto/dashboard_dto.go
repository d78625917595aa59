package dto

import "time"

// --- Overview ---

type TableCount struct {
	Table string `json:"table"`
	Count int64  `json:"count"`
}

type OverviewStats struct {
	TotalRecords int64        `json:"total_records"`
	Tables       []TableCount `json:"tables"`
	GeneratedAt  time.Time    `json:"generated_at"`
}

// --- Feedback analytics ---

type RatingBucket struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type FeedbackStats struct {
	TotalFeedback int64  `json:"total_feedback"`
	// AverageRating is null when no rated feedback exists; the UI shows "N/A".
	AverageRating *float64       `json:"average_rating"`
	Histogram     []RatingBucket `json:"histogram"`
	ThumbsUp      int64          `json:"thumbs_up"`
	ThumbsDown    int64          `json:"thumbs_down"`
	DailyTrend    []TrendPoint   `json:"daily_trend"`
}

// --- Session analytics ---

type SessionDurationStats struct {
	TotalSessions     int64    `json:"total_sessions"`
	CompletedSessions int64    `json:"completed_sessions"`
	MinSeconds        *float64 `json:"min_seconds"`
	AvgSeconds        *float64 `json:"avg_seconds"`
	MaxSeconds        *float64 `json:"max_seconds"`
}

// --- OTP analytics ---

type OtpStats struct {
	TotalAttempts int64    `json:"total_attempts"`
	VerifiedCount int64    `json:"verified_count"`
	VerifiedRate  *float64 `json:"verified_rate"`
}

// --- System logs ---

type LogListResponse struct {
	Id        string    `json:"id"`
	Level     string    `json:"level"`
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}
