package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"miva-analytics-be/internal/entity"
)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestComputeFeedbackStats(t *testing.T) {
	tests := []struct {
		name           string
		rows           []*entity.ChatFeedback
		wantTotal      int64
		wantAvg        *float64
		wantHistogram  [5]int64
		wantThumbsUp   int64
		wantThumbsDown int64
	}{
		{
			name:      "zero rows",
			rows:      nil,
			wantTotal: 0,
			wantAvg:   nil,
		},
		{
			name: "unrated rows only",
			rows: []*entity.ChatFeedback{
				{FeedbackType: entity.FeedbackTypeThumbsUp},
				{FeedbackType: entity.FeedbackTypeThumbsDown},
			},
			wantTotal:      2,
			wantAvg:        nil,
			wantThumbsUp:   1,
			wantThumbsDown: 1,
		},
		{
			name: "mixed ratings",
			rows: []*entity.ChatFeedback{
				{Rating: intPtr(5), FeedbackType: entity.FeedbackTypeThumbsUp},
				{Rating: intPtr(5)},
				{Rating: intPtr(2), FeedbackType: entity.FeedbackTypeThumbsDown},
				{FeedbackType: entity.FeedbackTypeThumbsUp},
			},
			wantTotal:      4,
			wantAvg:        floatPtr(4),
			wantHistogram:  [5]int64{0, 1, 0, 0, 2},
			wantThumbsUp:   2,
			wantThumbsDown: 1,
		},
		{
			name: "out of range rating skips histogram but counts toward average",
			rows: []*entity.ChatFeedback{
				{Rating: intPtr(7)},
				{Rating: intPtr(3)},
			},
			wantTotal:     2,
			wantAvg:       floatPtr(5),
			wantHistogram: [5]int64{0, 0, 1, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeFeedbackStats(tt.rows)

			if stats.TotalFeedback != tt.wantTotal {
				t.Errorf("TotalFeedback = %d, want %d", stats.TotalFeedback, tt.wantTotal)
			}
			if (stats.AverageRating == nil) != (tt.wantAvg == nil) {
				t.Fatalf("AverageRating = %v, want %v", stats.AverageRating, tt.wantAvg)
			}
			if tt.wantAvg != nil && *stats.AverageRating != *tt.wantAvg {
				t.Errorf("AverageRating = %f, want %f", *stats.AverageRating, *tt.wantAvg)
			}
			if len(stats.Histogram) != 5 {
				t.Fatalf("Histogram length = %d, want 5", len(stats.Histogram))
			}
			for i, bucket := range stats.Histogram {
				if bucket.Rating != i+1 {
					t.Errorf("Histogram[%d].Rating = %d, want %d", i, bucket.Rating, i+1)
				}
				if bucket.Count != tt.wantHistogram[i] {
					t.Errorf("Histogram[%d].Count = %d, want %d", i, bucket.Count, tt.wantHistogram[i])
				}
			}
			if stats.ThumbsUp != tt.wantThumbsUp {
				t.Errorf("ThumbsUp = %d, want %d", stats.ThumbsUp, tt.wantThumbsUp)
			}
			if stats.ThumbsDown != tt.wantThumbsDown {
				t.Errorf("ThumbsDown = %d, want %d", stats.ThumbsDown, tt.wantThumbsDown)
			}
		})
	}
}

func TestComputeFeedbackStatsDeterministic(t *testing.T) {
	rows := []*entity.ChatFeedback{
		{Id: uuid.New(), Rating: intPtr(4)},
		{Id: uuid.New(), Rating: intPtr(1)},
	}

	first := ComputeFeedbackStats(rows)
	second := ComputeFeedbackStats(rows)

	if *first.AverageRating != *second.AverageRating {
		t.Errorf("average changed between runs: %f vs %f", *first.AverageRating, *second.AverageRating)
	}
	for i := range first.Histogram {
		if first.Histogram[i] != second.Histogram[i] {
			t.Errorf("histogram bucket %d changed between runs", i)
		}
	}
}

func TestComputeSessionDurationStats(t *testing.T) {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		rows          []*entity.ChatSession
		wantTotal     int64
		wantCompleted int64
		wantMin       *float64
		wantAvg       *float64
		wantMax       *float64
	}{
		{
			name:      "zero rows",
			rows:      nil,
			wantTotal: 0,
		},
		{
			name: "all sessions still open",
			rows: []*entity.ChatSession{
				{StartTime: base},
				{StartTime: base.Add(time.Hour)},
			},
			wantTotal: 2,
		},
		{
			name: "open sessions excluded from duration stats",
			rows: []*entity.ChatSession{
				{StartTime: base, EndTime: timePtr(base.Add(60 * time.Second))},
				{StartTime: base, EndTime: timePtr(base.Add(180 * time.Second))},
				{StartTime: base},
			},
			wantTotal:     3,
			wantCompleted: 2,
			wantMin:       floatPtr(60),
			wantAvg:       floatPtr(120),
			wantMax:       floatPtr(180),
		},
		{
			name: "single completed session",
			rows: []*entity.ChatSession{
				{StartTime: base, EndTime: timePtr(base.Add(42 * time.Second))},
			},
			wantTotal:     1,
			wantCompleted: 1,
			wantMin:       floatPtr(42),
			wantAvg:       floatPtr(42),
			wantMax:       floatPtr(42),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeSessionDurationStats(tt.rows)

			if stats.TotalSessions != tt.wantTotal {
				t.Errorf("TotalSessions = %d, want %d", stats.TotalSessions, tt.wantTotal)
			}
			if stats.CompletedSessions != tt.wantCompleted {
				t.Errorf("CompletedSessions = %d, want %d", stats.CompletedSessions, tt.wantCompleted)
			}
			checkFloatPtr(t, "MinSeconds", stats.MinSeconds, tt.wantMin)
			checkFloatPtr(t, "AvgSeconds", stats.AvgSeconds, tt.wantAvg)
			checkFloatPtr(t, "MaxSeconds", stats.MaxSeconds, tt.wantMax)
		})
	}
}

func TestComputeOtpStats(t *testing.T) {
	tests := []struct {
		name         string
		rows         []*entity.OtpVerification
		wantTotal    int64
		wantVerified int64
		wantRate     *float64
	}{
		{
			name:      "zero rows leaves rate nil",
			rows:      nil,
			wantTotal: 0,
			wantRate:  nil,
		},
		{
			name: "none verified",
			rows: []*entity.OtpVerification{
				{Verified: false},
				{Verified: false},
			},
			wantTotal: 2,
			wantRate:  floatPtr(0),
		},
		{
			name: "partial verification",
			rows: []*entity.OtpVerification{
				{Verified: true},
				{Verified: false},
				{Verified: true},
				{Verified: true},
			},
			wantTotal:    4,
			wantVerified: 3,
			wantRate:     floatPtr(0.75),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeOtpStats(tt.rows)

			if stats.TotalAttempts != tt.wantTotal {
				t.Errorf("TotalAttempts = %d, want %d", stats.TotalAttempts, tt.wantTotal)
			}
			if stats.VerifiedCount != tt.wantVerified {
				t.Errorf("VerifiedCount = %d, want %d", stats.VerifiedCount, tt.wantVerified)
			}
			checkFloatPtr(t, "VerifiedRate", stats.VerifiedRate, tt.wantRate)
		})
	}
}

func floatPtr(v float64) *float64 { return &v }

func checkFloatPtr(t *testing.T, field string, got, want *float64) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Fatalf("%s = %v, want %v", field, got, want)
	}
	if want != nil && *got != *want {
		t.Errorf("%s = %f, want %f", field, *got, *want)
	}
}
