package dashboard

import (
	"context"
	"time"

	"miva-analytics-be/internal/dto"
	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/repository/unitofwork"
)

const trendWindowDays = 30

// Aggregator turns raw report rows into display-ready statistics.
// Every Compute* helper is deterministic and defined for zero rows.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// GetOverview counts every report table.
func (a *Aggregator) GetOverview(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.OverviewStats, error) {
	counts := []struct {
		table string
		count func() (int64, error)
	}{
		{"chat_feedback", func() (int64, error) { return uow.ChatFeedbackRepository().Count(ctx) }},
		{"chat_sessions", func() (int64, error) { return uow.ChatSessionRepository().Count(ctx) }},
		{"chat_messages", func() (int64, error) { return uow.ChatMessageRepository().Count(ctx) }},
		{"otp_verifications", func() (int64, error) { return uow.OtpVerificationRepository().Count(ctx) }},
		{"user_feedback", func() (int64, error) { return uow.UserFeedbackRepository().Count(ctx) }},
		{"conversation_history", func() (int64, error) { return uow.ConversationHistoryRepository().Count(ctx) }},
	}

	stats := &dto.OverviewStats{
		Tables:      make([]dto.TableCount, 0, len(counts)),
		GeneratedAt: time.Now(),
	}
	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			return nil, err
		}
		stats.Tables = append(stats.Tables, dto.TableCount{Table: c.table, Count: n})
		stats.TotalRecords += n
	}
	return stats, nil
}

// GetFeedbackAnalytics loads chat feedback and computes rating aggregates
// plus the trailing daily trend.
func (a *Aggregator) GetFeedbackAnalytics(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.FeedbackStats, error) {
	rows, err := uow.ChatFeedbackRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputeFeedbackStats(rows)

	daily, err := uow.ChatFeedbackRepository().DailyCounts(ctx, trendWindowDays)
	if err != nil {
		return nil, err
	}
	stats.DailyTrend = make([]dto.TrendPoint, 0, len(daily))
	for _, d := range daily {
		stats.DailyTrend = append(stats.DailyTrend, dto.TrendPoint{Date: d.Date, Count: d.Count})
	}

	return stats, nil
}

func (a *Aggregator) GetSessionAnalytics(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.SessionDurationStats, error) {
	rows, err := uow.ChatSessionRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeSessionDurationStats(rows), nil
}

func (a *Aggregator) GetOtpAnalytics(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.OtpStats, error) {
	rows, err := uow.OtpVerificationRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeOtpStats(rows), nil
}

// ComputeFeedbackStats aggregates chat feedback rows. With zero rows the
// average is nil and every histogram bucket is zero.
func ComputeFeedbackStats(rows []*entity.ChatFeedback) *dto.FeedbackStats {
	stats := &dto.FeedbackStats{
		TotalFeedback: int64(len(rows)),
		Histogram:     emptyHistogram(),
		DailyTrend:    []dto.TrendPoint{},
	}

	var ratingSum int64
	var rated int64
	for _, f := range rows {
		switch f.FeedbackType {
		case entity.FeedbackTypeThumbsUp:
			stats.ThumbsUp++
		case entity.FeedbackTypeThumbsDown:
			stats.ThumbsDown++
		}
		if f.Rating == nil {
			continue
		}
		r := *f.Rating
		if r >= 1 && r <= 5 {
			stats.Histogram[r-1].Count++
		}
		ratingSum += int64(r)
		rated++
	}

	if rated > 0 {
		avg := float64(ratingSum) / float64(rated)
		stats.AverageRating = &avg
	}
	return stats
}

// ComputeSessionDurationStats summarizes session lengths over the sessions
// that have both a start and an end time.
func ComputeSessionDurationStats(rows []*entity.ChatSession) *dto.SessionDurationStats {
	stats := &dto.SessionDurationStats{
		TotalSessions: int64(len(rows)),
	}

	var sum, min, max float64
	for _, s := range rows {
		d, ok := s.Duration()
		if !ok {
			continue
		}
		secs := d.Seconds()
		if stats.CompletedSessions == 0 {
			min, max = secs, secs
		} else {
			if secs < min {
				min = secs
			}
			if secs > max {
				max = secs
			}
		}
		sum += secs
		stats.CompletedSessions++
	}

	if stats.CompletedSessions > 0 {
		avg := sum / float64(stats.CompletedSessions)
		stats.MinSeconds = &min
		stats.AvgSeconds = &avg
		stats.MaxSeconds = &max
	}
	return stats
}

// ComputeOtpStats reports how many verification attempts succeeded.
func ComputeOtpStats(rows []*entity.OtpVerification) *dto.OtpStats {
	stats := &dto.OtpStats{
		TotalAttempts: int64(len(rows)),
	}
	for _, o := range rows {
		if o.Verified {
			stats.VerifiedCount++
		}
	}
	if stats.TotalAttempts > 0 {
		rate := float64(stats.VerifiedCount) / float64(stats.TotalAttempts)
		stats.VerifiedRate = &rate
	}
	return stats
}

func emptyHistogram() []dto.RatingBucket {
	buckets := make([]dto.RatingBucket, 5)
	for i := range buckets {
		buckets[i] = dto.RatingBucket{Rating: i + 1}
	}
	return buckets
}
