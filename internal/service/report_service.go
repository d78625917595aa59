package service

import (
	"context"
	"time"

	"miva-analytics-be/internal/dto"
	"miva-analytics-be/internal/pkg/logger"
	"miva-analytics-be/internal/repository/cache"
	"miva-analytics-be/internal/repository/unitofwork"
	"miva-analytics-be/pkg/dashboard"
)

const (
	cacheKeyOverview = "stats:overview"
	cacheKeyFeedback = "stats:feedback"
	cacheKeySessions = "stats:sessions"
	cacheKeyOtp      = "stats:otp"
)

type IReportService interface {
	GetOverview(ctx context.Context) (*dto.OverviewStats, error)
	GetFeedbackStats(ctx context.Context) (*dto.FeedbackStats, error)
	GetSessionStats(ctx context.Context) (*dto.SessionDurationStats, error)
	GetOtpStats(ctx context.Context) (*dto.OtpStats, error)
	RefreshStats(ctx context.Context)
	GetLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error)
	GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error)
}

type reportService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator *dashboard.Aggregator
	statsCache *cache.StatsCache
	sysLogger  logger.ILogger
}

func NewReportService(uowFactory unitofwork.RepositoryFactory, aggregator *dashboard.Aggregator, statsCache *cache.StatsCache, sysLogger logger.ILogger) IReportService {
	return &reportService{
		uowFactory: uowFactory,
		aggregator: aggregator,
		statsCache: statsCache,
		sysLogger:  sysLogger,
	}
}

func (s *reportService) GetOverview(ctx context.Context) (*dto.OverviewStats, error) {
	var cached dto.OverviewStats
	if s.statsCache.Get(ctx, cacheKeyOverview, &cached) {
		return &cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := s.aggregator.GetOverview(ctx, uow)
	if err != nil {
		s.sysLogger.Error("report", "overview aggregation failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	s.statsCache.Set(ctx, cacheKeyOverview, stats)
	return stats, nil
}

func (s *reportService) GetFeedbackStats(ctx context.Context) (*dto.FeedbackStats, error) {
	var cached dto.FeedbackStats
	if s.statsCache.Get(ctx, cacheKeyFeedback, &cached) {
		return &cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := s.aggregator.GetFeedbackAnalytics(ctx, uow)
	if err != nil {
		s.sysLogger.Error("report", "feedback aggregation failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	s.statsCache.Set(ctx, cacheKeyFeedback, stats)
	return stats, nil
}

func (s *reportService) GetSessionStats(ctx context.Context) (*dto.SessionDurationStats, error) {
	var cached dto.SessionDurationStats
	if s.statsCache.Get(ctx, cacheKeySessions, &cached) {
		return &cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := s.aggregator.GetSessionAnalytics(ctx, uow)
	if err != nil {
		s.sysLogger.Error("report", "session aggregation failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	s.statsCache.Set(ctx, cacheKeySessions, stats)
	return stats, nil
}

func (s *reportService) GetOtpStats(ctx context.Context) (*dto.OtpStats, error) {
	var cached dto.OtpStats
	if s.statsCache.Get(ctx, cacheKeyOtp, &cached) {
		return &cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := s.aggregator.GetOtpAnalytics(ctx, uow)
	if err != nil {
		s.sysLogger.Error("report", "otp aggregation failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	s.statsCache.Set(ctx, cacheKeyOtp, stats)
	return stats, nil
}

// RefreshStats drops the cached aggregates so the next dashboard load
// recomputes from the database, bypassing the TTL.
func (s *reportService) RefreshStats(ctx context.Context) {
	s.statsCache.Invalidate(ctx, cacheKeyOverview, cacheKeyFeedback, cacheKeySessions, cacheKeyOtp)
}

func (s *reportService) GetLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	logs, err := s.sysLogger.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LogListResponse, 0, len(logs))
	for _, l := range logs {
		ts, _ := time.Parse(time.RFC3339, l.Timestamp)
		res = append(res, &dto.LogListResponse{
			Id:        l.Id,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: ts,
		})
	}
	return res, nil
}

func (s *reportService) GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error) {
	l, err := s.sysLogger.GetLogById(logId)
	if err != nil {
		return nil, err
	}

	ts, _ := time.Parse(time.RFC3339, l.Timestamp)
	return &dto.LogDetailResponse{
		LogListResponse: dto.LogListResponse{
			Id:        logId,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: ts,
		},
		Details: l.Details,
	}, nil
}
