package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"miva-analytics-be/internal/dto"
	"miva-analytics-be/internal/entity"
	"miva-analytics-be/internal/pkg/mailer"
	"miva-analytics-be/internal/repository/specification"
	"miva-analytics-be/internal/repository/unitofwork"
	"miva-analytics-be/pkg/events"
	"miva-analytics-be/pkg/export"
)

var (
	ErrUnknownTable = errors.New("unknown table")
	ErrRowNotFound  = errors.New("row not found")
)

const defaultRowCap = 1000

// rowCaps bounds full-table reads for the high-volume tables, matching
// what the dashboard is willing to render at once.
var rowCaps = map[string]int{
	"chat_messages":        5000,
	"conversation_history": 1000,
}

// tableOrder is the recency column per table.
var tableOrder = map[string]string{
	"chat_feedback":        "created_at",
	"chat_sessions":        "start_time",
	"chat_messages":        "created_at",
	"otp_verifications":    "created_at",
	"user_feedback":        "created_at",
	"conversation_history": "created_at",
}

var tableNames = []string{
	"chat_feedback",
	"chat_sessions",
	"chat_messages",
	"otp_verifications",
	"user_feedback",
	"conversation_history",
}

type ITableService interface {
	ListTables() []string
	GetTableData(ctx context.Context, table string, req *dto.TableDataRequest) (*dto.TableDataResponse, error)
	GetTableRow(ctx context.Context, table string, id uuid.UUID) (*export.Table, error)
	ExportTable(ctx context.Context, table string) (*export.Table, error)
	EmailReport(ctx context.Context, req *dto.EmailReportRequest) (*dto.EmailReportResponse, error)
}

type tableService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	publisher    IPublisherService
	validate     *validator.Validate
}

func NewTableService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, publisher IPublisherService) ITableService {
	return &tableService{
		uowFactory:   uowFactory,
		emailService: emailService,
		publisher:    publisher,
		validate:     validator.New(),
	}
}

func (s *tableService) ListTables() []string {
	names := make([]string, len(tableNames))
	copy(names, tableNames)
	return names
}

func (s *tableService) GetTableData(ctx context.Context, table string, req *dto.TableDataRequest) (*dto.TableDataResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	cap := rowCap(table)
	if limit < 1 || limit > cap {
		limit = cap
	}
	offset := (page - 1) * limit

	filters := filterSpecs(table, req)
	readSpecs := append(filters,
		specification.OrderBy{Field: tableOrder[table], Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	t, total, err := s.fetch(ctx, uow, table, filters, readSpecs)
	if err != nil {
		return nil, err
	}

	return &dto.TableDataResponse{
		Table:   table,
		Columns: t.Columns,
		Rows:    t.Rows,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// GetTableRow looks one record up by its primary key. The key column
// differs per table, matching the source schema.
func (s *tableService) GetTableRow(ctx context.Context, table string, id uuid.UUID) (*export.Table, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	switch table {
	case "chat_feedback":
		row, err := uow.ChatFeedbackRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, ErrRowNotFound
		}
		return export.ChatFeedbackTable([]*entity.ChatFeedback{row}), nil
	case "chat_sessions":
		row, err := uow.ChatSessionRepository().FindOne(ctx, specification.Filter("session_id", id))
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, ErrRowNotFound
		}
		return export.ChatSessionTable([]*entity.ChatSession{row}), nil
	case "chat_messages":
		row, err := uow.ChatMessageRepository().FindOne(ctx, specification.Filter("message_id", id))
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, ErrRowNotFound
		}
		return export.ChatMessageTable([]*entity.ChatMessage{row}), nil
	case "otp_verifications":
		row, err := uow.OtpVerificationRepository().FindOne(ctx, specification.Filter("otp_id", id))
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, ErrRowNotFound
		}
		return export.OtpVerificationTable([]*entity.OtpVerification{row}), nil
	case "user_feedback":
		row, err := uow.UserFeedbackRepository().FindOne(ctx, specification.Filter("feedback_id", id))
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, ErrRowNotFound
		}
		return export.UserFeedbackTable([]*entity.UserFeedback{row}), nil
	case "conversation_history":
		row, err := uow.ConversationHistoryRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, ErrRowNotFound
		}
		return export.ConversationHistoryTable([]*entity.ConversationHistory{row}), nil
	default:
		return nil, ErrUnknownTable
	}
}

// ExportTable produces the full (capped) table in recency order.
func (s *tableService) ExportTable(ctx context.Context, table string) (*export.Table, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	t, _, err := s.fetch(ctx, uow, table, nil, []specification.Specification{
		specification.OrderBy{Field: tableOrder[table], Desc: true},
		specification.Pagination{Limit: rowCap(table), Offset: 0},
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := events.BaseEvent{
			Type: events.TypeTableExport,
			Data: map[string]interface{}{
				"table": table,
				"rows":  len(t.Rows),
			},
			OccurredAt: time.Now(),
		}
		if err := s.publisher.PublishAudit(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeTableExport, err)
		}
	}

	return t, nil
}

func (s *tableService) EmailReport(ctx context.Context, req *dto.EmailReportRequest) (*dto.EmailReportResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	t, err := s.ExportTable(ctx, req.Table)
	if err != nil {
		return nil, err
	}

	csvData, err := t.CSV()
	if err != nil {
		return nil, err
	}

	filename := export.Filename(req.Table, time.Now())
	if err := s.emailService.SendCSVReport(req.To, req.Table, filename, csvData); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := events.BaseEvent{
			Type: events.TypeReportEmailed,
			Data: map[string]interface{}{
				"table": req.Table,
				"to":    req.To,
			},
			OccurredAt: time.Now(),
		}
		if err := s.publisher.PublishAudit(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeReportEmailed, err)
		}
	}

	return &dto.EmailReportResponse{
		To:       req.To,
		Table:    req.Table,
		Filename: filename,
	}, nil
}

// filterSpecs maps request filters onto the columns the table actually
// has; everything else is silently dropped so a stray filter never turns
// into a bad WHERE clause.
func filterSpecs(table string, req *dto.TableDataRequest) []specification.Specification {
	var specs []specification.Specification

	sessionID, _ := uuid.Parse(req.SessionID)
	userID, _ := uuid.Parse(req.UserID)

	switch table {
	case "chat_feedback":
		if sessionID != uuid.Nil {
			specs = append(specs, specification.BySessionID{SessionID: sessionID})
		}
		if req.Email != "" {
			specs = append(specs, specification.ByEmail{Email: req.Email})
		}
		if req.Rating > 0 {
			specs = append(specs, specification.ByRating{Rating: req.Rating})
		}
		if req.FeedbackType != "" {
			specs = append(specs, specification.ByFeedbackType{FeedbackType: req.FeedbackType})
		}
	case "chat_messages":
		if sessionID != uuid.Nil {
			specs = append(specs, specification.BySessionID{SessionID: sessionID})
		}
	case "user_feedback":
		if userID != uuid.Nil {
			specs = append(specs, specification.ByUserID{UserID: userID})
		}
		if req.Rating > 0 {
			specs = append(specs, specification.ByRating{Rating: req.Rating})
		}
	case "chat_sessions", "otp_verifications", "conversation_history":
		if userID != uuid.Nil {
			specs = append(specs, specification.ByUserID{UserID: userID})
		}
	}

	if req.SinceDays > 0 {
		specs = append(specs, specification.Since{
			Field: tableOrder[table],
			Time:  time.Now().AddDate(0, 0, -req.SinceDays),
		})
	}
	return specs
}

// fetch reads one table through its repository and flattens the rows.
// The total reflects the filters but not the pagination window.
func (s *tableService) fetch(ctx context.Context, uow unitofwork.UnitOfWork, table string, filters, readSpecs []specification.Specification) (*export.Table, int64, error) {
	switch table {
	case "chat_feedback":
		rows, err := uow.ChatFeedbackRepository().FindAll(ctx, readSpecs...)
		if err != nil {
			return nil, 0, err
		}
		total, err := uow.ChatFeedbackRepository().Count(ctx, filters...)
		if err != nil {
			return nil, 0, err
		}
		return export.ChatFeedbackTable(rows), total, nil
	case "chat_sessions":
		rows, err := uow.ChatSessionRepository().FindAll(ctx, readSpecs...)
		if err != nil {
			return nil, 0, err
		}
		total, err := uow.ChatSessionRepository().Count(ctx, filters...)
		if err != nil {
			return nil, 0, err
		}
		return export.ChatSessionTable(rows), total, nil
	case "chat_messages":
		rows, err := uow.ChatMessageRepository().FindAll(ctx, readSpecs...)
		if err != nil {
			return nil, 0, err
		}
		total, err := uow.ChatMessageRepository().Count(ctx, filters...)
		if err != nil {
			return nil, 0, err
		}
		return export.ChatMessageTable(rows), total, nil
	case "otp_verifications":
		rows, err := uow.OtpVerificationRepository().FindAll(ctx, readSpecs...)
		if err != nil {
			return nil, 0, err
		}
		total, err := uow.OtpVerificationRepository().Count(ctx, filters...)
		if err != nil {
			return nil, 0, err
		}
		return export.OtpVerificationTable(rows), total, nil
	case "user_feedback":
		rows, err := uow.UserFeedbackRepository().FindAll(ctx, readSpecs...)
		if err != nil {
			return nil, 0, err
		}
		total, err := uow.UserFeedbackRepository().Count(ctx, filters...)
		if err != nil {
			return nil, 0, err
		}
		return export.UserFeedbackTable(rows), total, nil
	case "conversation_history":
		rows, err := uow.ConversationHistoryRepository().FindAll(ctx, readSpecs...)
		if err != nil {
			return nil, 0, err
		}
		total, err := uow.ConversationHistoryRepository().Count(ctx, filters...)
		if err != nil {
			return nil, 0, err
		}
		return export.ConversationHistoryTable(rows), total, nil
	default:
		return nil, 0, ErrUnknownTable
	}
}

func rowCap(table string) int {
	if cap, ok := rowCaps[table]; ok {
		return cap
	}
	return defaultRowCap
}
