package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"

	"miva-analytics-be/internal/dto"
	"miva-analytics-be/internal/repository/unitofwork"
	"miva-analytics-be/pkg/events"
)

var (
	ErrQueryNotReadOnly = errors.New("only SELECT queries are allowed")
	ErrQueryEmpty       = errors.New("query is empty")
)

// QueryError wraps a database rejection with a message safe to show the
// operator. The raw driver error stays server-side.
type QueryError struct {
	Code    string
	Message string
}

func (e *QueryError) Error() string {
	return e.Message
}

type IQueryService interface {
	Execute(ctx context.Context, req *dto.CustomQueryRequest) (*dto.CustomQueryResponse, error)
}

type queryService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	validate   *validator.Validate
}

func NewQueryService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) IQueryService {
	return &queryService{
		uowFactory: uowFactory,
		publisher:  publisher,
		validate:   validator.New(),
	}
}

func (s *queryService) Execute(ctx context.Context, req *dto.CustomQueryRequest) (*dto.CustomQueryResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	query, err := validateReadOnly(req.Query)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.BeginReadOnly(ctx); err != nil {
		return nil, err
	}
	// Read queries never commit; the transaction exists only for the
	// READ ONLY guarantee.
	defer uow.Rollback()

	result, err := uow.RawQueryRepository().Select(ctx, query)
	if err != nil {
		return nil, classifyQueryError(err)
	}

	if s.publisher != nil {
		event := events.BaseEvent{
			Type: events.TypeCustomQuery,
			Data: map[string]interface{}{
				"query": query,
				"rows":  len(result.Rows),
			},
			OccurredAt: time.Now(),
		}
		if err := s.publisher.PublishAudit(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeCustomQuery, err)
		}
	}

	return &dto.CustomQueryResponse{
		Columns:  result.Columns,
		Rows:     result.Rows,
		RowCount: len(result.Rows),
	}, nil
}

// validateReadOnly admits a single SELECT (or WITH) statement and nothing
// else. A trailing semicolon is tolerated; embedded ones are not, so
// statement stacking like "SELECT 1; DROP TABLE x" is rejected outright.
func validateReadOnly(raw string) (string, error) {
	query := strings.TrimSpace(raw)
	query = strings.TrimSuffix(query, ";")
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrQueryEmpty
	}
	if strings.Contains(query, ";") {
		return "", ErrQueryNotReadOnly
	}

	fields := strings.Fields(query)
	switch strings.ToUpper(fields[0]) {
	case "SELECT", "WITH":
		return query, nil
	default:
		return "", ErrQueryNotReadOnly
	}
}

// classifyQueryError turns Postgres failures into operator-facing messages.
func classifyQueryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42601":
			return &QueryError{Code: pgErr.Code, Message: "syntax error in query"}
		case "42P01":
			return &QueryError{Code: pgErr.Code, Message: "relation does not exist"}
		case "42703":
			return &QueryError{Code: pgErr.Code, Message: "column does not exist"}
		case "25006":
			return &QueryError{Code: pgErr.Code, Message: "query attempted to modify data"}
		default:
			return &QueryError{Code: pgErr.Code, Message: pgErr.Message}
		}
	}
	return err
}
