package implementation

import (
	"context"
	"fmt"
	"time"

	"miva-analytics-be/internal/repository/contract"

	"gorm.io/gorm"
)

type RawQueryRepositoryImpl struct {
	db *gorm.DB
}

func NewRawQueryRepository(db *gorm.DB) contract.RawQueryRepository {
	return &RawQueryRepositoryImpl{db: db}
}

func (r *RawQueryRepositoryImpl) Select(ctx context.Context, query string) (*contract.RawResult, error) {
	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &contract.RawResult{
		Columns: columns,
		Rows:    [][]string{},
	}

	values := make([]interface{}, len(columns))
	pointers := make([]interface{}, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		record := make([]string, len(columns))
		for i, v := range values {
			record[i] = renderCell(v)
		}
		result.Rows = append(result.Rows, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func renderCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
