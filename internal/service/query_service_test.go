package service

import (
	"errors"
	"testing"
)

func TestValidateReadOnly(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantErr error
	}{
		{
			name:  "plain select",
			query: "SELECT * FROM chat_feedback",
			want:  "SELECT * FROM chat_feedback",
		},
		{
			name:  "lowercase select",
			query: "select count(*) from chat_sessions",
			want:  "select count(*) from chat_sessions",
		},
		{
			name:  "with cte",
			query: "WITH recent AS (SELECT * FROM chat_messages) SELECT * FROM recent",
			want:  "WITH recent AS (SELECT * FROM chat_messages) SELECT * FROM recent",
		},
		{
			name:  "trailing semicolon tolerated",
			query: "SELECT 1;",
			want:  "SELECT 1",
		},
		{
			name:  "surrounding whitespace trimmed",
			query: "   SELECT 1  ;  ",
			want:  "SELECT 1",
		},
		{
			name:    "empty query",
			query:   "   ",
			wantErr: ErrQueryEmpty,
		},
		{
			name:    "bare semicolon",
			query:   ";",
			wantErr: ErrQueryEmpty,
		},
		{
			name:    "update rejected",
			query:   "UPDATE chat_feedback SET rating = 5",
			wantErr: ErrQueryNotReadOnly,
		},
		{
			name:    "delete rejected",
			query:   "DELETE FROM chat_feedback",
			wantErr: ErrQueryNotReadOnly,
		},
		{
			name:    "drop rejected",
			query:   "DROP TABLE chat_feedback",
			wantErr: ErrQueryNotReadOnly,
		},
		{
			name:    "stacked statements rejected",
			query:   "SELECT 1; DROP TABLE chat_feedback",
			wantErr: ErrQueryNotReadOnly,
		},
		{
			name:    "stacked statements with trailing semicolon rejected",
			query:   "SELECT 1; DELETE FROM chat_feedback;",
			wantErr: ErrQueryNotReadOnly,
		},
		{
			name:    "insert rejected",
			query:   "INSERT INTO user_feedback (comment) VALUES ('x')",
			wantErr: ErrQueryNotReadOnly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateReadOnly(tt.query)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("query = %q, want %q", got, tt.want)
			}
		})
	}
}
