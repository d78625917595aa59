package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"miva-analytics-be/internal/dto"
	"miva-analytics-be/internal/repository/specification"
)

func TestListTablesStable(t *testing.T) {
	svc := &tableService{}

	first := svc.ListTables()
	second := svc.ListTables()

	assert.Equal(t, first, second)
	assert.Equal(t, []string{
		"chat_feedback",
		"chat_sessions",
		"chat_messages",
		"otp_verifications",
		"user_feedback",
		"conversation_history",
	}, first)

	// callers must not be able to mutate the shared list
	first[0] = "mutated"
	assert.Equal(t, "chat_feedback", svc.ListTables()[0])
}

func TestRowCaps(t *testing.T) {
	tests := []struct {
		table string
		want  int
	}{
		{"chat_messages", 5000},
		{"conversation_history", 1000},
		{"chat_feedback", 1000},
		{"chat_sessions", 1000},
		{"otp_verifications", 1000},
		{"user_feedback", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			assert.Equal(t, tt.want, rowCap(tt.table))
		})
	}
}

func TestFilterSpecsPerTable(t *testing.T) {
	sessionID := "11111111-1111-1111-1111-111111111111"
	userID := "22222222-2222-2222-2222-222222222222"

	tests := []struct {
		name      string
		table     string
		req       dto.TableDataRequest
		wantSpecs int
	}{
		{
			name:      "no filters",
			table:     "chat_feedback",
			req:       dto.TableDataRequest{},
			wantSpecs: 0,
		},
		{
			name:      "feedback filters all apply",
			table:     "chat_feedback",
			req:       dto.TableDataRequest{SessionID: sessionID, Email: "x@example.edu", Rating: 5, FeedbackType: "thumbs_up"},
			wantSpecs: 4,
		},
		{
			name:      "email ignored on sessions table",
			table:     "chat_sessions",
			req:       dto.TableDataRequest{Email: "x@example.edu", UserID: userID},
			wantSpecs: 1,
		},
		{
			name:      "session filter ignored on otp table",
			table:     "otp_verifications",
			req:       dto.TableDataRequest{SessionID: sessionID},
			wantSpecs: 0,
		},
		{
			name:      "invalid uuid dropped",
			table:     "chat_messages",
			req:       dto.TableDataRequest{SessionID: "not-a-uuid"},
			wantSpecs: 0,
		},
		{
			name:      "since window applies everywhere",
			table:     "conversation_history",
			req:       dto.TableDataRequest{SinceDays: 7},
			wantSpecs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs := filterSpecs(tt.table, &tt.req)
			assert.Len(t, specs, tt.wantSpecs)
		})
	}
}

func TestFilterSpecsSinceUsesRecencyColumn(t *testing.T) {
	specs := filterSpecs("chat_sessions", &dto.TableDataRequest{SinceDays: 30})

	if assert.Len(t, specs, 1) {
		since, ok := specs[0].(specification.Since)
		assert.True(t, ok)
		assert.Equal(t, "start_time", since.Field)
	}
}
