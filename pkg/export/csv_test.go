package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"

	"miva-analytics-be/internal/entity"
)

func TestCSVEmptyTableHeaderOnly(t *testing.T) {
	table := &Table{Columns: []string{"id", "name"}}

	data, err := table.CSV()
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1 (header only)", len(records))
	}
	if records[0][0] != "id" || records[0][1] != "name" {
		t.Errorf("header = %v, want [id name]", records[0])
	}
}

func TestCSVQuotesCommasAndNewlines(t *testing.T) {
	table := &Table{
		Columns: []string{"comment"},
		Rows: [][]string{
			{`answer was wrong, "twice"`},
			{"line one\nline two"},
		},
	}

	data, err := table.CSV()
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("record count = %d, want 3", len(records))
	}
	if records[1][0] != `answer was wrong, "twice"` {
		t.Errorf("comma/quote cell = %q", records[1][0])
	}
	if records[2][0] != "line one\nline two" {
		t.Errorf("newline cell = %q", records[2][0])
	}
}

func TestChatFeedbackTableNullRendering(t *testing.T) {
	created := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	rows := []*entity.ChatFeedback{
		{
			Id:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			SessionId: uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Rating:    nil,
			CreatedAt: created,
		},
	}

	table := ChatFeedbackTable(rows)

	if len(table.Rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(table.Rows))
	}
	row := table.Rows[0]
	if got := row[3]; got != "" {
		t.Errorf("nil rating rendered as %q, want empty string", got)
	}
	if got := row[6]; got != "2026-08-15T10:30:00Z" {
		t.Errorf("created_at = %q", got)
	}
}

func TestChatSessionTableOpenSession(t *testing.T) {
	start := time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC)
	rows := []*entity.ChatSession{
		{
			Id:        uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			UserId:    uuid.MustParse("44444444-4444-4444-4444-444444444444"),
			StartTime: start,
			EndTime:   nil,
		},
	}

	table := ChatSessionTable(rows)

	if got := table.Rows[0][3]; got != "" {
		t.Errorf("open session end_time = %q, want empty string", got)
	}
}

func TestConversationHistoryTableSources(t *testing.T) {
	created := time.Date(2026, 8, 15, 11, 0, 0, 0, time.UTC)
	rows := []*entity.ConversationHistory{
		{
			Id:        uuid.MustParse("55555555-5555-5555-5555-555555555555"),
			UserId:    uuid.MustParse("66666666-6666-6666-6666-666666666666"),
			Question:  "When is enrollment?",
			Answer:    "Enrollment opens in September.",
			Sources:   map[string]interface{}{"documents": []string{"academic-calendar.pdf"}},
			CreatedAt: created,
		},
		{
			Id:        uuid.MustParse("77777777-7777-7777-7777-777777777777"),
			UserId:    uuid.MustParse("66666666-6666-6666-6666-666666666666"),
			Question:  "Hello?",
			Answer:    "Hi there.",
			Sources:   nil,
			CreatedAt: created,
		},
	}

	table := ConversationHistoryTable(rows)

	if got, want := len(table.Columns), 6; got != want {
		t.Fatalf("column count = %d, want %d", got, want)
	}
	if got := table.Columns[4]; got != "sources" {
		t.Errorf("columns[4] = %q, want %q", got, "sources")
	}
	if got := table.Rows[0][4]; got != `{"documents":["academic-calendar.pdf"]}` {
		t.Errorf("sources cell = %q", got)
	}
	if got := table.Rows[1][4]; got != "" {
		t.Errorf("nil sources rendered as %q, want empty string", got)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 15, 23, 59, 0, 0, time.UTC)

	got := Filename("chat_feedback", now)
	want := "chat_feedback_20260815.csv"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}
