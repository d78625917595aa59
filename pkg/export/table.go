package export

import (
	"encoding/json"
	"strconv"
	"time"

	"miva-analytics-be/internal/entity"
)

// Table is the flat, display-ready form of a record set: a stable column
// order matching the source schema and one string row per record. CSV
// export serializes it verbatim.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatJSON(v map[string]interface{}) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func ChatFeedbackTable(rows []*entity.ChatFeedback) *Table {
	t := &Table{
		Columns: []string{"id", "session_id", "email", "rating", "feedback_type", "comment", "created_at"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, f := range rows {
		t.Rows = append(t.Rows, []string{
			f.Id.String(),
			f.SessionId.String(),
			f.Email,
			formatIntPtr(f.Rating),
			f.FeedbackType,
			f.Comment,
			formatTime(f.CreatedAt),
		})
	}
	return t
}

func ChatSessionTable(rows []*entity.ChatSession) *Table {
	t := &Table{
		Columns: []string{"session_id", "user_id", "start_time", "end_time"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, s := range rows {
		t.Rows = append(t.Rows, []string{
			s.Id.String(),
			s.UserId.String(),
			formatTime(s.StartTime),
			formatTimePtr(s.EndTime),
		})
	}
	return t
}

func ChatMessageTable(rows []*entity.ChatMessage) *Table {
	t := &Table{
		Columns: []string{"message_id", "session_id", "sender", "text", "created_at"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, m := range rows {
		t.Rows = append(t.Rows, []string{
			m.Id.String(),
			m.SessionId.String(),
			m.Sender,
			m.Text,
			formatTime(m.CreatedAt),
		})
	}
	return t
}

func OtpVerificationTable(rows []*entity.OtpVerification) *Table {
	t := &Table{
		Columns: []string{"otp_id", "user_id", "code_hash", "verified", "created_at"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, o := range rows {
		t.Rows = append(t.Rows, []string{
			o.Id.String(),
			o.UserId.String(),
			o.CodeHash,
			strconv.FormatBool(o.Verified),
			formatTime(o.CreatedAt),
		})
	}
	return t
}

func UserFeedbackTable(rows []*entity.UserFeedback) *Table {
	t := &Table{
		Columns: []string{"feedback_id", "user_id", "rating", "comment", "created_at"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, f := range rows {
		t.Rows = append(t.Rows, []string{
			f.Id.String(),
			f.UserId.String(),
			formatIntPtr(f.Rating),
			f.Comment,
			formatTime(f.CreatedAt),
		})
	}
	return t
}

func ConversationHistoryTable(rows []*entity.ConversationHistory) *Table {
	t := &Table{
		Columns: []string{"id", "user_id", "question", "answer", "sources", "created_at"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, c := range rows {
		t.Rows = append(t.Rows, []string{
			c.Id.String(),
			c.UserId.String(),
			c.Question,
			c.Answer,
			formatJSON(c.Sources),
			formatTime(c.CreatedAt),
		})
	}
	return t
}
