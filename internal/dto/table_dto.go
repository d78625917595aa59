package dto

type TableDataRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`

	// Optional per-table filters; fields that do not exist on the
	// requested table are ignored.
	SessionID    string `query:"session_id"`
	UserID       string `query:"user_id"`
	Email        string `query:"email"`
	Rating       int    `query:"rating"`
	FeedbackType string `query:"feedback_type"`
	SinceDays    int    `query:"since_days"`
}

type TableDataResponse struct {
	Table   string     `json:"table"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   int64      `json:"total"`
	Page    int        `json:"page"`
	Limit   int        `json:"limit"`
}
