package events

import "time"

// Event defines the contract for all audit events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "OPERATOR_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Audit event codes emitted by the dashboard.
const (
	TypeOperatorLogin  = "OPERATOR_LOGIN"
	TypeOperatorLogout = "OPERATOR_LOGOUT"
	TypeTableExport    = "TABLE_EXPORT"
	TypeCustomQuery    = "CUSTOM_QUERY"
	TypeReportEmailed  = "REPORT_EMAILED"
)
