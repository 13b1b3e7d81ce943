package events

import (
	"time"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventImportCompleted EventType = "import_completed"
	EventImportFailed    EventType = "import_failed"
	EventImportDeleted   EventType = "import_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ImportID  string      `json:"import_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ImportCompletedPayload payload.
type ImportCompletedPayload struct {
	Service     domain.ServiceKey `json:"service"`
	FileName    string            `json:"file_name"`
	ParsedRows  int               `json:"parsed_rows"`
	DroppedRows int               `json:"dropped_rows"`
}

// ImportFailedPayload payload.
type ImportFailedPayload struct {
	Service  domain.ServiceKey `json:"service"`
	FileName string            `json:"file_name"`
	Reason   string            `json:"reason"`
}
