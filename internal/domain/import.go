package domain

import "time"

// ImportStatus represents lifecycle states for an import batch.
type ImportStatus string

const (
	ImportStatusCompleted ImportStatus = "COMPLETED"
	ImportStatusRejected  ImportStatus = "REJECTED"
	ImportStatusFailed    ImportStatus = "FAILED"
)

// ImportBatch tracks one spreadsheet upload and its outcome.
type ImportBatch struct {
	ID          string
	FileName    string
	Service     ServiceKey
	Status      ImportStatus
	TotalRows   int
	ParsedRows  int
	DroppedRows int
	Warnings    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
