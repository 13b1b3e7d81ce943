package dto

import (
	"time"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

// ImportBatchResponse summarizes one upload.
type ImportBatchResponse struct {
	ID          string              `json:"id"`
	FileName    string              `json:"file_name"`
	Service     domain.ServiceKey   `json:"service"`
	Status      domain.ImportStatus `json:"status"`
	TotalRows   int                 `json:"total_rows"`
	ParsedRows  int                 `json:"parsed_rows"`
	DroppedRows int                 `json:"dropped_rows"`
	Warnings    []string            `json:"warnings"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ImportResultResponse is returned from an import attempt, including dry
// runs and rejected batches.
type ImportResultResponse struct {
	Batch    *ImportBatchResponse `json:"batch,omitempty"`
	Parsed   int                  `json:"parsed"`
	Errors   []string             `json:"errors"`
	Warnings []string             `json:"warnings"`
}

// RecordResponse is one ticket record as served to the dashboard.
type RecordResponse struct {
	ID               string            `json:"id"`
	ImportID         string            `json:"import_id"`
	ServiceKey       domain.ServiceKey `json:"service_key"`
	TicketID         string            `json:"ticket_id"`
	RequestTime      time.Time         `json:"request_time"`
	CloseTime        *time.Time        `json:"close_time,omitempty"`
	WeekNumber       int               `json:"week_number"`
	WeekLabel        string            `json:"week_label"`
	Initiator        string            `json:"initiator,omitempty"`
	Affiliate        string            `json:"affiliate,omitempty"`
	Cluster          string            `json:"cluster,omitempty"`
	Service          string            `json:"service,omitempty"`
	Category         string            `json:"category,omitempty"`
	SubCategory      string            `json:"sub_category,omitempty"`
	ThirdLvlCategory string            `json:"third_lvl_category,omitempty"`
	Title            string            `json:"title,omitempty"`
	Description      string            `json:"description,omitempty"`
	Name             string            `json:"name,omitempty"`
	SupportGroup     string            `json:"support_group,omitempty"`
	Process          string            `json:"process,omitempty"`
	Priority         domain.Priority   `json:"priority,omitempty"`
	Status           string            `json:"status,omitempty"`
	Resolution       string            `json:"resolution,omitempty"`
	RootCause        string            `json:"root_cause,omitempty"`
	IncidentOrigin   string            `json:"incident_origin,omitempty"`
	SLAIndicator     string            `json:"sla_indicator,omitempty"`
}
