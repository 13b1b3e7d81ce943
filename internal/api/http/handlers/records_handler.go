package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-analytics/internal/api/dto"
	"github.com/spec-kit/ticket-analytics/internal/domain"
	"github.com/spec-kit/ticket-analytics/internal/ingest"
	"github.com/spec-kit/ticket-analytics/internal/repository"
)

// RecordsHandler serves persisted ticket records.
type RecordsHandler struct {
	records repository.RecordRepository
}

// NewRecordsHandler constructs handler.
func NewRecordsHandler(records repository.RecordRepository) *RecordsHandler {
	return &RecordsHandler{records: records}
}

// List GET /records.
func (h *RecordsHandler) List(c *fiber.Ctx) error {
	filter := parseRecordQuery(c)

	records, err := h.records.ListWithFilter(c.UserContext(), filter)
	if err != nil {
		return err
	}

	items := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		items = append(items, recordResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func parseRecordQuery(c *fiber.Ctx) repository.RecordFilter {
	filter := repository.RecordFilter{
		Limit:  100,
		Offset: 0,
	}

	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}
	if importID := c.Query("import_id"); importID != "" {
		filter.ImportID = &importID
	}
	if raw := c.Query("service"); raw != "" {
		if key, err := parseServiceKey(raw); err == nil {
			filter.Service = &key
		}
	}
	if raw := c.Query("priority"); raw != "" {
		if priority, ok := ingest.NormalizePriority(raw); ok {
			filter.Priority = &priority
		}
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if affiliate := c.Query("affiliate"); affiliate != "" {
		filter.Affiliate = &affiliate
	}
	if raw := c.Query("week"); raw != "" {
		if week, err := strconv.Atoi(raw); err == nil && week > 0 {
			filter.WeekNumber = &week
		}
	}
	if raw := c.Query("from"); raw != "" {
		if t, ok := ingest.ParseDate(raw); ok {
			filter.From = &t
		}
	}
	if raw := c.Query("to"); raw != "" {
		if t, ok := ingest.ParseDate(raw); ok {
			filter.To = &t
		}
	}
	return filter
}

func recordResponse(rec *domain.TicketRecord) dto.RecordResponse {
	var closeTime *time.Time
	if rec.CloseTime != nil {
		ct := *rec.CloseTime
		closeTime = &ct
	}
	return dto.RecordResponse{
		ID:               rec.ID,
		ImportID:         rec.ImportID,
		ServiceKey:       rec.ServiceKey,
		TicketID:         rec.TicketID,
		RequestTime:      rec.RequestTime,
		CloseTime:        closeTime,
		WeekNumber:       rec.WeekNumber,
		WeekLabel:        rec.WeekLabel,
		Initiator:        rec.Initiator,
		Affiliate:        rec.Affiliate,
		Cluster:          rec.Cluster,
		Service:          rec.Service,
		Category:         rec.Category,
		SubCategory:      rec.SubCategory,
		ThirdLvlCategory: rec.ThirdLvlCategory,
		Title:            rec.Title,
		Description:      rec.Description,
		Name:             rec.Name,
		SupportGroup:     rec.SupportGroup,
		Process:          rec.Process,
		Priority:         rec.Priority,
		Status:           rec.Status,
		Resolution:       rec.Resolution,
		RootCause:        rec.RootCause,
		IncidentOrigin:   rec.IncidentOrigin,
		SLAIndicator:     rec.SLAIndicator,
	}
}
