package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

// ParseResult carries the parsed records together with everything the batch
// wants to tell the caller. A non-empty Errors slice means the whole batch
// was rejected and Records is empty; Warnings are informational and never
// block an import on their own.
type ParseResult struct {
	Records  []domain.TicketRecord
	Errors   []string
	Warnings []string
}

// Parser converts a raw Table into validated TicketRecords.
type Parser struct {
	now func() time.Time
}

// NewParser constructs a Parser using wall-clock time for surrogate IDs.
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// NewParserWithClock constructs a Parser with an injected clock.
func NewParserWithClock(now func() time.Time) *Parser {
	return &Parser{now: now}
}

// Parse maps every row of the table through the column mapping and the date
// and priority normalizers. Rows lacking a parseable request time are
// dropped with a warning; rows lacking a ticket ID are kept with a surrogate
// ID. Only missing required columns reject the batch outright.
func (p *Parser) Parse(table *Table) *ParseResult {
	result := &ParseResult{}

	columns, errs := MapColumns(table.Headers)
	if len(errs) > 0 {
		result.Errors = errs
		return result
	}

	expected := len(table.Headers)
	for i, row := range table.Rows {
		rowNum := i + 2 // 1-based, after the header row

		if len(row) != expected {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("row %d: expected %d fields, found %d", rowNum, expected, len(row)))
		}

		record, warnings, ok := p.buildRecord(columns, row, rowNum)
		result.Warnings = append(result.Warnings, warnings...)
		if ok {
			result.Records = append(result.Records, record)
		}
	}

	return result
}

// recordBuilder accumulates cell values into a typed partial record keyed by
// canonical field. Required fields are validated once the row is complete.
type recordBuilder struct {
	record         domain.TicketRecord
	hasRequestTime bool
	warnings       []string
}

func (p *Parser) buildRecord(columns ColumnMap, row []string, rowNum int) (domain.TicketRecord, []string, bool) {
	b := &recordBuilder{}

	for idx, field := range columns {
		if idx >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[idx])
		if cell == "" {
			continue
		}
		b.set(field, cell, rowNum)
	}

	if !b.hasRequestTime {
		b.warnings = append(b.warnings,
			fmt.Sprintf("row %d: missing or unparseable request time, row skipped", rowNum))
		return domain.TicketRecord{}, b.warnings, false
	}

	if b.record.TicketID == "" {
		b.record.TicketID = fmt.Sprintf("AUTO-%d-%d", p.now().UnixMilli(), rowNum)
		b.warnings = append(b.warnings,
			fmt.Sprintf("row %d: Missing Ticket ID, assigned %s", rowNum, b.record.TicketID))
	}

	return b.record, b.warnings, true
}

func (b *recordBuilder) set(field Field, cell string, rowNum int) {
	switch field {
	case FieldTicketID:
		b.record.TicketID = cell
	case FieldRequestTime:
		if t, ok := ParseDate(cell); ok {
			b.record.RequestTime = t
			b.hasRequestTime = true
		}
	case FieldCloseTime:
		if t, ok := ParseDate(cell); ok {
			b.record.CloseTime = &t
		}
	case FieldPriority:
		if p, ok := NormalizePriority(cell); ok {
			b.record.Priority = p
		} else {
			b.warnings = append(b.warnings,
				fmt.Sprintf("row %d: unrecognized priority %q", rowNum, cell))
		}
	case FieldInitiator:
		b.record.Initiator = cell
	case FieldAffiliate:
		b.record.Affiliate = cell
	case FieldCluster:
		b.record.Cluster = cell
	case FieldService:
		b.record.Service = cell
	case FieldCategory:
		b.record.Category = cell
	case FieldSubCategory:
		b.record.SubCategory = cell
	case FieldThirdLvlCategory:
		b.record.ThirdLvlCategory = cell
	case FieldTitle:
		b.record.Title = cell
	case FieldDescription:
		b.record.Description = cell
	case FieldName:
		b.record.Name = cell
	case FieldSupportGroup:
		b.record.SupportGroup = cell
	case FieldProcess:
		b.record.Process = cell
	case FieldStatus:
		b.record.Status = cell
	case FieldResolution:
		b.record.Resolution = cell
	case FieldRootCause:
		b.record.RootCause = cell
	case FieldIncidentOrigin:
		b.record.IncidentOrigin = cell
	case FieldSLAIndicator:
		b.record.SLAIndicator = cell
	}
}
