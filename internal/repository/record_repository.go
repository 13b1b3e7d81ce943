package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

// RecordFilter captures listing parameters for ticket records.
type RecordFilter struct {
	ImportID   *string
	Service    *domain.ServiceKey
	Priority   *domain.Priority
	Status     *string
	Affiliate  *string
	WeekNumber *int
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// RecordRepository encapsulates ticket-record persistence.
type RecordRepository interface {
	InsertBatch(ctx context.Context, importID string, records []domain.TicketRecord) error
	ListWithFilter(ctx context.Context, filter RecordFilter) ([]domain.TicketRecord, error)
	CountByImport(ctx context.Context, importID string) (int64, error)
	DeleteByImport(ctx context.Context, importID string) error
}

type recordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository instantiates repository.
func NewRecordRepository(pool *pgxpool.Pool) RecordRepository {
	return &recordRepository{pool: pool}
}

const insertRecordQuery = `
    INSERT INTO ticket_records (import_id, service_key, ticket_id, request_time, close_time, week_number, week_label,
        initiator, affiliate, cluster, service, category, sub_category, third_lvl_category,
        title, description, name, support_group, process, priority, status, resolution,
        root_cause, incident_origin, sla_indicator)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)`

// InsertBatch inserts one chunk of records in a single round trip via
// pgx.Batch. Duplicate ticket IDs within or across chunks are inserted as-is;
// the schema deliberately carries no uniqueness constraint on ticket_id.
func (r *recordRepository) InsertBatch(ctx context.Context, importID string, records []domain.TicketRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range records {
		rec := &records[i]
		batch.Queue(insertRecordQuery,
			importID,
			string(rec.ServiceKey),
			rec.TicketID,
			rec.RequestTime,
			rec.CloseTime,
			rec.WeekNumber,
			rec.WeekLabel,
			nullable(rec.Initiator),
			nullable(rec.Affiliate),
			nullable(rec.Cluster),
			nullable(rec.Service),
			nullable(rec.Category),
			nullable(rec.SubCategory),
			nullable(rec.ThirdLvlCategory),
			nullable(rec.Title),
			nullable(rec.Description),
			nullable(rec.Name),
			nullable(rec.SupportGroup),
			nullable(rec.Process),
			nullable(string(rec.Priority)),
			nullable(rec.Status),
			nullable(rec.Resolution),
			nullable(rec.RootCause),
			nullable(rec.IncidentOrigin),
			nullable(rec.SLAIndicator),
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert record batch: %w", err)
		}
	}
	return nil
}

func (r *recordRepository) ListWithFilter(ctx context.Context, filter RecordFilter) ([]domain.TicketRecord, error) {
	base := `SELECT id, import_id, service_key, ticket_id, request_time, close_time, week_number, week_label,
                    initiator, affiliate, cluster, service, category, sub_category, third_lvl_category,
                    title, description, name, support_group, process, priority, status, resolution,
                    root_cause, incident_origin, sla_indicator, created_at
             FROM ticket_records`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ImportID != nil {
		args = append(args, *filter.ImportID)
		clauses = append(clauses, fmt.Sprintf("import_id=$%d", len(args)))
	}
	// Per-service selection matches the batch's validated service key, not
	// the spreadsheet's free-text service column.
	if filter.Service != nil {
		args = append(args, string(*filter.Service))
		clauses = append(clauses, fmt.Sprintf("service_key=$%d", len(args)))
	}
	if filter.Priority != nil {
		args = append(args, string(*filter.Priority))
		clauses = append(clauses, fmt.Sprintf("priority=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Affiliate != nil {
		args = append(args, *filter.Affiliate)
		clauses = append(clauses, fmt.Sprintf("affiliate=$%d", len(args)))
	}
	if filter.WeekNumber != nil {
		args = append(args, *filter.WeekNumber)
		clauses = append(clauses, fmt.Sprintf("week_number=$%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		clauses = append(clauses, fmt.Sprintf("request_time >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		clauses = append(clauses, fmt.Sprintf("request_time <= $%d", len(args)))
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY request_time ASC", base, strings.Join(clauses, " AND "))
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (r *recordRepository) CountByImport(ctx context.Context, importID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ticket_records WHERE import_id=$1`, importID).Scan(&count)
	return count, err
}

func (r *recordRepository) DeleteByImport(ctx context.Context, importID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ticket_records WHERE import_id=$1`, importID)
	return err
}

func scanRecords(rows pgx.Rows) ([]domain.TicketRecord, error) {
	var result []domain.TicketRecord
	for rows.Next() {
		var rec domain.TicketRecord
		var closeTime *time.Time
		var serviceKey string
		var initiator, affiliate, cluster, service, category, subCategory, thirdLvl *string
		var title, description, name, supportGroup, process, priority *string
		var status, resolution, rootCause, incidentOrigin, slaIndicator *string

		if err := rows.Scan(
			&rec.ID,
			&rec.ImportID,
			&serviceKey,
			&rec.TicketID,
			&rec.RequestTime,
			&closeTime,
			&rec.WeekNumber,
			&rec.WeekLabel,
			&initiator,
			&affiliate,
			&cluster,
			&service,
			&category,
			&subCategory,
			&thirdLvl,
			&title,
			&description,
			&name,
			&supportGroup,
			&process,
			&priority,
			&status,
			&resolution,
			&rootCause,
			&incidentOrigin,
			&slaIndicator,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}

		rec.CloseTime = closeTime
		rec.ServiceKey = domain.ServiceKey(serviceKey)
		rec.Initiator = deref(initiator)
		rec.Affiliate = deref(affiliate)
		rec.Cluster = deref(cluster)
		rec.Service = deref(service)
		rec.Category = deref(category)
		rec.SubCategory = deref(subCategory)
		rec.ThirdLvlCategory = deref(thirdLvl)
		rec.Title = deref(title)
		rec.Description = deref(description)
		rec.Name = deref(name)
		rec.SupportGroup = deref(supportGroup)
		rec.Process = deref(process)
		rec.Priority = domain.Priority(deref(priority))
		rec.Status = deref(status)
		rec.Resolution = deref(resolution)
		rec.RootCause = deref(rootCause)
		rec.IncidentOrigin = deref(incidentOrigin)
		rec.SLAIndicator = deref(slaIndicator)

		result = append(result, rec)
	}
	return result, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
