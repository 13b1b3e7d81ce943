package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-analytics/internal/domain"
	"github.com/spec-kit/ticket-analytics/internal/events"
	"github.com/spec-kit/ticket-analytics/internal/ingest"
	"github.com/spec-kit/ticket-analytics/internal/observability"
	"github.com/spec-kit/ticket-analytics/internal/repository"
)

// ImportService runs the ingestion pipeline and persists the outcome.
type ImportService struct {
	records    repository.RecordRepository
	imports    repository.ImportRepository
	parser     *ingest.Parser
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	chunkSize  int
	delimiters []rune
}

// ImportDependencies bundles collaborators for the import service.
type ImportDependencies struct {
	RecordRepo repository.RecordRepository
	ImportRepo repository.ImportRepository
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	ChunkSize  int
	Delimiters []rune
}

// ImportInput describes one uploaded spreadsheet.
type ImportInput struct {
	FileName string
	Service  domain.ServiceKey
	Content  []byte
	DryRun   bool
}

// ImportOutcome is the result of an import attempt. Batch is nil for dry
// runs and for rejected batches.
type ImportOutcome struct {
	Batch    *domain.ImportBatch
	Records  []domain.TicketRecord
	Errors   []string
	Warnings []string
}

// NewImportService constructs the service.
func NewImportService(deps ImportDependencies) *ImportService {
	chunkSize := deps.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 500
	}
	return &ImportService{
		records:    deps.RecordRepo,
		imports:    deps.ImportRepo,
		parser:     ingest.NewParser(),
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
		chunkSize:  chunkSize,
		delimiters: deps.Delimiters,
	}
}

// Import decodes, parses and persists one uploaded spreadsheet. Records are
// inserted in fixed-size chunks; a failing chunk aborts the remaining ones
// but already-persisted chunks stay, which the import batch row records as a
// FAILED status. A non-empty error list rejects the batch without touching
// the database.
func (s *ImportService) Import(ctx context.Context, input ImportInput) (*ImportOutcome, error) {
	table, err := s.decode(input)
	if err != nil {
		return &ImportOutcome{Errors: []string{err.Error()}}, nil
	}

	result := s.parser.Parse(table)
	if len(result.Errors) > 0 {
		return &ImportOutcome{Errors: result.Errors, Warnings: result.Warnings}, nil
	}

	records := ingest.AssignWeeks(result.Records)
	// Every record in the batch belongs to the upload's validated service
	// key; the spreadsheet's own service column stays free text.
	for i := range records {
		records[i].ServiceKey = input.Service
	}
	dropped := len(table.Rows) - len(records)
	s.metrics.RecordImportRows(len(records), dropped)

	outcome := &ImportOutcome{
		Records:  records,
		Warnings: result.Warnings,
	}
	if input.DryRun {
		return outcome, nil
	}

	batch := &domain.ImportBatch{
		ID:          uuid.NewString(),
		FileName:    input.FileName,
		Service:     input.Service,
		Status:      domain.ImportStatusCompleted,
		TotalRows:   len(table.Rows),
		ParsedRows:  len(records),
		DroppedRows: dropped,
		Warnings:    result.Warnings,
	}
	if err := s.imports.Create(ctx, batch); err != nil {
		return nil, err
	}

	if err := s.persistChunks(ctx, batch, records); err != nil {
		batch.Status = domain.ImportStatusFailed
		if uerr := s.imports.Update(ctx, batch); uerr != nil {
			s.logger.Error("failed to mark import batch failed", zap.String("import_id", batch.ID), zap.Error(uerr))
		}
		s.publish(ctx, events.EventImportFailed, batch.ID, events.ImportFailedPayload{
			Service:  input.Service,
			FileName: input.FileName,
			Reason:   err.Error(),
		})
		return nil, err
	}

	s.publish(ctx, events.EventImportCompleted, batch.ID, events.ImportCompletedPayload{
		Service:     input.Service,
		FileName:    input.FileName,
		ParsedRows:  batch.ParsedRows,
		DroppedRows: batch.DroppedRows,
	})
	s.logger.Info("import completed",
		zap.String("import_id", batch.ID),
		zap.String("file", input.FileName),
		zap.Int("parsed", batch.ParsedRows),
		zap.Int("dropped", batch.DroppedRows))

	outcome.Batch = batch
	return outcome, nil
}

// GetImport returns one import batch.
func (s *ImportService) GetImport(ctx context.Context, id string) (*domain.ImportBatch, error) {
	return s.imports.GetByID(ctx, id)
}

// ListImports returns recent import batches.
func (s *ImportService) ListImports(ctx context.Context, limit, offset int) ([]domain.ImportBatch, error) {
	return s.imports.List(ctx, limit, offset)
}

// DeleteImport removes a batch and its records.
func (s *ImportService) DeleteImport(ctx context.Context, id string) error {
	if err := s.records.DeleteByImport(ctx, id); err != nil {
		return err
	}
	if err := s.imports.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventImportDeleted, id, nil)
	return nil
}

func (s *ImportService) decode(input ImportInput) (*ingest.Table, error) {
	ext := strings.ToLower(filepath.Ext(input.FileName))
	if ext == ".xlsx" || ext == ".xlsm" {
		return ingest.ReadWorkbook(bytes.NewReader(input.Content))
	}
	return ingest.ReadDelimited(string(input.Content), s.delimiters)
}

func (s *ImportService) persistChunks(ctx context.Context, batch *domain.ImportBatch, records []domain.TicketRecord) error {
	for start := 0; start < len(records); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(records) {
			end = len(records)
		}
		if err := s.records.InsertBatch(ctx, batch.ID, records[start:end]); err != nil {
			return fmt.Errorf("persist chunk %d-%d: %w", start, end, err)
		}
		s.metrics.RecordChunkPersisted()
	}
	return nil
}

func (s *ImportService) publish(ctx context.Context, eventType events.EventType, importID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ImportID:  importID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
