package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

// ImportRepository tracks import batch bookkeeping rows.
type ImportRepository interface {
	Create(ctx context.Context, batch *domain.ImportBatch) error
	Update(ctx context.Context, batch *domain.ImportBatch) error
	GetByID(ctx context.Context, id string) (*domain.ImportBatch, error)
	List(ctx context.Context, limit, offset int) ([]domain.ImportBatch, error)
	Delete(ctx context.Context, id string) error
}

type importRepository struct {
	pool *pgxpool.Pool
}

// NewImportRepository returns a Postgres-backed implementation.
func NewImportRepository(pool *pgxpool.Pool) ImportRepository {
	return &importRepository{pool: pool}
}

func (r *importRepository) Create(ctx context.Context, batch *domain.ImportBatch) error {
	const query = `
        INSERT INTO import_batches (id, file_name, service, status, total_rows, parsed_rows, dropped_rows, warnings)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		batch.ID,
		batch.FileName,
		string(batch.Service),
		string(batch.Status),
		batch.TotalRows,
		batch.ParsedRows,
		batch.DroppedRows,
		batch.Warnings,
	).Scan(&batch.CreatedAt, &batch.UpdatedAt)
}

func (r *importRepository) Update(ctx context.Context, batch *domain.ImportBatch) error {
	const query = `
        UPDATE import_batches SET status=$1, total_rows=$2, parsed_rows=$3, dropped_rows=$4, warnings=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		string(batch.Status),
		batch.TotalRows,
		batch.ParsedRows,
		batch.DroppedRows,
		batch.Warnings,
		batch.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *importRepository) GetByID(ctx context.Context, id string) (*domain.ImportBatch, error) {
	const query = `
        SELECT id, file_name, service, status, total_rows, parsed_rows, dropped_rows, warnings, created_at, updated_at
        FROM import_batches WHERE id=$1`
	var batch domain.ImportBatch
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&batch.ID,
		&batch.FileName,
		&batch.Service,
		&batch.Status,
		&batch.TotalRows,
		&batch.ParsedRows,
		&batch.DroppedRows,
		&batch.Warnings,
		&batch.CreatedAt,
		&batch.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *importRepository) List(ctx context.Context, limit, offset int) ([]domain.ImportBatch, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT id, file_name, service, status, total_rows, parsed_rows, dropped_rows, warnings, created_at, updated_at
        FROM import_batches ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ImportBatch
	for rows.Next() {
		var batch domain.ImportBatch
		if err := rows.Scan(
			&batch.ID,
			&batch.FileName,
			&batch.Service,
			&batch.Status,
			&batch.TotalRows,
			&batch.ParsedRows,
			&batch.DroppedRows,
			&batch.Warnings,
			&batch.CreatedAt,
			&batch.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, batch)
	}
	return result, rows.Err()
}

// Delete removes the batch row; ticket_records cascade via the schema's
// foreign key.
func (r *importRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM import_batches WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
