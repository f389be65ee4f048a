package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const batchSchema = `
CREATE TABLE IF NOT EXISTS batches (
	id TEXT PRIMARY KEY,
	pipeline TEXT NOT NULL,
	source TEXT NOT NULL DEFAULT '',
	line_count INTEGER NOT NULL,
	row_count INTEGER NOT NULL,
	matched_count INTEGER NOT NULL,
	defaulted_count INTEGER NOT NULL,
	mean_confidence REAL NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_batches_created_at ON batches (created_at);
`

// Open connects to the batch history database. driver is "sqlite" or
// "postgres"; dsn is a file path for sqlite.
func Open(driver, dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch driver {
	case "sqlite":
		db, err = sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	case "postgres":
		db, err = sql.Open("postgres", dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	if _, err := db.ExecContext(ctx, batchSchema); err != nil {
		return nil, fmt.Errorf("migrate batch schema: %w", err)
	}

	return db, nil
}

// BatchRepository records processed batches.
type BatchRepository struct {
	db *sql.DB
}

// NewBatchRepository creates a batch repository.
func NewBatchRepository(db *sql.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

// Insert stores one batch record.
func (r *BatchRepository) Insert(ctx context.Context, rec BatchRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO batches (id, pipeline, source, line_count, row_count,
			matched_count, defaulted_count, mean_confidence, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID.String(), rec.Pipeline, rec.Source, rec.LineCount, rec.RowCount,
		rec.MatchedCount, rec.DefaultedCount, rec.MeanConfidence, rec.Notes,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert batch record: %w", err)
	}
	return nil
}

// Get loads one batch record by id.
func (r *BatchRepository) Get(ctx context.Context, id uuid.UUID) (*BatchRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pipeline, source, line_count, row_count, matched_count,
			defaulted_count, mean_confidence, notes, created_at
		FROM batches WHERE id = $1`, id.String())

	rec, err := scanBatch(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get batch record: %w", err)
	}
	return rec, nil
}

// List returns the most recent batch records.
func (r *BatchRepository) List(ctx context.Context, limit int) ([]BatchRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pipeline, source, line_count, row_count, matched_count,
			defaulted_count, mean_confidence, notes, created_at
		FROM batches ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list batch records: %w", err)
	}
	defer rows.Close()

	var recs []BatchRecord
	for rows.Next() {
		rec, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch record: %w", err)
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBatch(s rowScanner) (*BatchRecord, error) {
	var rec BatchRecord
	var id string
	if err := s.Scan(&id, &rec.Pipeline, &rec.Source, &rec.LineCount,
		&rec.RowCount, &rec.MatchedCount, &rec.DefaultedCount,
		&rec.MeanConfidence, &rec.Notes, &rec.CreatedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse batch id: %w", err)
	}
	rec.ID = parsed
	return &rec, nil
}
