// Package storage persists batch history for audit and reporting. It sits
// outside the hot path: the pipeline completes whether or not a record is
// written.
package storage

import (
	"time"

	"github.com/google/uuid"
)

// BatchRecord summarizes one processed pattern batch.
type BatchRecord struct {
	ID             uuid.UUID
	Pipeline       string // catalog or lookup
	Source         string
	LineCount      int
	RowCount       int
	MatchedCount   int
	DefaultedCount int
	MeanConfidence float64
	Notes          string
	CreatedAt      time.Time
}
