package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/enconnex/powerwhip-engine/internal/lookup"
	"github.com/enconnex/powerwhip-engine/internal/observability"
	"github.com/enconnex/powerwhip-engine/internal/orderrow"
	"github.com/enconnex/powerwhip-engine/internal/pattern"
	"github.com/enconnex/powerwhip-engine/internal/storage"
)

// MatchResult is the per-line outcome of a batch. MatchedRow carries the
// reference row that won on the lookup path; it is null on misses and on the
// catalog path.
type MatchResult struct {
	InputPattern      string                `json:"inputPattern"`
	Parsed            pattern.ParsedPattern `json:"parsed"`
	Matched           bool                  `json:"matched"`
	Confidence        float64               `json:"confidence"`
	GeneratedRowCount int                   `json:"generatedRowCount"`
	Fill              orderrow.AutoFill     `json:"autoFill"`
	MatchedRow        *lookup.Row           `json:"matchedRow"`
}

// BatchSummary aggregates a processed batch.
type BatchSummary struct {
	LineCount      int     `json:"lineCount"`
	RowCount       int     `json:"rowCount"`
	MatchedCount   int     `json:"matchedCount"`
	DefaultedCount int     `json:"defaultedCount"`
	MeanConfidence float64 `json:"meanConfidence"`
	Notes          string  `json:"notes,omitempty"`
}

// BatchResult is the full outcome of one ProcessBatch call.
type BatchResult struct {
	BatchID  uuid.UUID                `json:"batchId"`
	Pipeline string                   `json:"pipeline"`
	Results  []MatchResult            `json:"results"`
	Rows     []orderrow.OrderEntryRow `json:"rows"`
	Summary  BatchSummary             `json:"summary"`
}

// Config holds engine settings.
type Config struct {
	MaxQuantity     int
	ReviewThreshold float64
	PersistHistory  bool
}

// OrderEngine runs pattern batches through a resolver and the shared row
// builder. It is stateless across batches apart from the optional history
// repository; callers may share one instance across requests.
type OrderEngine struct {
	logger    *observability.Logger
	tokenizer *pattern.Tokenizer
	history   *storage.BatchRepository
	cfg       Config
}

// NewOrderEngine creates an engine. history may be nil to disable batch
// persistence.
func NewOrderEngine(logger *observability.Logger, history *storage.BatchRepository, cfg Config) *OrderEngine {
	if logger == nil {
		logger = observability.DefaultLogger()
	}
	if cfg.MaxQuantity <= 0 {
		cfg.MaxQuantity = 500
	}
	if cfg.ReviewThreshold <= 0 {
		cfg.ReviewThreshold = 0.7
	}
	return &OrderEngine{
		logger:    logger,
		tokenizer: pattern.NewTokenizer(cfg.MaxQuantity),
		history:   history,
		cfg:       cfg,
	}
}

// ProcessBatch tokenizes and resolves every line and builds the order rows.
// Every input line yields exactly one result and quantity-many rows; there is
// no per-line failure path. Blank lines are malformed, not skipped: they
// tokenize to empty fields and come back as defaulted rows like any other
// unresolvable line.
func (e *OrderEngine) ProcessBatch(ctx context.Context, lines []string, resolver PatternResolver, source string) *BatchResult {
	start := time.Now()
	batchID := uuid.New()
	log := e.logger.WithContext(ctx).WithBatch(batchID.String()).WithPipeline(resolver.Name())

	result := &BatchResult{
		BatchID:  batchID,
		Pipeline: resolver.Name(),
		Results:  []MatchResult{},
	}

	var specs []orderrow.RowSpec
	var confidenceSum float64
	clamped := 0

	for _, line := range lines {
		p := e.tokenizer.Tokenize(line)
		res := resolver.Resolve(p)

		if p.QuantityClamped {
			clamped++
		}

		reviewNote := ""
		if res.Confidence < e.cfg.ReviewThreshold {
			reviewNote = fmt.Sprintf("low confidence (%.2f); review before ordering", res.Confidence)
		}

		specs = append(specs, orderrow.RowSpec{
			Pattern:    p,
			Fill:       res.Fill,
			Confidence: res.Confidence,
			ReviewNote: reviewNote,
		})

		result.Results = append(result.Results, MatchResult{
			InputPattern:      line,
			Parsed:            p,
			Matched:           res.Matched,
			Confidence:        res.Confidence,
			GeneratedRowCount: p.Quantity,
			Fill:              res.Fill,
			MatchedRow:        res.MatchedRow,
		})

		confidenceSum += res.Confidence
		if res.Matched {
			result.Summary.MatchedCount++
		} else {
			result.Summary.DefaultedCount++
		}
	}

	result.Rows = orderrow.NewBuilder().BuildRows(specs)

	result.Summary.LineCount = len(result.Results)
	result.Summary.RowCount = len(result.Rows)
	if result.Summary.LineCount > 0 {
		result.Summary.MeanConfidence = confidenceSum / float64(result.Summary.LineCount)
	}
	if clamped > 0 {
		result.Summary.Notes = fmt.Sprintf("%d line(s) had quantity clamped to %d", clamped, e.cfg.MaxQuantity)
	}

	log.Info().
		Int("lines", result.Summary.LineCount).
		Int("rows", result.Summary.RowCount).
		Int("matched", result.Summary.MatchedCount).
		Int("defaulted", result.Summary.DefaultedCount).
		Float64("mean_confidence", result.Summary.MeanConfidence).
		Dur("elapsed", time.Since(start)).
		Msg("batch processed")

	e.recordHistory(ctx, result, source)

	return result
}

// recordHistory persists the batch summary when a repository is configured.
// Failures are logged and swallowed: history is advisory, not part of the
// pipeline contract.
func (e *OrderEngine) recordHistory(ctx context.Context, result *BatchResult, source string) {
	if e.history == nil || !e.cfg.PersistHistory {
		return
	}

	rec := storage.BatchRecord{
		ID:             result.BatchID,
		Pipeline:       result.Pipeline,
		Source:         source,
		LineCount:      result.Summary.LineCount,
		RowCount:       result.Summary.RowCount,
		MatchedCount:   result.Summary.MatchedCount,
		DefaultedCount: result.Summary.DefaultedCount,
		MeanConfidence: result.Summary.MeanConfidence,
		Notes:          result.Summary.Notes,
		CreatedAt:      time.Now().UTC(),
	}

	if err := e.history.Insert(ctx, rec); err != nil {
		e.logger.Warn().Err(err).Str("batch_id", result.BatchID.String()).Msg("failed to record batch history")
	}
}
