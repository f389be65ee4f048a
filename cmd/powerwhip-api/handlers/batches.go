package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/enconnex/powerwhip-engine/internal/observability"
	"github.com/enconnex/powerwhip-engine/internal/storage"
)

// BatchesHandler serves the processed-batch history trail.
type BatchesHandler struct {
	logger *observability.Logger
	repo   *storage.BatchRepository
}

// NewBatchesHandler creates a batches handler.
func NewBatchesHandler(logger *observability.Logger, repo *storage.BatchRepository) *BatchesHandler {
	return &BatchesHandler{logger: logger, repo: repo}
}

// BatchRecordDTO is one batch history entry.
type BatchRecordDTO struct {
	BatchID        string    `json:"batchId"`
	Pipeline       string    `json:"pipeline"`
	Source         string    `json:"source"`
	LineCount      int       `json:"lineCount"`
	RowCount       int       `json:"rowCount"`
	MatchedCount   int       `json:"matchedCount"`
	DefaultedCount int       `json:"defaultedCount"`
	MeanConfidence float64   `json:"meanConfidence"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListBatchesResponseDTO is returned by the batch list endpoint.
type ListBatchesResponseDTO struct {
	Batches []BatchRecordDTO `json:"batches"`
}

// List handles GET /api/v1/batches.
func (h *BatchesHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer", "")
			return
		}
		limit = n
	}

	recs, err := h.repo.List(r.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list batch history")
		writeError(w, http.StatusInternalServerError, "list batches", err.Error())
		return
	}

	resp := ListBatchesResponseDTO{Batches: make([]BatchRecordDTO, 0, len(recs))}
	for _, rec := range recs {
		resp.Batches = append(resp.Batches, toBatchDTO(rec))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Get handles GET /api/v1/batches/{batchID}.
func (h *BatchesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "batchID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid batch id", err.Error())
		return
	}

	rec, err := h.repo.Get(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to load batch record")
		writeError(w, http.StatusInternalServerError, "get batch", err.Error())
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "unknown batch id", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toBatchDTO(*rec))
}

func toBatchDTO(rec storage.BatchRecord) BatchRecordDTO {
	return BatchRecordDTO{
		BatchID:        rec.ID.String(),
		Pipeline:       rec.Pipeline,
		Source:         rec.Source,
		LineCount:      rec.LineCount,
		RowCount:       rec.RowCount,
		MatchedCount:   rec.MatchedCount,
		DefaultedCount: rec.DefaultedCount,
		MeanConfidence: rec.MeanConfidence,
		Notes:          rec.Notes,
		CreatedAt:      rec.CreatedAt,
	}
}
