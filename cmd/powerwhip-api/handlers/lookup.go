package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/enconnex/powerwhip-engine/internal/cache"
	"github.com/enconnex/powerwhip-engine/internal/lookup"
	"github.com/enconnex/powerwhip-engine/internal/observability"
	"github.com/enconnex/powerwhip-engine/internal/sheet"
	"github.com/enconnex/powerwhip-engine/pkg/engine"
)

// LookupHandler handles reference table uploads and lookup-pipeline matching.
type LookupHandler struct {
	logger         *observability.Logger
	engine         *engine.OrderEngine
	tables         *cache.TableStore
	maxUploadBytes int64
}

// NewLookupHandler creates a lookup handler.
func NewLookupHandler(logger *observability.Logger, eng *engine.OrderEngine, tables *cache.TableStore, maxUploadBytes int64) *LookupHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 16 << 20
	}
	return &LookupHandler{logger: logger, engine: eng, tables: tables, maxUploadBytes: maxUploadBytes}
}

// UploadTableResponseDTO is returned after a reference table upload.
type UploadTableResponseDTO struct {
	TableID  string `json:"tableId"`
	Source   string `json:"source"`
	RowCount int    `json:"rowCount"`
}

// UploadTable handles POST /api/v1/lookup/tables. The uploaded workbook
// replaces nothing in place: each upload gets its own table id, so concurrent
// sessions never see each other's tables.
func (h *LookupHandler) UploadTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read upload", err.Error())
		return
	}

	grid, err := sheet.ReadGrid(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "unreadable workbook", err.Error())
		return
	}

	table, err := lookup.LoadTable(header.Filename, grid)
	if err != nil {
		// The one fatal condition of the matching path: a structurally
		// invalid reference table surfaces to the caller.
		writeError(w, http.StatusUnprocessableEntity, "invalid lookup table", err.Error())
		return
	}

	if err := h.tables.Put(ctx, table); err != nil {
		h.logger.Error().Err(err).Msg("Failed to cache lookup table")
		writeError(w, http.StatusInternalServerError, "store table", err.Error())
		return
	}

	h.logger.Info().
		Str("table_id", table.ID.String()).
		Str("source", table.Source).
		Int("rows", len(table.Rows)).
		Msg("lookup table loaded")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(UploadTableResponseDTO{
		TableID:  table.ID.String(),
		Source:   table.Source,
		RowCount: len(table.Rows),
	})
}

// MatchRequestDTO is the API request for lookup matching.
type MatchRequestDTO struct {
	TableID string   `json:"tableId"`
	Lines   []string `json:"lines,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// Match handles POST /api/v1/lookup/match.
func (h *LookupHandler) Match(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reqDTO MatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if reqDTO.TableID == "" {
		writeError(w, http.StatusBadRequest, "tableId is required", "")
		return
	}

	lines := reqDTO.Lines
	if len(lines) == 0 && reqDTO.Text != "" {
		lines = strings.Split(strings.ReplaceAll(reqDTO.Text, "\r\n", "\n"), "\n")
	}
	if len(lines) == 0 {
		writeError(w, http.StatusBadRequest, "lines or text is required", "")
		return
	}

	table, err := h.tables.Get(ctx, reqDTO.TableID)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			writeError(w, http.StatusNotFound, "unknown or expired tableId", "")
			return
		}
		h.logger.Error().Err(err).Msg("Failed to load lookup table")
		writeError(w, http.StatusInternalServerError, "load table", err.Error())
		return
	}

	resolver := engine.NewLookupResolver(table)
	result := h.engine.ProcessBatch(ctx, lines, resolver, table.Source)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}
