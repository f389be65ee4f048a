// Package handlers provides HTTP handlers for the PowerWhip API.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/enconnex/powerwhip-engine/internal/observability"
	"github.com/enconnex/powerwhip-engine/pkg/engine"
)

// PatternsHandler handles catalog-pipeline parse requests.
type PatternsHandler struct {
	logger   *observability.Logger
	engine   *engine.OrderEngine
	resolver engine.PatternResolver
}

// NewPatternsHandler creates a patterns handler.
func NewPatternsHandler(logger *observability.Logger, eng *engine.OrderEngine, resolver engine.PatternResolver) *PatternsHandler {
	return &PatternsHandler{logger: logger, engine: eng, resolver: resolver}
}

// ParseRequestDTO is the API request for pattern parsing. Lines may be
// supplied individually or as one newline-delimited text blob.
type ParseRequestDTO struct {
	Lines []string `json:"lines,omitempty"`
	Text  string   `json:"text,omitempty"`
}

// Parse handles POST /api/v1/patterns/parse.
func (h *PatternsHandler) Parse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reqDTO ParseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
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

	result := h.engine.ProcessBatch(ctx, lines, h.resolver, "api")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := map[string]string{"error": message}
	if detail != "" {
		resp["detail"] = detail
	}
	json.NewEncoder(w).Encode(resp)
}
