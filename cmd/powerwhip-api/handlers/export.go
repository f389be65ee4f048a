package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/enconnex/powerwhip-engine/internal/observability"
	"github.com/enconnex/powerwhip-engine/internal/orderrow"
	"github.com/enconnex/powerwhip-engine/internal/sheet"
)

// ExportHandler converts order rows into a downloadable workbook.
type ExportHandler struct {
	logger *observability.Logger
}

// NewExportHandler creates an export handler.
func NewExportHandler(logger *observability.Logger) *ExportHandler {
	return &ExportHandler{logger: logger}
}

// ExportRequestDTO is the API request for spreadsheet export. Rows are
// positional, matching the order entry column schema.
type ExportRequestDTO struct {
	SheetName string     `json:"sheetName,omitempty"`
	Rows      [][]string `json:"rows"`
}

// Export handles POST /api/v1/orders/export.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var reqDTO ExportRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if len(reqDTO.Rows) == 0 {
		writeError(w, http.StatusBadRequest, "rows is required", "")
		return
	}

	name := reqDTO.SheetName
	if name == "" {
		name = "PreSal"
	}

	data, err := sheet.WriteRows(name, orderrow.Columns, reqDTO.Rows)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to write workbook")
		writeError(w, http.StatusInternalServerError, "write workbook", err.Error())
		return
	}

	filename := fmt.Sprintf("order-entry-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.Write(data)
}
