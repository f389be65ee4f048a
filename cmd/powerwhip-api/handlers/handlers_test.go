package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enconnex/powerwhip-engine/internal/cache"
	"github.com/enconnex/powerwhip-engine/internal/catalog"
	"github.com/enconnex/powerwhip-engine/internal/observability"
	"github.com/enconnex/powerwhip-engine/internal/orderrow"
	"github.com/enconnex/powerwhip-engine/internal/sheet"
	"github.com/enconnex/powerwhip-engine/pkg/engine"
)

func testDeps() (*observability.Logger, *engine.OrderEngine, *cache.TableStore) {
	logger := observability.DefaultLogger()
	eng := engine.NewOrderEngine(logger, nil, engine.Config{MaxQuantity: 500, ReviewThreshold: 0.7})
	store := cache.NewTableStore(cache.NewMemoryClient(10), time.Minute)
	return logger, eng, store
}

func TestPatternsHandler_Parse(t *testing.T) {
	logger, eng, _ := testDeps()
	h := NewPatternsHandler(logger, eng, engine.NewCatalogResolver(catalog.Default(), 0))

	body, _ := json.Marshal(ParseRequestDTO{Lines: []string{"CS8269A, LFMC, 50ft, pigtail 10", "L6-30R!2"}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patterns/parse", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Parse(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result engine.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, "catalog", result.Pipeline)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "480", result.Results[0].Fill.Voltage)
	assert.Len(t, result.Rows, 3)
}

func TestPatternsHandler_ParseRejectsEmptyBody(t *testing.T) {
	logger, eng, _ := testDeps()
	h := NewPatternsHandler(logger, eng, engine.NewCatalogResolver(catalog.Default(), 0))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patterns/parse", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()

	h.Parse(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func uploadWorkbook(t *testing.T, h *LookupHandler, grid [][]string) UploadTableResponseDTO {
	t.Helper()

	data, err := sheet.WriteRows("Sheet1", grid[0], grid[1:])
	require.NoError(t, err)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "reference.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lookup/tables", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.UploadTable(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp UploadTableResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLookupHandler_UploadThenMatch(t *testing.T) {
	logger, eng, store := testDeps()
	h := NewLookupHandler(logger, eng, store, 0)

	resp := uploadWorkbook(t, h, [][]string{
		{"Choose receptacle", "Whip Length (ft)", "Voltage", "base price"},
		{"L6-30R", "30", "208", "100"},
	})
	assert.Equal(t, 1, resp.RowCount)
	assert.NotEmpty(t, resp.TableID)

	body, _ := json.Marshal(MatchRequestDTO{TableID: resp.TableID, Lines: []string{"L6-30R, , 30"}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lookup/match", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Match(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result engine.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "lookup", result.Pipeline)
	require.Len(t, result.Results, 1)
	assert.True(t, result.Results[0].Matched)
}

func TestLookupHandler_UploadRejectsTableWithoutReceptacle(t *testing.T) {
	logger, eng, store := testDeps()
	h := NewLookupHandler(logger, eng, store, 0)

	data, err := sheet.WriteRows("Sheet1", []string{"Voltage"}, [][]string{{"208"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "bad.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lookup/tables", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.UploadTable(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLookupHandler_MatchUnknownTable(t *testing.T) {
	logger, eng, store := testDeps()
	h := NewLookupHandler(logger, eng, store, 0)

	body, _ := json.Marshal(MatchRequestDTO{TableID: "ffffffff-ffff-ffff-ffff-ffffffffffff", Lines: []string{"L6-30R"}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lookup/match", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Match(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportHandler_ProducesWorkbook(t *testing.T) {
	logger, _, _ := testDeps()
	h := NewExportHandler(logger)

	row := make([]string, len(orderrow.Columns))
	row[orderrow.ColLine] = "1"
	row[orderrow.ColReceptacle] = "L6-30R"

	body, _ := json.Marshal(ExportRequestDTO{Rows: [][]string{row}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/export", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Export(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	grid, err := sheet.ReadGrid(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(grid), 2)
	assert.Equal(t, "Line", grid[0][0])
	assert.Equal(t, "L6-30R", grid[1][orderrow.ColReceptacle])
}
