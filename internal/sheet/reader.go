// Package sheet is the spreadsheet boundary: it converts between xlsx
// workbooks and plain string grids. The pipeline core never touches files or
// binary formats directly.
package sheet

import (
	"fmt"
	"io"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// ReadGrid reads the first sheet of an xlsx workbook into a dense string
// grid. Sparse cells become empty strings so positional column mapping holds.
func ReadGrid(r io.ReaderAt, size int64) ([][]string, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}

	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sh := sheets[0]

	maxCols := 0
	maxRow := 0
	for _, row := range sh.Rows() {
		if int(row.RowNumber()) > maxRow {
			maxRow = int(row.RowNumber())
		}
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			if idx := int(reference.ColumnToIndex(colName)); idx+1 > maxCols {
				maxCols = idx + 1
			}
		}
	}

	grid := make([][]string, maxRow)
	for i := range grid {
		grid[i] = make([]string, maxCols)
	}

	for _, row := range sh.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		if rowIdx < 0 || rowIdx >= len(grid) {
			continue
		}
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))
			if colIdx < 0 || colIdx >= maxCols {
				continue
			}
			grid[rowIdx][colIdx] = cell.GetFormattedValue()
		}
	}

	return grid, nil
}
