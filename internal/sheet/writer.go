package sheet

import (
	"bytes"
	"fmt"

	"github.com/unidoc/unioffice/spreadsheet"
)

// WriteRows serializes a header plus row matrix into an xlsx binary buffer.
// Every cell is written as a string; the order entry template owns typing.
func WriteRows(sheetName string, header []string, rows [][]string) ([]byte, error) {
	wb := spreadsheet.New()
	sh := wb.AddSheet()
	if sheetName != "" {
		sh.SetName(sheetName)
	}

	if len(header) > 0 {
		hr := sh.AddRow()
		for _, v := range header {
			hr.AddCell().SetString(v)
		}
	}

	for _, cells := range rows {
		row := sh.AddRow()
		for _, v := range cells {
			row.AddCell().SetString(v)
		}
	}

	var buf bytes.Buffer
	if err := wb.Save(&buf); err != nil {
		return nil, fmt.Errorf("save workbook: %w", err)
	}
	return buf.Bytes(), nil
}
