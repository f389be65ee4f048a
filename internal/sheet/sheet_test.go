package sheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadGrid(t *testing.T) {
	header := []string{"Choose receptacle", "Voltage"}
	rows := [][]string{
		{"L6-30R", "208"},
		{"CS8269A", "480"},
	}

	data, err := WriteRows("PreSal", header, rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	grid, err := ReadGrid(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, grid, 3)

	assert.Equal(t, header, grid[0])
	assert.Equal(t, rows[0], grid[1])
	assert.Equal(t, rows[1], grid[2])
}

func TestWriteRows_RaggedRowsStayPositional(t *testing.T) {
	data, err := WriteRows("PreSal", []string{"a", "b", "c"}, [][]string{{"1"}})
	require.NoError(t, err)

	grid, err := ReadGrid(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, grid, 2)

	assert.Equal(t, []string{"1", "", ""}, grid[1], "missing cells read back as empty strings")
}

func TestReadGrid_RejectsGarbage(t *testing.T) {
	junk := []byte("this is not a workbook")
	_, err := ReadGrid(bytes.NewReader(junk), int64(len(junk)))
	assert.Error(t, err)
}
