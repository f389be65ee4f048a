package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceGrid() [][]string {
	return [][]string{
		{"Choose receptacle", "Select Cable/Conduit Type", "Whip Length (ft)", "Tail Length (ft)", "Voltage", "Conductor AWG", "Orderable Part number", "base price", "assembled price", "List Price"},
		{"L6-30R", "LFMC", "30", "10", "208", "8", "PW-L630-30", "$100.00", "640.0", "$851.20"},
		{"460R9W", "EMT", "50", "", "480", "6", "PW-460-50", "1,250.50", "", ""},
		{"", "", "", "", "", "", "", "", "", ""},
	}
}

func TestLoadTable_MapsHeadersByFragment(t *testing.T) {
	table, err := LoadTable("reference.xlsx", referenceGrid())
	require.NoError(t, err)

	assert.Equal(t, "reference.xlsx", table.Source)
	assert.NotEqual(t, table.ID.String(), "00000000-0000-0000-0000-000000000000")
	require.Len(t, table.Rows, 2, "fully blank rows are dropped")

	row := table.Rows[0]
	assert.Equal(t, "L6-30R", row.Receptacle)
	assert.Equal(t, "LFMC", row.CableConduitType)
	assert.Equal(t, "30", row.WhipLength)
	assert.Equal(t, "10", row.TailLength)
	assert.Equal(t, "208", row.Voltage)
	assert.Equal(t, "8", row.ConductorAWG)
	assert.Equal(t, "PW-L630-30", row.OrderablePartNumber)
	assert.Equal(t, 100.0, row.BasePrice)
	assert.Equal(t, 640.0, row.AssembledPrice)
	assert.Equal(t, 851.20, row.ListPrice)
}

func TestLoadTable_PriceParsingStripsFormatting(t *testing.T) {
	table, err := LoadTable("reference.xlsx", referenceGrid())
	require.NoError(t, err)

	row := table.Rows[1]
	assert.Equal(t, 1250.50, row.BasePrice)
	assert.Zero(t, row.AssembledPrice)
	assert.Zero(t, row.ListPrice)
}

func TestLoadTable_TooFewRows(t *testing.T) {
	_, err := LoadTable("empty.xlsx", nil)
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = LoadTable("header-only.xlsx", [][]string{{"Choose receptacle"}})
	assert.ErrorIs(t, err, ErrInvalidTable)
}

func TestLoadTable_MissingReceptacleColumn(t *testing.T) {
	grid := [][]string{
		{"Whip Length (ft)", "Voltage"},
		{"30", "208"},
	}

	_, err := LoadTable("bad.xlsx", grid)
	assert.ErrorIs(t, err, ErrInvalidTable)
}
