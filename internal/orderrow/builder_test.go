package orderrow

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enconnex/powerwhip-engine/internal/pattern"
)

func TestBuilder_RowShapeAndDefaults(t *testing.T) {
	b := NewBuilder()

	rows := b.BuildRows([]RowSpec{{
		Pattern: pattern.ParsedPattern{Quantity: 1},
		Fill: AutoFill{
			Receptacle:       "L6-30R",
			CableConduitType: "LFMC",
			WhipLength:       30,
			TailLength:       10,
			LabelColor:       "Red/White",
			Voltage:          "208",
			ConductorAWG:     "8",
			Current:          "30",
		},
	}})
	require.Len(t, rows, 1)

	row := rows[0]
	require.Len(t, row, len(Columns))

	assert.Equal(t, "1", row[ColLine])
	assert.Equal(t, "1", row[ColQty])
	assert.Equal(t, "L6-30R", row[ColReceptacle])
	assert.Equal(t, "LFMC", row[ColConduitType])
	assert.Equal(t, "30", row[ColWhipLength])
	assert.Equal(t, "10", row[ColTailLength])
	assert.Equal(t, "Red/White", row[ColLabelColor])

	assert.Equal(t, DefaultFirstCircuit, row[ColFirstCircuit])
	assert.Equal(t, DefaultSecondCircuit, row[ColSecondCircuit])
	assert.Equal(t, DefaultThirdCircuit, row[ColThirdCircuit])
	assert.Equal(t, DefaultConduitSize, row[ColConduitSize])
	assert.Equal(t, "8", row[ColConductorAWG])
	assert.Equal(t, DefaultGreenAWG, row[ColGreenAWG])
	assert.Equal(t, "208", row[ColVoltage])
	assert.Equal(t, "208", row[ColUseVoltage])
	assert.Equal(t, "30", row[ColCurrent])

	assert.Equal(t, DefaultPhaseMark, row[ColL1])
	assert.Equal(t, DefaultPhaseMark, row[ColL2])
	assert.Equal(t, DefaultPhaseMark, row[ColL3])
	assert.Equal(t, DefaultPhaseMark, row[ColN])
	assert.Equal(t, DefaultEarthMark, row[ColE])

	assert.Equal(t, DefaultPhaseType, row[ColPhaseType])
	assert.Equal(t, DefaultConductorCount, row[ColConductorCount])
}

func TestBuilder_QuantityExpansionAndGlobalLineNumbers(t *testing.T) {
	b := NewBuilder()

	rows := b.BuildRows([]RowSpec{
		{Pattern: pattern.ParsedPattern{Quantity: 2}, Fill: AutoFill{Receptacle: "L6-30R"}},
		{Pattern: pattern.ParsedPattern{Quantity: 3}, Fill: AutoFill{Receptacle: "460R9W"}},
	})
	require.Len(t, rows, 5)

	for i, row := range rows {
		assert.Equal(t, strconv.Itoa(i+1), row[ColLine], "line numbers increase with no gaps across patterns")
		assert.Equal(t, "1", row[ColQty], "each physical row is quantity one")
	}

	assert.Equal(t, "L6-30R", rows[1][ColReceptacle])
	assert.Equal(t, "460R9W", rows[2][ColReceptacle])
}

func TestBuilder_LineNumbersContinueAcrossCalls(t *testing.T) {
	b := NewBuilder()

	first := b.BuildRows([]RowSpec{{Pattern: pattern.ParsedPattern{Quantity: 1}}})
	second := b.BuildRows([]RowSpec{{Pattern: pattern.ParsedPattern{Quantity: 1}}})

	assert.Equal(t, "1", first[0][ColLine])
	assert.Equal(t, "2", second[0][ColLine])
}

func TestBuilder_ZeroQuantityStillEmitsOneRow(t *testing.T) {
	b := NewBuilder()

	rows := b.BuildRows([]RowSpec{{Pattern: pattern.ParsedPattern{}}})
	assert.Len(t, rows, 1)
}

func TestBuilder_PriceChain(t *testing.T) {
	b := NewBuilder()

	rows := b.BuildRows([]RowSpec{{
		Pattern: pattern.ParsedPattern{Quantity: 1},
		Fill:    AutoFill{BasePrice: 100},
	}})
	row := rows[0]

	assert.Equal(t, "100.00", row[ColBasePrice])
	assert.Equal(t, "640.0", row[ColAssembledPrice], "assembled = base x 6.4, one decimal")
	assert.Equal(t, "851.20", row[ColListPrice], "list = assembled x 1.33, two decimals")
}

func TestBuilder_SuppliedPricesWinOverDerivation(t *testing.T) {
	b := NewBuilder()

	rows := b.BuildRows([]RowSpec{{
		Pattern: pattern.ParsedPattern{Quantity: 1},
		Fill:    AutoFill{BasePrice: 100, AssembledPrice: 700, ListPrice: 900},
	}})
	row := rows[0]

	assert.Equal(t, "700.0", row[ColAssembledPrice])
	assert.Equal(t, "900.00", row[ColListPrice])
}

func TestBuilder_NotesJoined(t *testing.T) {
	b := NewBuilder()

	rows := b.BuildRows([]RowSpec{{
		Pattern:    pattern.ParsedPattern{Quantity: 1},
		Fill:       AutoFill{Note: "receptacle \"X\" not in catalog; defaults applied"},
		ReviewNote: "low confidence (0.50); review before ordering",
	}})

	assert.Equal(t, "receptacle \"X\" not in catalog; defaults applied; low confidence (0.50); review before ordering", rows[0][ColNotes])
}
