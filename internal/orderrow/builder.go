package orderrow

import (
	"math"
	"strconv"

	"github.com/enconnex/powerwhip-engine/internal/pattern"
)

// RowSpec is one logical line to expand into physical output rows.
type RowSpec struct {
	Pattern    pattern.ParsedPattern
	Fill       AutoFill
	Confidence float64
	ReviewNote string
}

// Builder turns resolved line specs into positional order entry rows. The
// line counter is global to the batch: numbers increase by one per physical
// row with no gaps, regardless of how many patterns contributed.
type Builder struct {
	nextLine int
}

// NewBuilder creates a builder whose first emitted row is Line 1.
func NewBuilder() *Builder {
	return &Builder{nextLine: 1}
}

// BuildRows expands each spec into exactly Pattern.Quantity identical rows,
// differing only in the Line column.
func (b *Builder) BuildRows(specs []RowSpec) []OrderEntryRow {
	var rows []OrderEntryRow
	for _, spec := range specs {
		qty := spec.Pattern.Quantity
		if qty < 1 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			rows = append(rows, b.buildRow(spec))
		}
	}
	return rows
}

func (b *Builder) buildRow(spec RowSpec) OrderEntryRow {
	row := make(OrderEntryRow, len(Columns))
	fill := spec.Fill

	row[ColLine] = strconv.Itoa(b.nextLine)
	b.nextLine++

	row[ColQty] = "1"
	row[ColReceptacle] = fill.Receptacle
	row[ColConduitType] = fill.CableConduitType
	row[ColWhipLength] = formatLength(fill.WhipLength)
	row[ColTailLength] = formatLength(fill.TailLength)
	row[ColLabelColor] = fill.LabelColor

	row[ColFirstCircuit] = DefaultFirstCircuit
	row[ColSecondCircuit] = DefaultSecondCircuit
	row[ColThirdCircuit] = DefaultThirdCircuit

	row[ColConduitSize] = orDefault(fill.ConduitSize, DefaultConduitSize)
	row[ColConductorAWG] = orDefault(fill.ConductorAWG, DefaultConductorAWG)
	row[ColGreenAWG] = orDefault(fill.GreenAWG, DefaultGreenAWG)
	row[ColVoltage] = orDefault(fill.Voltage, DefaultVoltage)
	row[ColBoxType] = fill.BoxType

	row[ColL1] = DefaultPhaseMark
	row[ColL2] = DefaultPhaseMark
	row[ColL3] = DefaultPhaseMark
	row[ColN] = DefaultPhaseMark
	row[ColE] = DefaultEarthMark

	row[ColNotes] = joinNotes(fill.Note, spec.ReviewNote)
	row[ColOrderablePartNumber] = fill.OrderablePartNumber

	base, assembled, list := derivePrices(fill)
	row[ColBasePrice] = formatPrice(base, 2)
	row[ColLength] = formatLength(fill.WhipLength)
	row[ColAssembledPrice] = formatPrice(assembled, 1)
	row[ColListPrice] = formatPrice(list, 2)

	row[ColPhaseType] = orDefault(fill.PhaseType, DefaultPhaseType)
	row[ColConductorCount] = orDefault(fill.ConductorCount, DefaultConductorCount)
	row[ColCurrent] = orDefault(fill.Current, DefaultCurrent)
	row[ColUseVoltage] = orDefault(fill.Voltage, DefaultVoltage)

	return row
}

// derivePrices applies the fixed multiplier chain whenever a price is not
// supplied by a matched lookup row: assembled = base x 6.4 rounded to 1
// decimal, list = assembled x 1.33 rounded to 2 decimals.
func derivePrices(fill AutoFill) (base, assembled, list float64) {
	base = fill.BasePrice
	assembled = fill.AssembledPrice
	if assembled == 0 {
		assembled = roundTo(base*AssembledPriceMultiplier, 1)
	}
	list = fill.ListPrice
	if list == 0 {
		list = roundTo(assembled*ListPriceMultiplier, 2)
	}
	return base, assembled, list
}

func roundTo(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}

func formatPrice(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func formatLength(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func joinNotes(notes ...string) string {
	out := ""
	for _, n := range notes {
		if n == "" {
			continue
		}
		if out != "" {
			out += "; "
		}
		out += n
	}
	return out
}
