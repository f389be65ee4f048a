// Package orderrow assembles the fixed-schema order entry rows consumed by
// the PreSal/SAL order entry spreadsheets.
package orderrow

// Columns is the exact output column order. Downstream import tooling matches
// by position, so this list must not be reordered or renamed.
var Columns = []string{
	"Line",
	"Qty",
	"Choose receptacle",
	"Select Cable/Conduit Type",
	"Whip Length (ft)",
	"Tail Length (ft)",
	"Label Color (Background/Text)",
	"building",
	"PDU",
	"Panel",
	"First Circuit",
	"Second Circuit",
	"Third Circuit",
	"Cage",
	"Cabinet Number",
	"Included Breaker",
	"Mounting bolt",
	"Conduit Size",
	"Conductor AWG",
	"Green AWG",
	"Voltage",
	"Box",
	"L1",
	"L2",
	"L3",
	"N",
	"E",
	"Drawing number",
	"Notes to Enconnex",
	"Orderable Part number",
	"base price",
	"Per foot",
	"length",
	"Bolt adder",
	"assembled price",
	"Breaker adder",
	"Price to Wesco",
	"List Price",
	"Budgetary pricing text",
	"phase type",
	"conductor count",
	"neutral",
	"current",
	"UseVoltage",
	"plate hole",
	"box",
	"Box code",
	"Box options",
	"Breaker options",
}

// Column indexes into an OrderEntryRow. Kept in lockstep with Columns.
const (
	ColLine = iota
	ColQty
	ColReceptacle
	ColConduitType
	ColWhipLength
	ColTailLength
	ColLabelColor
	ColBuilding
	ColPDU
	ColPanel
	ColFirstCircuit
	ColSecondCircuit
	ColThirdCircuit
	ColCage
	ColCabinetNumber
	ColIncludedBreaker
	ColMountingBolt
	ColConduitSize
	ColConductorAWG
	ColGreenAWG
	ColVoltage
	ColBoxType
	ColL1
	ColL2
	ColL3
	ColN
	ColE
	ColDrawingNumber
	ColNotes
	ColOrderablePartNumber
	ColBasePrice
	ColPerFoot
	ColLength
	ColBoltAdder
	ColAssembledPrice
	ColBreakerAdder
	ColPriceToWesco
	ColListPrice
	ColBudgetaryText
	ColPhaseType
	ColConductorCount
	ColNeutral
	ColCurrent
	ColUseVoltage
	ColPlateHole
	ColBoxLower
	ColBoxCode
	ColBoxOptions
	ColBreakerOptions
)

// Default cell constants, used whenever a value cannot be derived from a
// matched lookup row or the parsed pattern. Cells are never left empty where
// a default is documented, so the output is always importable as-is.
const (
	DefaultPhaseMark      = "--------"
	DefaultEarthMark      = "------->"
	DefaultFirstCircuit   = "1"
	DefaultSecondCircuit  = "3"
	DefaultThirdCircuit   = "5"
	DefaultConduitSize    = "3/4"
	DefaultConductorAWG   = "6"
	DefaultGreenAWG       = "8"
	DefaultVoltage        = "208"
	DefaultPhaseType      = "3 phase"
	DefaultConductorCount = "5"
	DefaultCurrent        = "60"
	DefaultTailLength     = 10.0
)

// Price derivation multipliers. Business rule carried over verbatim from the
// quoting process; do not reapproximate.
const (
	AssembledPriceMultiplier = 6.4
	ListPriceMultiplier      = 1.33
)

// OrderEntryRow is one positional output row matching Columns.
type OrderEntryRow []string

// AutoFill carries the field values that populate an order row, either copied
// from a matched lookup row or synthesized from parsed-pattern defaults. A
// non-empty Note marks a defaulted (unmatched) fill.
type AutoFill struct {
	Receptacle          string
	CableConduitType    string
	WhipLength          float64
	TailLength          float64
	LabelColor          string
	ConduitSize         string
	ConductorAWG        string
	GreenAWG            string
	Voltage             string
	BoxType             string
	PhaseType           string
	ConductorCount      string
	Current             string
	OrderablePartNumber string
	BasePrice           float64
	AssembledPrice      float64
	ListPrice           float64
	Note                string
}
