// Package pattern provides tokenizing, field normalization and confidence
// scoring for power whip pattern lines.
package pattern

// ParsedPattern is the best-effort result of tokenizing one input line.
// Unset fields are empty strings or zero lengths; downstream stages treat
// those as wildcards or apply documented defaults.
type ParsedPattern struct {
	Raw                 string
	ReceptacleToken     string
	ConduitType         string
	WhipLength          float64
	TailLength          float64
	LabelColor          string
	Quantity            int
	HasExplicitQuantity bool
	QuantityClamped     bool
}
