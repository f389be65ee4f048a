package lookup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/enconnex/powerwhip-engine/internal/orderrow"
	"github.com/enconnex/powerwhip-engine/internal/pattern"
)

// Engine matches parsed patterns against a reference table. Matching here is
// strict exact-or-wildcard per field, deliberately stricter than the catalog
// resolver's substring fallback; the two pipelines trade precision and recall
// differently.
type Engine struct{}

// NewEngine creates a match engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Match returns the first table row where every one of receptacle, conduit
// type, whip length and tail length either is unspecified on the pattern or
// equals the row value case-insensitively. Nil means no match; callers must
// fall back to DefaultFill.
func (e *Engine) Match(p pattern.ParsedPattern, table *Table) *Row {
	if table == nil {
		return nil
	}

	wantReceptacle := strings.ToLower(strings.TrimSpace(p.ReceptacleToken))
	wantConduit := strings.ToLower(strings.TrimSpace(p.ConduitType))
	wantWhip := formatLength(p.WhipLength)
	wantTail := formatLength(p.TailLength)

	for i := range table.Rows {
		row := &table.Rows[i]
		if !fieldMatches(wantReceptacle, row.Receptacle) {
			continue
		}
		if !fieldMatches(wantConduit, row.CableConduitType) {
			continue
		}
		if !fieldMatches(wantWhip, row.WhipLength) {
			continue
		}
		if !fieldMatches(wantTail, row.TailLength) {
			continue
		}
		return row
	}

	return nil
}

// fieldMatches implements the wildcard-on-blank rule: an unspecified query
// field matches anything, otherwise values must be equal ignoring case.
func fieldMatches(want, have string) bool {
	if want == "" {
		return true
	}
	return want == strings.ToLower(strings.TrimSpace(have))
}

// FillFromRow copies a matched row into auto-fill data. Lengths fall back to
// the pattern's own values when the row leaves them blank.
func (e *Engine) FillFromRow(p pattern.ParsedPattern, row *Row) orderrow.AutoFill {
	fill := orderrow.AutoFill{
		Receptacle:          orFallback(row.Receptacle, p.ReceptacleToken),
		CableConduitType:    orFallback(row.CableConduitType, p.ConduitType),
		WhipLength:          lengthOr(row.WhipLength, p.WhipLength),
		TailLength:          lengthOr(row.TailLength, p.TailLength),
		LabelColor:          orFallback(row.LabelColor, p.LabelColor),
		ConduitSize:         row.ConduitSize,
		ConductorAWG:        row.ConductorAWG,
		GreenAWG:            row.GreenAWG,
		Voltage:             row.Voltage,
		BoxType:             row.BoxType,
		PhaseType:           row.PhaseType,
		ConductorCount:      row.ConductorCount,
		Current:             row.Current,
		OrderablePartNumber: row.OrderablePartNumber,
		BasePrice:           row.BasePrice,
		AssembledPrice:      row.AssembledPrice,
		ListPrice:           row.ListPrice,
	}
	return fill
}

// DefaultFill synthesizes auto-fill data from the pattern's own fields plus
// the fixed fallback constants, with a note explaining that no reference row
// matched. The row is still emitted; dropping it is never an option.
func (e *Engine) DefaultFill(p pattern.ParsedPattern) orderrow.AutoFill {
	return orderrow.AutoFill{
		Receptacle:       p.ReceptacleToken,
		CableConduitType: p.ConduitType,
		WhipLength:       p.WhipLength,
		TailLength:       p.TailLength,
		LabelColor:       p.LabelColor,
		ConduitSize:      orderrow.DefaultConduitSize,
		ConductorAWG:     orderrow.DefaultConductorAWG,
		Voltage:          orderrow.DefaultVoltage,
		Note:             fmt.Sprintf("no lookup match for %q; defaults applied", strings.TrimSpace(p.Raw)),
	}
}

func orFallback(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func lengthOr(v string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && f > 0 {
		return f
	}
	return fallback
}

func formatLength(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
