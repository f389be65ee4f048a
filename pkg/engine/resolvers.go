// Package engine ties the pattern pipelines together: tokenize, resolve,
// score, and build order entry rows.
package engine

import (
	"fmt"
	"strings"

	"github.com/enconnex/powerwhip-engine/internal/catalog"
	"github.com/enconnex/powerwhip-engine/internal/lookup"
	"github.com/enconnex/powerwhip-engine/internal/orderrow"
	"github.com/enconnex/powerwhip-engine/internal/pattern"
)

// Resolution is one resolver's answer for a parsed pattern. Fill is always
// usable: unmatched patterns carry defaults plus an explanatory note, never
// an error. MatchedRow is the winning reference row on the lookup path, nil
// on a miss and always nil on the catalog path.
type Resolution struct {
	Fill       orderrow.AutoFill
	Confidence float64
	Matched    bool
	MatchedRow *lookup.Row
}

// PatternResolver turns a parsed pattern into auto-fill data. The catalog
// resolver and the lookup-table resolver implement it; row building and
// defaulting are shared downstream.
type PatternResolver interface {
	Name() string
	Resolve(p pattern.ParsedPattern) Resolution
}

// CatalogResolver resolves patterns against the static receptacle catalog,
// producing PreSal-style fills. Receptacle matching allows substring
// fallback, which trades precision for recall on free-form input.
type CatalogResolver struct {
	catalog     *catalog.Catalog
	normalizer  *pattern.Normalizer
	scorer      *pattern.Scorer
	defaultTail float64
}

// NewCatalogResolver creates a catalog resolver. defaultTail is applied when
// a pattern carries no tail length; 0 means the builtin 10 ft.
func NewCatalogResolver(cat *catalog.Catalog, defaultTail float64) *CatalogResolver {
	if cat == nil {
		cat = catalog.Default()
	}
	if defaultTail <= 0 {
		defaultTail = orderrow.DefaultTailLength
	}
	return &CatalogResolver{
		catalog:     cat,
		normalizer:  pattern.NewNormalizer(),
		scorer:      pattern.NewScorer(),
		defaultTail: defaultTail,
	}
}

// Name identifies the pipeline in logs and batch records.
func (r *CatalogResolver) Name() string { return "catalog" }

// Resolve looks the receptacle up in the catalog and fills electrical data
// from the catalog entry. Unresolved receptacles degrade to the fixed
// defaults with a note; the line always produces output.
func (r *CatalogResolver) Resolve(p pattern.ParsedPattern) Resolution {
	conduit := r.normalizer.NormalizeConduit(p.ConduitType)
	color := r.normalizer.NormalizeLabelColor(p.LabelColor)

	tail := p.TailLength
	if tail <= 0 {
		tail = r.defaultTail
	}

	spec, found := r.catalog.Resolve(p.ReceptacleToken)
	fill := orderrow.AutoFill{
		CableConduitType: conduit,
		WhipLength:       p.WhipLength,
		TailLength:       tail,
		LabelColor:       color,
	}

	if found {
		fill.Receptacle = spec.StandardID
		fill.Voltage = spec.Voltage
		fill.Current = spec.Current
		fill.ConductorAWG = spec.WireGauge
	} else {
		fill.Receptacle = strings.ToUpper(strings.TrimSpace(p.ReceptacleToken))
		fill.ConduitSize = orderrow.DefaultConduitSize
		fill.ConductorAWG = orderrow.DefaultConductorAWG
		fill.Voltage = orderrow.DefaultVoltage
		fill.Note = fmt.Sprintf("receptacle %q not in catalog; defaults applied", strings.TrimSpace(p.ReceptacleToken))
	}

	confidence := r.scorer.Score(p, found, fill.Receptacle, conduit, p.WhipLength, p.TailLength)

	return Resolution{Fill: fill, Confidence: confidence, Matched: found}
}

// LookupResolver resolves patterns against an uploaded reference table using
// strict exact-or-wildcard matching. The table is held per resolver instance,
// never process-wide: concurrent sessions build their own resolver.
type LookupResolver struct {
	engine *lookup.Engine
	table  *lookup.Table
	scorer *pattern.Scorer
}

// NewLookupResolver creates a lookup resolver bound to one table.
func NewLookupResolver(table *lookup.Table) *LookupResolver {
	return &LookupResolver{
		engine: lookup.NewEngine(),
		table:  table,
		scorer: pattern.NewScorer(),
	}
}

// Name identifies the pipeline in logs and batch records.
func (r *LookupResolver) Name() string { return "lookup" }

// Resolve matches the pattern against the table. A match copies the row's
// pricing and part data; a miss synthesizes defaults with a note.
func (r *LookupResolver) Resolve(p pattern.ParsedPattern) Resolution {
	if row := r.engine.Match(p, r.table); row != nil {
		return Resolution{
			Fill:       r.engine.FillFromRow(p, row),
			Confidence: 1.0,
			Matched:    true,
			MatchedRow: row,
		}
	}

	fill := r.engine.DefaultFill(p)
	confidence := r.scorer.Score(p, false, fill.Receptacle, p.ConduitType, p.WhipLength, p.TailLength)
	return Resolution{Fill: fill, Confidence: confidence, Matched: false}
}
