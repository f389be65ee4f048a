package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enconnex/powerwhip-engine/internal/catalog"
	"github.com/enconnex/powerwhip-engine/internal/lookup"
	"github.com/enconnex/powerwhip-engine/internal/orderrow"
	"github.com/enconnex/powerwhip-engine/internal/pattern"
)

func TestCatalogResolver_Hit(t *testing.T) {
	r := NewCatalogResolver(catalog.Default(), 0)

	p := pattern.ParsedPattern{
		ReceptacleToken: "CS8269A",
		ConduitType:     "liquid tight",
		WhipLength:      50,
		TailLength:      10,
	}
	res := r.Resolve(p)

	assert.True(t, res.Matched)
	assert.Equal(t, "CS8269A", res.Fill.Receptacle)
	assert.Equal(t, "480", res.Fill.Voltage)
	assert.Equal(t, "50", res.Fill.Current)
	assert.Equal(t, "6", res.Fill.ConductorAWG)
	assert.Equal(t, "LFMC", res.Fill.CableConduitType, "conduit phrase standardized")
	assert.Empty(t, res.Fill.Note)
	assert.InDelta(t, 0.9, res.Confidence, 1e-9)
}

func TestCatalogResolver_TailDefaultsWithoutInflatingConfidence(t *testing.T) {
	r := NewCatalogResolver(catalog.Default(), 0)

	p := pattern.ParsedPattern{ReceptacleToken: "CS8269A", ConduitType: "LFMC", WhipLength: 50}
	res := r.Resolve(p)

	assert.Equal(t, orderrow.DefaultTailLength, res.Fill.TailLength)
	// The tail bonus keys off the parsed value, not the defaulted one.
	assert.InDelta(t, 0.8, res.Confidence, 1e-9)
}

func TestCatalogResolver_Miss(t *testing.T) {
	r := NewCatalogResolver(catalog.Default(), 0)

	p := pattern.ParsedPattern{ReceptacleToken: "unknown99"}
	res := r.Resolve(p)

	assert.False(t, res.Matched)
	assert.Equal(t, "UNKNOWN99", res.Fill.Receptacle)
	assert.Equal(t, orderrow.DefaultConduitSize, res.Fill.ConduitSize)
	assert.Equal(t, orderrow.DefaultConductorAWG, res.Fill.ConductorAWG)
	assert.Equal(t, orderrow.DefaultVoltage, res.Fill.Voltage)
	assert.Contains(t, res.Fill.Note, "not in catalog")
	assert.InDelta(t, 0.5, res.Confidence, 1e-9)
}

func TestLookupResolver_MatchAndMiss(t *testing.T) {
	table, err := lookup.LoadTable("reference.xlsx", [][]string{
		{"Choose receptacle", "Whip Length (ft)", "Voltage", "base price"},
		{"L6-30R", "30", "208", "100"},
	})
	require.NoError(t, err)

	r := NewLookupResolver(table)

	res := r.Resolve(pattern.ParsedPattern{ReceptacleToken: "L6-30R", WhipLength: 30})
	assert.True(t, res.Matched)
	assert.Equal(t, 1.0, res.Confidence)
	assert.Equal(t, 100.0, res.Fill.BasePrice)
	require.NotNil(t, res.MatchedRow)
	assert.Equal(t, "L6-30R", res.MatchedRow.Receptacle)

	res = r.Resolve(pattern.ParsedPattern{Raw: "L6-30R, , 40", ReceptacleToken: "L6-30R", WhipLength: 40})
	assert.False(t, res.Matched)
	assert.Contains(t, res.Fill.Note, "no lookup match")
	assert.Less(t, res.Confidence, 1.0)
	assert.Nil(t, res.MatchedRow)
}
