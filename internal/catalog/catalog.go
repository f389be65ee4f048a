// Package catalog provides the fixed receptacle reference catalog and
// resolution of free-form receptacle tokens against it.
package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ReceptacleSpec is an immutable catalog entry describing the electrical
// characteristics of a receptacle type.
type ReceptacleSpec struct {
	StandardID  string
	Voltage     string
	Current     string
	WireGauge   string
	Description string
}

// Entry binds one alias identifier to a spec. Multiple aliases may point at
// the same spec. Order is significant: resolution walks entries first to last.
type Entry struct {
	Alias string
	Spec  ReceptacleSpec
}

// Catalog is the ordered receptacle reference table. It is populated once at
// process start and never mutated, so it is safe to share across requests.
type Catalog struct {
	entries []Entry
}

// New returns a catalog populated with the given entries.
func New(entries []Entry) *Catalog {
	return &Catalog{entries: entries}
}

// Default returns the built-in receptacle catalog covering the NEMA straight
// blade, NEMA twist-lock, California Standard and IEC 60309 pin-and-sleeve
// families used in whip assemblies.
func Default() *Catalog {
	return New(defaultEntries())
}

// Entries returns the ordered catalog entries.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of alias entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Resolve looks up a receptacle token. Exact alias match is attempted first,
// then bidirectional substring containment in catalog order. A miss is a
// normal outcome, not an error; callers default downstream.
func (c *Catalog) Resolve(token string) (ReceptacleSpec, bool) {
	key := strings.ToUpper(strings.TrimSpace(token))
	if key == "" {
		return ReceptacleSpec{}, false
	}

	for _, e := range c.entries {
		if e.Alias == key {
			return e.Spec, true
		}
	}

	for _, e := range c.entries {
		if strings.Contains(key, e.Alias) || strings.Contains(e.Alias, key) {
			return e.Spec, true
		}
	}

	return ReceptacleSpec{}, false
}

// SpecID creates a deterministic id for a catalog spec, stable across
// processes for the same standard id.
func SpecID(spec ReceptacleSpec) uuid.UUID {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	data := fmt.Sprintf("receptacle:%s:%s:%s", spec.StandardID, spec.Voltage, spec.Current)
	return uuid.NewSHA1(namespace, []byte(data))
}

func defaultEntries() []Entry {
	spec515 := ReceptacleSpec{StandardID: "5-15R", Voltage: "120", Current: "15", WireGauge: "12", Description: "NEMA 5-15R straight blade, 125V 15A"}
	spec520 := ReceptacleSpec{StandardID: "5-20R", Voltage: "120", Current: "20", WireGauge: "10", Description: "NEMA 5-20R straight blade, 125V 20A"}
	spec620 := ReceptacleSpec{StandardID: "6-20R", Voltage: "208", Current: "20", WireGauge: "10", Description: "NEMA 6-20R straight blade, 250V 20A"}
	spec630 := ReceptacleSpec{StandardID: "6-30R", Voltage: "208", Current: "30", WireGauge: "8", Description: "NEMA 6-30R straight blade, 250V 30A"}
	specL520 := ReceptacleSpec{StandardID: "L5-20R", Voltage: "120", Current: "20", WireGauge: "10", Description: "NEMA L5-20R twist-lock, 125V 20A"}
	specL530 := ReceptacleSpec{StandardID: "L5-30R", Voltage: "120", Current: "30", WireGauge: "8", Description: "NEMA L5-30R twist-lock, 125V 30A"}
	specL615 := ReceptacleSpec{StandardID: "L6-15R", Voltage: "208", Current: "15", WireGauge: "12", Description: "NEMA L6-15R twist-lock, 250V 15A"}
	specL620 := ReceptacleSpec{StandardID: "L6-20R", Voltage: "208", Current: "20", WireGauge: "10", Description: "NEMA L6-20R twist-lock, 250V 20A"}
	specL630 := ReceptacleSpec{StandardID: "L6-30R", Voltage: "208", Current: "30", WireGauge: "8", Description: "NEMA L6-30R twist-lock, 250V 30A"}
	specL1430 := ReceptacleSpec{StandardID: "L14-30R", Voltage: "120/240", Current: "30", WireGauge: "8", Description: "NEMA L14-30R twist-lock, 125/250V 30A"}
	specL1530 := ReceptacleSpec{StandardID: "L15-30R", Voltage: "208", Current: "30", WireGauge: "8", Description: "NEMA L15-30R twist-lock, 3-phase 250V 30A"}
	specL2120 := ReceptacleSpec{StandardID: "L21-20R", Voltage: "120/208", Current: "20", WireGauge: "10", Description: "NEMA L21-20R twist-lock, 3-phase Y 120/208V 20A"}
	specL2130 := ReceptacleSpec{StandardID: "L21-30R", Voltage: "120/208", Current: "30", WireGauge: "8", Description: "NEMA L21-30R twist-lock, 3-phase Y 120/208V 30A"}
	specL2230 := ReceptacleSpec{StandardID: "L22-30R", Voltage: "277/480", Current: "30", WireGauge: "8", Description: "NEMA L22-30R twist-lock, 3-phase Y 277/480V 30A"}
	specCS8264 := ReceptacleSpec{StandardID: "CS8264C", Voltage: "208", Current: "50", WireGauge: "6", Description: "California Standard CS8264C connector, 250V 50A"}
	specCS8269 := ReceptacleSpec{StandardID: "CS8269A", Voltage: "480", Current: "50", WireGauge: "6", Description: "California Standard CS8269A receptacle, 3-phase 480V 50A"}
	spec460R9W := ReceptacleSpec{StandardID: "460R9W", Voltage: "480", Current: "60", WireGauge: "6", Description: "IEC 60309 460R9W pin and sleeve receptacle, 3-phase 480V 60A"}
	spec460C9W := ReceptacleSpec{StandardID: "460C9W", Voltage: "480", Current: "60", WireGauge: "6", Description: "IEC 60309 460C9W pin and sleeve connector, 3-phase 480V 60A"}
	spec560R9W := ReceptacleSpec{StandardID: "560R9W", Voltage: "277/480", Current: "60", WireGauge: "6", Description: "IEC 60309 560R9W pin and sleeve receptacle, 3-phase Y 277/480V 60A"}
	spec532R6W := ReceptacleSpec{StandardID: "532R6W", Voltage: "120/208", Current: "32", WireGauge: "8", Description: "IEC 60309 532R6W pin and sleeve receptacle, 3-phase Y 120/208V 32A"}

	// Longer aliases precede shorter ones within a family so substring
	// fallback stays deterministic.
	return []Entry{
		{Alias: "CS8269A", Spec: specCS8269},
		{Alias: "CS8269", Spec: specCS8269},
		{Alias: "CS8264C", Spec: specCS8264},
		{Alias: "CS8264", Spec: specCS8264},
		{Alias: "460R9W", Spec: spec460R9W},
		{Alias: "460C9W", Spec: spec460C9W},
		{Alias: "560R9W", Spec: spec560R9W},
		{Alias: "532R6W", Spec: spec532R6W},
		{Alias: "L14-30R", Spec: specL1430},
		{Alias: "L15-30R", Spec: specL1530},
		{Alias: "L21-20R", Spec: specL2120},
		{Alias: "L21-30R", Spec: specL2130},
		{Alias: "L22-30R", Spec: specL2230},
		{Alias: "L5-20R", Spec: specL520},
		{Alias: "L5-30R", Spec: specL530},
		{Alias: "L6-15R", Spec: specL615},
		{Alias: "L6-20R", Spec: specL620},
		{Alias: "L6-30R", Spec: specL630},
		{Alias: "L520R", Spec: specL520},
		{Alias: "L530R", Spec: specL530},
		{Alias: "L615R", Spec: specL615},
		{Alias: "L620R", Spec: specL620},
		{Alias: "L630R", Spec: specL630},
		{Alias: "5-15R", Spec: spec515},
		{Alias: "5-20R", Spec: spec520},
		{Alias: "6-20R", Spec: spec620},
		{Alias: "6-30R", Spec: spec630},
	}
}
