// Package lookup provides the MasterBubbleLookup reference table and the
// exact-or-wildcard pattern match engine over it.
package lookup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidTable marks a reference file that cannot serve as a lookup table.
// This is the one fatal condition of the matching path; per-line problems
// never surface as errors.
var ErrInvalidTable = errors.New("invalid lookup table")

// Row is one reference row. All fields are kept as strings exactly as read;
// matching lower-cases both sides and compares for equality.
type Row struct {
	Receptacle          string  `json:"receptacle"`
	CableConduitType    string  `json:"cableConduitType"`
	WhipLength          string  `json:"whipLength"`
	TailLength          string  `json:"tailLength"`
	LabelColor          string  `json:"labelColor"`
	ConduitSize         string  `json:"conduitSize"`
	ConductorAWG        string  `json:"conductorAWG"`
	GreenAWG            string  `json:"greenAWG"`
	Voltage             string  `json:"voltage"`
	BoxType             string  `json:"boxType"`
	PhaseType           string  `json:"phaseType"`
	ConductorCount      string  `json:"conductorCount"`
	Current             string  `json:"current"`
	OrderablePartNumber string  `json:"orderablePartNumber"`
	BasePrice           float64 `json:"basePrice"`
	AssembledPrice      float64 `json:"assembledPrice"`
	ListPrice           float64 `json:"listPrice"`
}

// Table is one loaded reference table. Tables are immutable after load and
// swapped wholesale on re-upload; concurrent sessions each hold their own.
type Table struct {
	ID       uuid.UUID `json:"id"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loadedAt"`
	Rows     []Row     `json:"rows"`
}

// columnAliases maps header cell text fragments to Row field setters. First
// matching fragment wins per header cell.
var columnAliases = []struct {
	fragment string
	assign   func(*Row, string)
}{
	{"receptacle", func(r *Row, v string) { r.Receptacle = v }},
	{"cable/conduit", func(r *Row, v string) { r.CableConduitType = v }},
	{"conduit type", func(r *Row, v string) { r.CableConduitType = v }},
	{"whip length", func(r *Row, v string) { r.WhipLength = v }},
	{"tail length", func(r *Row, v string) { r.TailLength = v }},
	{"label color", func(r *Row, v string) { r.LabelColor = v }},
	{"conduit size", func(r *Row, v string) { r.ConduitSize = v }},
	{"conductor awg", func(r *Row, v string) { r.ConductorAWG = v }},
	{"green awg", func(r *Row, v string) { r.GreenAWG = v }},
	{"voltage", func(r *Row, v string) { r.Voltage = v }},
	{"box", func(r *Row, v string) { r.BoxType = v }},
	{"phase type", func(r *Row, v string) { r.PhaseType = v }},
	{"conductor count", func(r *Row, v string) { r.ConductorCount = v }},
	{"current", func(r *Row, v string) { r.Current = v }},
	{"orderable part", func(r *Row, v string) { r.OrderablePartNumber = v }},
	{"base price", func(r *Row, v string) { r.BasePrice = parsePrice(v) }},
	{"assembled price", func(r *Row, v string) { r.AssembledPrice = parsePrice(v) }},
	{"list price", func(r *Row, v string) { r.ListPrice = parsePrice(v) }},
}

// LoadTable builds a Table from a raw sheet grid. The first row must be a
// header containing at least a receptacle column; anything less is a fatal
// ErrInvalidTable, since no meaningful match can come from it.
func LoadTable(source string, grid [][]string) (*Table, error) {
	if len(grid) < 2 {
		return nil, fmt.Errorf("%w: need a header row and at least one data row, got %d rows", ErrInvalidTable, len(grid))
	}

	header := grid[0]
	setters := make([]func(*Row, string), len(header))
	hasReceptacle := false
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		for _, alias := range columnAliases {
			if strings.Contains(name, alias.fragment) {
				setters[i] = alias.assign
				if alias.fragment == "receptacle" {
					hasReceptacle = true
				}
				break
			}
		}
	}
	if !hasReceptacle {
		return nil, fmt.Errorf("%w: header has no receptacle column", ErrInvalidTable)
	}

	table := &Table{
		ID:       uuid.New(),
		Source:   source,
		LoadedAt: time.Now().UTC(),
	}

	for _, cells := range grid[1:] {
		var row Row
		empty := true
		for i, v := range cells {
			v = strings.TrimSpace(v)
			if v == "" || i >= len(setters) || setters[i] == nil {
				continue
			}
			setters[i](&row, v)
			empty = false
		}
		if !empty {
			table.Rows = append(table.Rows, row)
		}
	}

	return table, nil
}

func parsePrice(v string) float64 {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(v), "$"))
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}
