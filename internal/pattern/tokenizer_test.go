package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizer_FullPattern(t *testing.T) {
	tok := NewTokenizer(500)

	p := tok.Tokenize("L6-30R, LFMC, 30 ft, pigtail 10, Red/White!2")

	assert.Equal(t, "L6-30R", p.ReceptacleToken)
	assert.Equal(t, "LFMC", p.ConduitType)
	assert.Equal(t, 30.0, p.WhipLength)
	assert.Equal(t, 10.0, p.TailLength)
	assert.Equal(t, "Red/White", p.LabelColor)
	assert.Equal(t, 2, p.Quantity)
	assert.True(t, p.HasExplicitQuantity)
	assert.False(t, p.QuantityClamped)
}

func TestTokenizer_ReceptacleOnly(t *testing.T) {
	tok := NewTokenizer(500)

	p := tok.Tokenize("CS8269A")

	assert.Equal(t, "CS8269A", p.ReceptacleToken)
	assert.Empty(t, p.ConduitType)
	assert.Zero(t, p.WhipLength)
	assert.Zero(t, p.TailLength)
	assert.Equal(t, 1, p.Quantity)
	assert.False(t, p.HasExplicitQuantity)
}

func TestTokenizer_QuantitySuffix(t *testing.T) {
	tok := NewTokenizer(500)

	tests := []struct {
		name     string
		line     string
		quantity int
		explicit bool
		clamped  bool
	}{
		{"plain positive", "L6-30R!5", 5, true, false},
		{"zero falls back", "L6-30R!0", 1, false, false},
		{"negative falls back", "L6-30R!-3", 1, false, false},
		{"garbage falls back", "L6-30R!many", 1, false, false},
		{"empty suffix falls back", "L6-30R!", 1, false, false},
		{"clamped to max", "L6-30R!9999", 500, true, true},
		{"whitespace tolerated", "L6-30R! 12", 12, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tok.Tokenize(tt.line)
			assert.Equal(t, tt.quantity, p.Quantity)
			assert.Equal(t, tt.explicit, p.HasExplicitQuantity)
			assert.Equal(t, tt.clamped, p.QuantityClamped)
			assert.Equal(t, "L6-30R", p.ReceptacleToken, "quantity suffix must not leak into fields")
		})
	}
}

func TestTokenizer_LengthExtraction(t *testing.T) {
	tok := NewTokenizer(500)

	tests := []struct {
		name string
		line string
		whip float64
		tail float64
	}{
		{"unit suffix", "460R9W, EMT, 50ft, 10ft", 50, 10},
		{"spelled out unit", "460R9W, EMT, 25 feet, 10 foot", 25, 10},
		{"bare numbers", "460R9W, EMT, 75, 15", 75, 15},
		{"decimal lengths", "460R9W, EMT, 12.5ft, 2.5", 12.5, 2.5},
		{"no numbers", "460R9W, EMT, long, short", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tok.Tokenize(tt.line)
			assert.Equal(t, tt.whip, p.WhipLength)
			assert.Equal(t, tt.tail, p.TailLength)
		})
	}
}

func TestTokenizer_PigtailPhraseOverridesPositional(t *testing.T) {
	tok := NewTokenizer(500)

	p := tok.Tokenize("460R9W, EMT, 50ft, Pigtail 6")
	assert.Equal(t, 6.0, p.TailLength)

	// The phrase may ride on a later token than the tail position.
	p = tok.Tokenize("460R9W, EMT, 50ft, 4, red, tail 8")
	assert.Equal(t, 8.0, p.TailLength)
}

func TestTokenizer_NeverFails(t *testing.T) {
	tok := NewTokenizer(500)

	for _, line := range []string{"", "   ", ",,,,,", "!!!", ", , , , , !x"} {
		p := tok.Tokenize(line)
		assert.Equal(t, 1, p.Quantity, "line %q", line)
		assert.Equal(t, line, p.Raw)
	}
}
