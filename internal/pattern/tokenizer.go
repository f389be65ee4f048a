package pattern

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	unitLengthRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:ft|feet|foot)\b`)
	bareNumberRe = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	tailPhraseRe = regexp.MustCompile(`(?i)(?:pigtail|tail)\s*(\d+(?:\.\d+)?)`)
)

// Tokenizer splits raw pattern lines into ordered fields. It never fails:
// malformed input degrades to empty fields and quantity 1.
type Tokenizer struct {
	maxQuantity int
}

// NewTokenizer creates a tokenizer. maxQuantity bounds explicit quantity
// suffixes; values above it are clamped.
func NewTokenizer(maxQuantity int) *Tokenizer {
	if maxQuantity <= 0 {
		maxQuantity = 500
	}
	return &Tokenizer{maxQuantity: maxQuantity}
}

// Tokenize parses one input line of the form
//
//	<receptacle>, <conduit>, <whip>[ft], <tail>[ft][, <color>][!<qty>]
//
// Missing trailing fields become empty values. A quantity suffix that is not
// a positive integer falls back to 1.
func (t *Tokenizer) Tokenize(line string) ParsedPattern {
	p := ParsedPattern{Raw: line, Quantity: 1}

	body := line
	if idx := strings.Index(line, "!"); idx >= 0 {
		body = line[:idx]
		qtyRaw := strings.TrimSpace(line[idx+1:])
		if qty, err := strconv.Atoi(qtyRaw); err == nil && qty > 0 {
			p.HasExplicitQuantity = true
			p.Quantity = qty
			if p.Quantity > t.maxQuantity {
				p.Quantity = t.maxQuantity
				p.QuantityClamped = true
			}
		}
	}

	tokens := strings.Split(body, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	if len(tokens) > 0 {
		p.ReceptacleToken = tokens[0]
	}
	if len(tokens) > 1 {
		p.ConduitType = tokens[1]
	}
	if len(tokens) > 2 {
		p.WhipLength = extractLength(tokens[2])
	}
	if len(tokens) > 3 {
		p.TailLength = extractLength(tokens[3])
	}
	if len(tokens) > 4 {
		p.LabelColor = tokens[4]
	}

	// Pigtail phrases may ride on any later token ("460R9W, EMT, 50ft,
	// Pigtail 10"); they win over positional extraction when present.
	if len(tokens) > 3 {
		for _, tok := range tokens[3:] {
			if m := tailPhraseRe.FindStringSubmatch(tok); m != nil {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil {
					p.TailLength = v
				}
				break
			}
		}
	}

	return p
}

// extractLength pulls a numeric length out of a token. A unit-suffixed value
// ("50ft") wins, then the first bare number, then 0.
func extractLength(token string) float64 {
	if m := unitLengthRe.FindStringSubmatch(token); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v
		}
	}
	if m := bareNumberRe.FindStringSubmatch(token); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v
		}
	}
	return 0
}
