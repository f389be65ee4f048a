package pattern

import "strings"

// synonym is one ordered (match, canonical) pair. Matching is bidirectional
// substring containment, so list order decides ties and must not be reordered.
type synonym struct {
	match     string
	canonical string
}

// conduitSynonyms maps free-form cable/conduit phrases to the standardized
// vocabulary. Longer phrases precede the short codes they contain: "metal
// conduit" sits below the liquid-tight entries, and the two-letter "mc" code
// is last so it cannot shadow "lmzc".
var conduitSynonyms = []synonym{
	{"liquid tight flexible metal conduit", "LFMC"},
	{"liquid tight", "LFMC"},
	{"liquidtight", "LFMC"},
	{"lfmc", "LFMC"},
	{"lmzc", "LMZC"},
	{"armored cable", "MC"},
	{"armoured cable", "MC"},
	{"metal conduit", "EMT"},
	{"emt", "EMT"},
	{"flexible metal conduit", "FMC"},
	{"fmc", "FMC"},
	{"so cord", "SO"},
	{"soow", "SO"},
	{"mc", "MC"},
}

// labelColorSynonyms standardizes label color phrases to the catalog's
// Background/Text notation.
var labelColorSynonyms = []synonym{
	{"red/white", "Red/White"},
	{"blue/white", "Blue/White"},
	{"green/white", "Green/White"},
	{"black/white", "Black/White"},
	{"yellow/black", "Yellow/Black"},
	{"white/black", "White/Black"},
	{"red", "Red"},
	{"blue", "Blue"},
	{"green", "Green"},
	{"black", "Black"},
	{"yellow", "Yellow"},
	{"orange", "Orange"},
	{"white", "White"},
}

// Normalizer maps free-form tokens to standardized vocabulary, one field at
// a time.
type Normalizer struct {
	conduits []synonym
	colors   []synonym
}

// NewNormalizer creates a normalizer with the built-in synonym tables.
func NewNormalizer() *Normalizer {
	return &Normalizer{conduits: conduitSynonyms, colors: labelColorSynonyms}
}

// NormalizeConduit standardizes a cable/conduit phrase. An exact match is
// attempted first so the short codes cannot be captured by longer phrases
// that contain them ("fmc" inside "lfmc"); after that the first synonym that
// contains the input, or is contained by it, wins. Unrecognized input passes
// through upper-cased.
func (n *Normalizer) NormalizeConduit(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	for _, s := range n.conduits {
		if lower == s.match {
			return s.canonical
		}
	}
	for _, s := range n.conduits {
		if strings.Contains(lower, s.match) || strings.Contains(s.match, lower) {
			return s.canonical
		}
	}

	return strings.ToUpper(trimmed)
}

// NormalizeLabelColor standardizes a label color phrase. Unrecognized input
// passes through unchanged apart from trimming.
func (n *Normalizer) NormalizeLabelColor(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	for _, s := range n.colors {
		if lower == s.match {
			return s.canonical
		}
	}

	return trimmed
}
