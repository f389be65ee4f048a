package pattern

import "strings"

// Confidence weights. The additive order is part of the contract: base, then
// receptacle, conduit, whip, tail.
const (
	confidenceBase       = 0.5
	confidenceReceptacle = 0.3
	confidenceConduit    = 0.15
	confidenceWhip       = 0.15
	confidenceTail       = 0.10
)

// Scorer computes an advisory [0,1] confidence for a parsed pattern. Low
// scores flag rows for human review; they never block output generation.
type Scorer struct{}

// NewScorer creates a confidence scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score applies the additive rule: start at 0.5, add 0.3 when the receptacle
// resolved to a catalog entry whose standardized id differs from the raw
// token, 0.15 for a non-empty normalized conduit, 0.15 for whip > 0 and 0.10
// for tail > 0, clamped at 1.0.
func (s *Scorer) Score(p ParsedPattern, resolved bool, standardID, conduit string, whip, tail float64) float64 {
	score := confidenceBase

	if resolved && !strings.EqualFold(strings.TrimSpace(p.ReceptacleToken), standardID) {
		score += confidenceReceptacle
	}
	if conduit != "" {
		score += confidenceConduit
	}
	if whip > 0 {
		score += confidenceWhip
	}
	if tail > 0 {
		score += confidenceTail
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
