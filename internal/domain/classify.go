package domain

import (
	"math/rand/v2"
	"strings"
)

// Sampler supplies the random draws behind synthetic classification and
// identifier synthesis. The orchestrator depends on this capability rather
// than a concrete generator so tests can script exact sequences.
type Sampler interface {
	// IntN returns a value in [0, n). n must be > 0.
	IntN(n int) int
}

type randSampler struct{}

func (randSampler) IntN(n int) int { return rand.IntN(n) }

// NewSampler returns the production Sampler backed by math/rand/v2.
func NewSampler() Sampler { return randSampler{} }

// weightedChoice pairs a candidate label with its weight out of 100.
type weightedChoice struct {
	label  string
	weight int
}

// Fixed categorical distributions, biased toward low/stable. These are not
// measurements; no upstream field carries severity or trend (see package doc).
var (
	severityChoices = []weightedChoice{
		{SeverityLow, 60},
		{SeverityMedium, 25},
		{SeverityHigh, 10},
		{SeverityCritical, 5},
	}
	trendChoices = []weightedChoice{
		{TrendStable, 70},
		{TrendImproving, 15},
		{TrendEscalating, 15},
	}
)

// Classify assigns severity, trend, and confidence for a record. Draw order
// is fixed: severity, then trend, then confidence. A status containing
// "Construction" forces severity to medium regardless of the severity draw.
func Classify(s Sampler, status string) (severity, trend string, confidence int) {
	severity = pickWeighted(s, severityChoices)
	trend = pickWeighted(s, trendChoices)
	confidence = 55 + s.IntN(45)

	if strings.Contains(status, StatusConstruction) {
		severity = SeverityMedium
	}
	return severity, trend, confidence
}

func pickWeighted(s Sampler, choices []weightedChoice) string {
	total := 0
	for _, c := range choices {
		total += c.weight
	}
	draw := s.IntN(total)
	for _, c := range choices {
		draw -= c.weight
		if draw < 0 {
			return c.label
		}
	}
	return choices[len(choices)-1].label
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// SyntheticNodeID builds a "node-" prefixed identifier for legacy entries
// that arrive without one. Uniqueness is probabilistic, not guaranteed.
func SyntheticNodeID(s Sampler) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idAlphabet[s.IntN(len(idAlphabet))]
	}
	return "node-" + string(suffix)
}
