package matcher

import (
	"strings"

	"quotefinder/internal/textutil"
)

// Weights controls how the word-overlap and sequence signals are blended.
type Weights struct {
	Word     float64
	Sequence float64
}

// DefaultWeights returns the standard 0.6/0.4 blend.
func DefaultWeights() Weights {
	return Weights{Word: DefaultWordWeight, Sequence: DefaultSequenceWeight}
}

// Score rates how well line matches quote on a 0..1 scale using the default
// weights.
func Score(quote, line string) float64 {
	return DefaultWeights().Score(quote, line)
}

// Score rates how well line matches quote on a 0..1 scale.
//
// Empty input after normalization scores 0. A normalized quote contained in
// the normalized line scores exactly 1. Otherwise the result is the weighted
// sum of the word-overlap and sequence ratios.
func (w Weights) Score(quote, line string) float64 {
	q := textutil.Normalize(quote)
	l := textutil.Normalize(line)
	if q == "" || l == "" {
		return 0
	}
	if strings.Contains(l, q) {
		return 1
	}
	overlap := textutil.WordOverlap(q, l)
	ratio := textutil.SequenceRatio(q, l)
	// Explicit conversions forbid FMA fusion; scores must not vary by GOARCH.
	return float64(w.Word*overlap) + float64(w.Sequence*ratio)
}
