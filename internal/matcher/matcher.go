package matcher

import (
	"cmp"
	"log/slog"
	"slices"

	"quotefinder/internal/logging"
	"quotefinder/internal/transcript"
)

const (
	// DefaultRelevanceFloor is the minimum score a line needs to be reported.
	DefaultRelevanceFloor = 0.35
	// DefaultMaxCandidates caps the ranked result list.
	DefaultMaxCandidates = 5
	// DefaultWordWeight is the blend weight of the word-overlap ratio.
	DefaultWordWeight = 0.6
	// DefaultSequenceWeight is the blend weight of the sequence ratio.
	DefaultSequenceWeight = 0.4
)

// Candidate is a transcript line that cleared the relevance floor.
type Candidate struct {
	Score     float64 `json:"score"`
	Timestamp string  `json:"timestamp"`
	Seconds   int     `json:"seconds"`
	Text      string  `json:"text"`
	// Line is the zero-based row of the candidate in the transcript text.
	Line int `json:"line"`
}

// Options configures matching policy. Zero values fall back to the defaults.
type Options struct {
	RelevanceFloor float64
	MaxCandidates  int
	Weights        Weights
	Logger         *slog.Logger
}

// Matcher ranks transcript lines against a quote.
type Matcher struct {
	floor   float64
	limit   int
	weights Weights
	logger  *slog.Logger
}

// New constructs a Matcher from opts.
func New(opts Options) *Matcher {
	m := &Matcher{
		floor:   opts.RelevanceFloor,
		limit:   opts.MaxCandidates,
		weights: opts.Weights,
		logger:  logging.NewComponentLogger(opts.Logger, "matcher"),
	}
	if m.floor <= 0 {
		m.floor = DefaultRelevanceFloor
	}
	if m.limit <= 0 {
		m.limit = DefaultMaxCandidates
	}
	if m.weights == (Weights{}) {
		m.weights = DefaultWeights()
	}
	return m
}

// Match scores every timestamped line of text against quote and returns up to
// the configured number of candidates, best first. Ties keep transcript order.
// An empty slice means nothing cleared the relevance floor.
func (m *Matcher) Match(text, quote string) []Candidate {
	return m.MatchLines(transcript.Parse(text), quote)
}

// MatchLines is Match over lines that were already parsed.
func (m *Matcher) MatchLines(lines []transcript.Line, quote string) []Candidate {
	candidates := make([]Candidate, 0, len(lines))
	for _, line := range lines {
		score := m.weights.Score(quote, line.Text)
		if score < m.floor {
			continue
		}
		candidates = append(candidates, Candidate{
			Score:     score,
			Timestamp: line.Timestamp,
			Seconds:   line.Seconds,
			Text:      line.Text,
			Line:      line.Index,
		})
	}
	kept := len(candidates)

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(candidates) > m.limit {
		candidates = candidates[:m.limit]
	}

	m.logger.Debug("transcript scored",
		logging.Int("timestamped_lines", len(lines)),
		logging.Int("above_floor", kept),
		logging.Int("returned", len(candidates)),
		logging.Float64("relevance_floor", m.floor),
	)
	return candidates
}

// Match ranks text against quote with the default policy.
func Match(text, quote string) []Candidate {
	return New(Options{}).Match(text, quote)
}
