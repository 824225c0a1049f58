// Package finder runs the quote search pipeline: fetch the transcript, rank
// its lines against the quote, and attach a playback link to every match.
package finder

import (
	"context"
	"log/slog"

	"quotefinder/internal/link"
	"quotefinder/internal/logging"
	"quotefinder/internal/matcher"
	"quotefinder/internal/source"
	"quotefinder/internal/transcript"
)

// SourceError reports that the transcript could not be obtained. Its message
// is the underlying cause's message.
type SourceError struct {
	Ref string
	Err error
}

func (e *SourceError) Error() string {
	if e.Err == nil {
		return "transcript source failed"
	}
	return e.Err.Error()
}

func (e *SourceError) Unwrap() error { return e.Err }

// Match is a ranked candidate with its playback link.
type Match struct {
	matcher.Candidate
	Link string `json:"link"`
}

// Result is the outcome of one search.
type Result struct {
	Ref     string  `json:"ref"`
	Quote   string  `json:"quote"`
	Matches []Match `json:"matches"`
	// TimestampedLines is the number of transcript lines that were scored.
	TimestampedLines int `json:"timestamped_lines"`
}

// Best returns the top match. ok is false when nothing cleared the floor.
func (r Result) Best() (Match, bool) {
	if len(r.Matches) == 0 {
		return Match{}, false
	}
	return r.Matches[0], true
}

// Finder wires a transcript source to a matcher.
type Finder struct {
	source  source.Source
	matcher *matcher.Matcher
	logger  *slog.Logger
}

// New constructs a Finder. A nil matcher uses the default policy.
func New(src source.Source, m *matcher.Matcher, logger *slog.Logger) *Finder {
	if m == nil {
		m = matcher.New(matcher.Options{Logger: logger})
	}
	return &Finder{
		source:  src,
		matcher: m,
		logger:  logging.NewComponentLogger(logger, "finder"),
	}
}

// Find searches the transcript of ref for quote. A transcript with no line at
// or above the relevance floor yields a Result without matches and a nil
// error; only a failing source is an error.
func (f *Finder) Find(ctx context.Context, ref, quote string) (Result, error) {
	result := Result{Ref: ref, Quote: quote, Matches: []Match{}}

	text, err := f.source.Fetch(ctx, ref)
	if err != nil {
		f.logger.Debug("transcript fetch failed",
			logging.String(logging.FieldEventType, "source_failure"),
			logging.String("ref", ref),
			logging.Error(err),
		)
		return result, &SourceError{Ref: ref, Err: err}
	}

	lines := transcript.Parse(text)
	result.TimestampedLines = len(lines)
	candidates := f.matcher.MatchLines(lines, quote)
	for _, c := range candidates {
		result.Matches = append(result.Matches, Match{
			Candidate: c,
			Link:      link.BuildSeconds(ref, c.Seconds),
		})
	}

	if best, ok := result.Best(); ok {
		f.logger.Info("quote located",
			logging.String("timestamp", best.Timestamp),
			logging.Float64("score", best.Score),
			logging.Int("candidates", len(result.Matches)),
		)
	} else {
		f.logger.Info("no line cleared the relevance floor",
			logging.Int("timestamped_lines", result.TimestampedLines),
		)
	}
	return result, nil
}
