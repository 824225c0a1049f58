package main

import (
	"fmt"
	"strconv"

	"quotefinder/internal/finder"
	"quotefinder/internal/transcript"
)

func formatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

func formatMatch(m finder.Match) string {
	return fmt.Sprintf("[%s] score=%s :: %s", m.Timestamp, formatScore(m.Score), m.Text)
}

// renderMatchText lays out matches in the plain line-oriented report. Only the
// best_match line is colorized.
func renderMatchText(result finder.Result, colorize bool) []string {
	best, ok := result.Best()
	if !ok {
		return nil
	}
	lines := make([]string, 0, 3+2*len(result.Matches))
	lines = append(lines,
		paint("best_match: "+formatMatch(best), ansiGreen, colorize),
		"best_link: "+best.Link,
		"candidates:",
	)
	for _, m := range result.Matches {
		lines = append(lines,
			"- "+formatMatch(m),
			"  link: "+m.Link,
		)
	}
	return lines
}

// renderMatchTable shows times in canonical form, so a transcript's "0:75"
// reads as "1:15".
func renderMatchTable(result finder.Result) string {
	rows := make([][]string, 0, len(result.Matches))
	for i, m := range result.Matches {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			transcript.Format(m.Seconds),
			formatScore(m.Score),
			m.Text,
			m.Link,
		})
	}
	return renderTable(
		[]string{"#", "Time", "Score", "Text", "Link"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignLeft, alignLeft},
	)
}

type findPayload struct {
	Ref              string         `json:"ref"`
	Quote            string         `json:"quote"`
	TimestampedLines int            `json:"timestamped_lines"`
	Best             *finder.Match  `json:"best"`
	Matches          []finder.Match `json:"matches"`
}

func newFindPayload(result finder.Result) findPayload {
	payload := findPayload{
		Ref:              result.Ref,
		Quote:            result.Quote,
		TimestampedLines: result.TimestampedLines,
		Matches:          result.Matches,
	}
	if payload.Matches == nil {
		payload.Matches = []finder.Match{}
	}
	if best, ok := result.Best(); ok {
		payload.Best = &best
	}
	return payload
}
