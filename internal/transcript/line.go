package transcript

import (
	"regexp"
	"unicode/utf8"
)

// linePattern matches "[H:MM:SS] body" or "[M:SS] body". The gap after the
// bracket may be any Unicode whitespace, including the ASCII separators
// \x1c-\x1f.
var linePattern = regexp.MustCompile(`^\[([0-9]{1,2}:[0-9]{2}(?::[0-9]{2})?)\][\s\x0b\x1c-\x1f\x85\p{Z}]*(.*)$`)

// Line is a single timestamped transcript row.
type Line struct {
	// Index is the zero-based row position in the source text.
	Index     int
	Timestamp string
	Seconds   int
	Text      string
}

// ParseLine extracts the timestamp and body from a transcript row.
// The boolean is false when the row has no recognized timestamp prefix.
func ParseLine(row string) (Line, bool) {
	m := linePattern.FindStringSubmatch(row)
	if m == nil {
		return Line{}, false
	}
	seconds, err := Seconds(m[1])
	if err != nil {
		return Line{}, false
	}
	return Line{
		Timestamp: m[1],
		Seconds:   seconds,
		Text:      m[2],
	}, true
}

// Parse returns every timestamped line in text, in source order.
func Parse(text string) []Line {
	rows := SplitRows(text)
	lines := make([]Line, 0, len(rows))
	for idx, row := range rows {
		line, ok := ParseLine(row)
		if !ok {
			continue
		}
		line.Index = idx
		lines = append(lines, line)
	}
	return lines
}

// SplitRows splits text into rows at every line boundary: \n, \r, \r\n,
// \v, \f, the separators \x1c-\x1e, NEL (U+0085), and U+2028/U+2029. A
// trailing boundary does not produce an empty final row.
func SplitRows(text string) []string {
	var rows []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isRowBreak(r) {
			i += size
			continue
		}
		rows = append(rows, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		rows = append(rows, text[start:])
	}
	return rows
}

func isRowBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
