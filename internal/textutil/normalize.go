package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases text with full Unicode case mapping, collapses every
// whitespace run to a single space, and trims the ends. Normalize is
// idempotent.
//
// Words are lowered one at a time; final-sigma context never crosses
// whitespace.
func Normalize(text string) string {
	fields := splitWords(text)
	if len(fields) == 0 {
		return ""
	}
	caser := cases.Lower(language.Und)
	for i, field := range fields {
		fields[i] = caser.String(field)
	}
	return strings.Join(fields, " ")
}

// isSpace reports Unicode whitespace plus the ASCII information separators
// \x1c-\x1f.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func splitWords(text string) []string {
	return strings.FieldsFunc(text, isSpace)
}

// WordSet returns the distinct whitespace-separated words of text.
func WordSet(text string) map[string]struct{} {
	fields := splitWords(text)
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}

// WordOverlap reports the fraction of query's distinct words that also appear
// in candidate. Extra words in candidate do not lower the result.
func WordOverlap(query, candidate string) float64 {
	queryWords := WordSet(query)
	candidateWords := WordSet(candidate)
	shared := 0
	for word := range queryWords {
		if _, ok := candidateWords[word]; ok {
			shared++
		}
	}
	return float64(shared) / float64(max(1, len(queryWords)))
}
