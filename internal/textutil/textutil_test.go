package textutil

import (
	"math"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
		{"lowercases", "Hello World", "hello world"},
		{"collapses runs", "the   quick\t\tbrown\nfox", "the quick brown fox"},
		{"trims", "  padded  ", "padded"},
		{"unicode whitespace", "a  b", "a b"},
		{"unicode case", "ÉCOLE Straße", "école straße"},
		{"final sigma", "ΟΔΟΣ ΣΟΦΙΑΣ", "οδο\u03c2 σοφια\u03c2"},
		{"information separators", "a\x1cb\x1f c", "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeFinalSigmaOnLongInput(t *testing.T) {
	for _, n := range []int{121, 122, 123, 249, 250, 251, 377, 378, 379, 505, 506, 507} {
		input := strings.Repeat("a", n) + " ΣΑΣ x"
		want := strings.Repeat("a", n) + " \u03c3\u03b1\u03c2 x"
		if got := Normalize(input); got != want {
			t.Errorf("prefix %d: Normalize = %q, want %q", n, got[n:], want[n:])
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello   World",
		"  Mixed\tCASE\r\nlines  ",
		"ΟΔΟΣ ΣΟΦΙΑΣ",
		"İstanbul",
		"already normalized text",
	}
	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestWordOverlap(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		want      float64
	}{
		{"all present", "quick fox", "the quick brown fox", 1},
		{"half present", "quick cat", "the quick brown fox", 0.5},
		{"duplicates collapse", "fox fox cat", "fox", 0.5},
		{"none present", "zebra", "the quick brown fox", 0},
		{"empty query", "", "anything", 0},
		{"extra candidate words ignored", "a b", "a b c d e f", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordOverlap(tt.query, tt.candidate); got != tt.want {
				t.Errorf("WordOverlap(%q, %q) = %v, want %v", tt.query, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestSequenceRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"both empty", "", "", 1},
		{"one empty", "abc", "", 0},
		{"identical", "hello", "hello", 1},
		{"shifted", "abcd", "bcde", 0.75},
		{"asymmetric forward", "tide", "diet", 0.25},
		{"asymmetric reverse", "diet", "tide", 0.5},
		{"disjoint", "abc", "xyz", 0},
		{"multibyte counted as code points", "héllo", "hello", 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SequenceRatio(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SequenceRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSequenceRatioPopularElements(t *testing.T) {
	// Below the popularity cutoff every element may seed a match.
	short := "c" + strings.Repeat("a", 100)
	if got, want := SequenceRatio("aaaa", short), 8.0/105; math.Abs(got-want) > 1e-12 {
		t.Fatalf("short ratio = %v, want %v", got, want)
	}

	// Once b reaches the cutoff, an element filling more than 1% of it cannot
	// seed a block, so nothing matches.
	long := "c" + strings.Repeat("a", 250)
	if got := SequenceRatio("aaaa", long); got != 0 {
		t.Fatalf("long ratio = %v, want 0", got)
	}

	// Popular elements still extend a block seeded by a rare element.
	extended := strings.Repeat("a", 200) + "b"
	if got, want := SequenceRatio("ab", extended), 4.0/203; math.Abs(got-want) > 1e-12 {
		t.Fatalf("extended ratio = %v, want %v", got, want)
	}
}

func TestSequenceRatioBounds(t *testing.T) {
	pairs := [][2]string{
		{"quick brown", "the quick brown fox"},
		{"lorem ipsum dolor", "sit amet consectetur"},
		{"a", strings.Repeat("ab", 150)},
	}
	for _, p := range pairs {
		got := SequenceRatio(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("SequenceRatio(%q, %q) = %v out of range", p[0], p[1], got)
		}
	}
}
