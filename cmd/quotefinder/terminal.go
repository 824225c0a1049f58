package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// paint wraps s in color when enabled.
func paint(s, color string, enabled bool) string {
	if !enabled || color == "" {
		return s
	}
	return color + s + ansiReset
}

// shouldColorize reports whether w is an interactive terminal and the user
// has not opted out with NO_COLOR.
func shouldColorize(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// depState is the outcome shown for one dependency row.
type depState int

const (
	depReady depState = iota
	depOptionalMissing
	depMissing
)

func (s depState) tag() string {
	switch s {
	case depReady:
		return "[OK]"
	case depOptionalMissing:
		return "[WARN]"
	default:
		return "[ERROR]"
	}
}

func (s depState) color() string {
	switch s {
	case depReady:
		return ansiGreen
	case depOptionalMissing:
		return ansiYellow
	default:
		return ansiRed
	}
}

const depLabelWidth = 20

// renderDepLine formats "  name:   [TAG] detail", padded so tags line up.
func renderDepLine(name string, state depState, detail string, colorize bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-*s %s", depLabelWidth, name+":", state.tag())
	if detail != "" {
		b.WriteByte(' ')
		b.WriteString(detail)
	}
	return paint(b.String(), state.color(), colorize)
}

// renderHeading returns a title line and a dashed rule of the same width.
func renderHeading(title string, colorize bool) []string {
	title = "== " + strings.TrimSpace(title) + " =="
	rule := strings.Repeat("-", len(title))
	return []string{paint(title, ansiBlue, colorize), paint(rule, ansiBlue, colorize)}
}
