// Package transcript parses timestamped transcript text into lines.
//
// Extractors emit one spoken line per row, prefixed with a bracketed playback
// offset such as "[1:02:03]" or "[2:05]". Rows without a recognized prefix
// carry no position and are dropped; there is no fallback heuristic.
//
// Seconds and Format convert between the bracket notation and whole seconds
// so links and output agree on the same offset.
package transcript
