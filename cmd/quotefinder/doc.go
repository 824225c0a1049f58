// Package main hosts the quotefinder CLI entrypoint and command graph.
//
// The root command takes a video reference and a quote, pulls a timestamped
// transcript through the summarize extractor (or a saved transcript file),
// ranks transcript lines against the quote, and prints the best matches with
// deep links. Exit status is 0 when something matched, 2 when the transcript
// was read but nothing cleared the relevance floor, and 1 on any error.
//
// Keep this package thin: matching, parsing, and link construction live in
// internal packages; commands here only resolve configuration, wire the
// pipeline, and render output.
package main
