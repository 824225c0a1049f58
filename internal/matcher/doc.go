// Package matcher scores transcript lines against a quote and ranks the best
// candidates.
//
// Scoring blends two lexical signals over normalized text: the share of the
// quote's distinct words present in the line, and a longest-matching-blocks
// sequence ratio. A normalized quote found verbatim inside a line
// short-circuits to a perfect score. Lines scoring below the relevance floor
// are discarded and the survivors are ordered by score, keeping transcript
// order among ties.
//
// Policy values default to the package constants and may be overridden
// through Options, typically from the [matcher] configuration section.
package matcher
