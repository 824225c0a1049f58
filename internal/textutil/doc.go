// Package textutil provides text normalization and similarity primitives for
// quote matching.
//
// The primary use cases are:
//   - Normalizing text into a canonical lowercase, single-spaced form
//   - Measuring how many of a query's distinct words a candidate contains
//   - Computing a longest-matching-blocks similarity ratio between strings
//
// All functions are pure; inputs are never mutated and results depend only on
// the arguments.
package textutil
