// Package domino implements the tile-list transforms behind the domino board.
//
// Every function is pure: it takes a Hand (and optional parameters) and
// returns a fresh Hand or a count. The caller owns the canonical list and
// replaces it wholesale after each call. Nothing here keeps state.
//
// Equality and grouping ignore orientation: [3,4] and [4,3] are the same
// tile for CountThrees, RemoveDuplicates, Duplicates and Toggle. Orientation
// is still stored, and Flip and rendering depend on it.
//
// The only failure is *ValidationError, returned when a pip falls outside
// [MinPip, MaxPip] or a free-form total does not parse.
package domino
