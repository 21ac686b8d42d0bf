// Package reconcile adapts the generic reconciliation engine to movies.
//
// Representations are keyed by identifier. Matched movies are overwritten from their
// representation unless it has no watched flag, in which case the movie is skipped.
// Unmatched representations become new movies.
package reconcile
