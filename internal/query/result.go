// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package query

// Status tags the outcome of a lookup.
type Status int

const (
	// StatusFound means Value holds the answer.
	StatusFound Status = iota
	// StatusNotFound means nothing in the catalog matched.
	StatusNotFound
	// StatusExcluded means a match exists but policy withholds it; Reason
	// says why.
	StatusExcluded
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	case StatusExcluded:
		return "excluded"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a lookup.
type Result[T any] struct {
	Status Status
	Value  T
	Reason string
}

// Found wraps a successful answer.
func Found[T any](v T) Result[T] {
	return Result[T]{Status: StatusFound, Value: v}
}

// NotFound reports a miss.
func NotFound[T any](reason string) Result[T] {
	return Result[T]{Status: StatusNotFound, Reason: reason}
}

// Excluded reports a match withheld by policy.
func Excluded[T any](reason string) Result[T] {
	return Result[T]{Status: StatusExcluded, Reason: reason}
}

// IsFound reports whether Value is meaningful.
func (r Result[T]) IsFound() bool {
	return r.Status == StatusFound
}
