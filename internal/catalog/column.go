// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"fmt"
	"slices"
)

// Column names a dataset column.
type Column string

const (
	ColumnTitle         Column = "title"
	ColumnReleaseDate   Column = "release_date"
	ColumnReleaseYear   Column = "release_year"
	ColumnVoteAverage   Column = "vote_average"
	ColumnVoteCount     Column = "vote_count"
	ColumnActorNames    Column = "actor_names"
	ColumnDirectorNames Column = "director_names"
	ColumnBudget        Column = "budget"
	ColumnRevenue       Column = "revenue"
	ColumnReturn        Column = "return"
	ColumnFeatures      Column = "features"
)

// AllColumns lists every known column in dataset order.
func AllColumns() []Column {
	return []Column{
		ColumnTitle,
		ColumnReleaseDate,
		ColumnReleaseYear,
		ColumnVoteAverage,
		ColumnVoteCount,
		ColumnActorNames,
		ColumnDirectorNames,
		ColumnBudget,
		ColumnRevenue,
		ColumnReturn,
		ColumnFeatures,
	}
}

// Known reports whether c is a column the store knows how to decode.
func (c Column) Known() bool {
	return slices.Contains(AllColumns(), c)
}

// canonicalColumns de-duplicates and sorts a column request so that
// equivalent requests share a cache key.
func canonicalColumns(columns []Column) ([]Column, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns requested", ErrSchemaMismatch)
	}
	out := make([]Column, 0, len(columns))
	for _, c := range columns {
		if !c.Known() {
			return nil, fmt.Errorf("%w: unknown column %q", ErrSchemaMismatch, c)
		}
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out, nil
}
