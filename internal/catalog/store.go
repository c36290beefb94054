// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"fmt"
	"slices"
)

// Store loads catalog snapshots restricted to a set of columns.
//
// Load is idempotent: two loads of the same columns yield equal catalogs.
// Implementations must be safe for concurrent use.
type Store interface {
	Load(ctx context.Context, columns ...Column) (*Catalog, error)
}

// StaticStore serves a fixed, in-memory set of films. It backs tests and
// the CLI's demo dataset.
type StaticStore struct {
	films     []Film
	available []Column
}

// NewStaticStore creates a store over films that claims to hold the given
// columns. Loads of any other column fail with ErrSchemaMismatch.
func NewStaticStore(films []Film, available ...Column) *StaticStore {
	if len(available) == 0 {
		available = AllColumns()
	}
	return &StaticStore{films: slices.Clone(films), available: slices.Clone(available)}
}

// Load implements Store.
func (s *StaticStore) Load(ctx context.Context, columns ...Column) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cols, err := canonicalColumns(columns)
	if err != nil {
		return nil, err
	}
	for _, c := range cols {
		if !slices.Contains(s.available, c) {
			return nil, fmt.Errorf("%w: column %q not present", ErrSchemaMismatch, c)
		}
	}
	return New(project(s.films, cols), cols), nil
}

// project zeroes every field not covered by columns.
func project(films []Film, columns []Column) []Film {
	out := make([]Film, len(films))
	for i := range films {
		src := &films[i]
		dst := &out[i]
		for _, c := range columns {
			switch c {
			case ColumnTitle:
				dst.Title = src.Title
			case ColumnReleaseDate:
				dst.ReleaseDate, dst.HasReleaseDate = src.ReleaseDate, src.HasReleaseDate
			case ColumnReleaseYear:
				dst.ReleaseYear = src.ReleaseYear
			case ColumnVoteAverage:
				dst.VoteAverage = src.VoteAverage
			case ColumnVoteCount:
				dst.VoteCount = src.VoteCount
			case ColumnActorNames:
				dst.ActorNames = src.ActorNames
			case ColumnDirectorNames:
				dst.DirectorNames = src.DirectorNames
			case ColumnBudget:
				dst.Budget = src.Budget
			case ColumnRevenue:
				dst.Revenue = src.Revenue
			case ColumnReturn:
				dst.Return = src.Return
			case ColumnFeatures:
				dst.Features = src.Features
			}
		}
	}
	return out
}
