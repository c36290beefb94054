// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"iter"
	"slices"
	"time"

	"github.com/tomtom215/cinematch/internal/textnorm"
)

// Film is one catalog row. Only the fields of the columns a Catalog was
// loaded with are populated.
type Film struct {
	// Title is the display title as stored in the dataset.
	Title string
	// TitleKey is the folded title used for exact-match lookups.
	TitleKey string

	ReleaseDate time.Time
	// HasReleaseDate is false when the stored date was empty or
	// unparseable; such films are excluded from date aggregates.
	HasReleaseDate bool
	ReleaseYear    int

	VoteAverage float64
	VoteCount   int64

	// ActorNames and DirectorNames are folded free text, matched by substring.
	ActorNames    string
	DirectorNames string

	Budget  float64
	Revenue float64
	// Return is the financial return ratio as stored in the dataset.
	Return float64

	// Features is the free-text blob used for similarity.
	Features string
}

// Profit returns revenue minus budget.
func (f *Film) Profit() float64 {
	return f.Revenue - f.Budget
}

// Catalog is an ordered, immutable collection of films.
type Catalog struct {
	films      []Film
	columns    []Column
	titleIndex map[string]int
}

// New builds a Catalog from films in the given order. Title, actor and
// director fields are folded; the input slice is copied.
func New(films []Film, columns []Column) *Catalog {
	c := &Catalog{
		films:   slices.Clone(films),
		columns: slices.Clone(columns),
	}
	slices.Sort(c.columns)
	c.columns = slices.Compact(c.columns)

	hasTitle := c.Has(ColumnTitle)
	if hasTitle {
		c.titleIndex = make(map[string]int, len(c.films))
	}
	for i := range c.films {
		f := &c.films[i]
		if hasTitle {
			f.TitleKey = textnorm.Normalize(f.Title)
			if _, seen := c.titleIndex[f.TitleKey]; !seen {
				c.titleIndex[f.TitleKey] = i
			}
		}
		f.ActorNames = textnorm.Normalize(f.ActorNames)
		f.DirectorNames = textnorm.Normalize(f.DirectorNames)
		if c.Has(ColumnReleaseYear) && f.ReleaseYear == 0 && f.HasReleaseDate {
			f.ReleaseYear = f.ReleaseDate.Year()
		}
	}
	return c
}

// Len returns the number of films.
func (c *Catalog) Len() int {
	return len(c.films)
}

// At returns a copy of the film at index i.
func (c *Catalog) At(i int) Film {
	return c.films[i]
}

// All iterates films in catalog order.
func (c *Catalog) All() iter.Seq2[int, Film] {
	return func(yield func(int, Film) bool) {
		for i := range c.films {
			if !yield(i, c.films[i]) {
				return
			}
		}
	}
}

// Columns returns the columns this catalog was loaded with.
func (c *Catalog) Columns() []Column {
	return slices.Clone(c.columns)
}

// Has reports whether the catalog was loaded with column col.
func (c *Catalog) Has(col Column) bool {
	_, found := slices.BinarySearch(c.columns, col)
	return found
}

// IndexOf returns the index of the first film whose folded title equals
// the folded form of title.
func (c *Catalog) IndexOf(title string) (int, bool) {
	if c.titleIndex == nil {
		return -1, false
	}
	i, ok := c.titleIndex[textnorm.Normalize(title)]
	if !ok {
		return -1, false
	}
	return i, true
}
