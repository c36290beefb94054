// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"errors"
	"testing"
	"time"
)

func sampleFilms() []Film {
	return []Film{
		{
			Title:          "Amélie",
			ReleaseDate:    time.Date(2001, 4, 25, 0, 0, 0, 0, time.UTC),
			HasReleaseDate: true,
			VoteAverage:    7.8,
			VoteCount:      3403,
			ActorNames:     "Audrey Tautou, Mathieu Kassovitz",
			DirectorNames:  "Jean-Pierre Jeunet",
			Budget:         10_000_000,
			Revenue:        173_921_954,
			Return:         17.39,
			Features:       "whimsical paris waitress romance",
		},
		{
			Title:       "Toy Story",
			ReleaseYear: 1995,
			VoteAverage: 7.7,
			VoteCount:   5415,
			ActorNames:  "Tom Hanks, Tim Allen",
			Features:    "toys come alive",
		},
		{
			Title:       "AMELIE",
			VoteAverage: 5.0,
		},
	}
}

func TestNew_FoldsLookupFields(t *testing.T) {
	t.Parallel()

	cat := New(sampleFilms(), AllColumns())

	f := cat.At(0)
	if f.Title != "Amélie" {
		t.Errorf("display title changed: %q", f.Title)
	}
	if f.TitleKey != "amelie" {
		t.Errorf("TitleKey = %q, want amelie", f.TitleKey)
	}
	if f.ActorNames != "audrey tautou, mathieu kassovitz" {
		t.Errorf("ActorNames = %q", f.ActorNames)
	}
	if f.ReleaseYear != 2001 {
		t.Errorf("ReleaseYear should fall back to the release date, got %d", f.ReleaseYear)
	}
	if got := f.Profit(); got != 163_921_954 {
		t.Errorf("Profit() = %v", got)
	}
}

func TestCatalog_IndexOf(t *testing.T) {
	t.Parallel()

	cat := New(sampleFilms(), []Column{ColumnTitle})

	tests := []struct {
		query string
		want  int
		found bool
	}{
		{"amelie", 0, true},
		{"AMÉLIE", 0, true}, // first matching row wins
		{"toy story", 1, true},
		{"Toy  Story", -1, false},
		{"Nonexistent Film", -1, false},
	}
	for _, tt := range tests {
		got, ok := cat.IndexOf(tt.query)
		if got != tt.want || ok != tt.found {
			t.Errorf("IndexOf(%q) = (%d, %v), want (%d, %v)", tt.query, got, ok, tt.want, tt.found)
		}
	}
}

func TestCatalog_IndexOfWithoutTitleColumn(t *testing.T) {
	t.Parallel()

	cat := New(sampleFilms(), []Column{ColumnVoteAverage})
	if _, ok := cat.IndexOf("toy story"); ok {
		t.Error("IndexOf should fail when titles were not loaded")
	}
}

func TestCatalog_AllPreservesOrder(t *testing.T) {
	t.Parallel()

	cat := New(sampleFilms(), []Column{ColumnTitle})
	var titles []string
	for i, f := range cat.All() {
		if i != len(titles) {
			t.Fatalf("index %d out of order", i)
		}
		titles = append(titles, f.Title)
	}
	want := []string{"Amélie", "Toy Story", "AMELIE"}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want[i])
		}
	}
}

func TestCatalog_IsImmutable(t *testing.T) {
	t.Parallel()

	films := sampleFilms()
	cat := New(films, []Column{ColumnTitle})
	films[0].Title = "changed"

	f := cat.At(0)
	f.Title = "also changed"
	if cat.At(0).Title != "Amélie" {
		t.Error("catalog must not share state with its input or with At copies")
	}
}

func TestStaticStore_Load(t *testing.T) {
	t.Parallel()

	store := NewStaticStore(sampleFilms(), ColumnTitle, ColumnVoteAverage, ColumnFeatures)
	ctx := context.Background()

	cat, err := store.Load(ctx, ColumnVoteAverage, ColumnTitle, ColumnTitle)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cat.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cat.Len())
	}
	if !cat.Has(ColumnTitle) || !cat.Has(ColumnVoteAverage) || cat.Has(ColumnFeatures) {
		t.Errorf("Columns() = %v", cat.Columns())
	}
	if cat.At(0).Features != "" {
		t.Error("unrequested column should not be populated")
	}

	if _, err := store.Load(ctx, ColumnBudget); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("Load(budget) error = %v, want ErrSchemaMismatch", err)
	}
	if _, err := store.Load(ctx, Column("genre")); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("Load(genre) error = %v, want ErrSchemaMismatch", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("Load() with no columns error = %v, want ErrSchemaMismatch", err)
	}
}

func TestStaticStore_LoadIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStaticStore(sampleFilms())
	a, err := store.Load(context.Background(), ColumnTitle, ColumnVoteCount)
	if err != nil {
		t.Fatal(err)
	}
	b, err := store.Load(context.Background(), ColumnVoteCount, ColumnTitle)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			t.Errorf("row %d differs between loads: %+v vs %+v", i, a.At(i), b.At(i))
		}
	}
}
