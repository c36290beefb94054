// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/cinematch/internal/config"
)

const fixtureCSV = `title,release_date,release_year,vote_average,vote_count,actor_names,director_names,budget,revenue,return,features
Toy Story,1995-10-30,1995,7.7,5415,"Tom Hanks, Tim Allen",John Lasseter,30000000,373554033,12.45,"animation toys friendship"
Jumanji,1995-12-15,1995,6.9,2413,"Robin Williams, Kirsten Dunst",Joe Johnston,65000000,262797249,4.04,"board game jungle adventure"
Amélie,2001-04-25,2001,7.8,3403,"Audrey Tautou",Jean-Pierre Jeunet,10000000,173921954,17.39,"whimsical paris romance"
Untitled,,,5.0,12,,,0,0,0,
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func newTestStore(t *testing.T, path string, cacheDisabled bool) *DuckDBStore {
	t.Helper()
	store, err := NewDuckDBStore(&config.CatalogConfig{
		Path:          path,
		Threads:       2,
		MaxMemory:     "256MB",
		CacheDisabled: cacheDisabled,
	})
	if err != nil {
		t.Fatalf("NewDuckDBStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestDuckDBStore_LoadCSV(t *testing.T) {
	store := newTestStore(t, writeFixture(t, "movies.csv", fixtureCSV), false)

	cat, err := store.Load(context.Background(), AllColumns()...)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cat.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", cat.Len())
	}

	toy := cat.At(0)
	if toy.Title != "Toy Story" || toy.TitleKey != "toy story" {
		t.Errorf("title = %q / %q", toy.Title, toy.TitleKey)
	}
	wantDate := time.Date(1995, 10, 30, 0, 0, 0, 0, time.UTC)
	if !toy.HasReleaseDate || !toy.ReleaseDate.Equal(wantDate) {
		t.Errorf("ReleaseDate = %v (has=%v), want %v", toy.ReleaseDate, toy.HasReleaseDate, wantDate)
	}
	if toy.ReleaseYear != 1995 || toy.VoteCount != 5415 || toy.VoteAverage != 7.7 {
		t.Errorf("numeric fields = %d %d %v", toy.ReleaseYear, toy.VoteCount, toy.VoteAverage)
	}
	if toy.ActorNames != "tom hanks, tim allen" {
		t.Errorf("ActorNames = %q", toy.ActorNames)
	}
	if toy.Profit() != 343554033 {
		t.Errorf("Profit() = %v", toy.Profit())
	}

	amelie := cat.At(2)
	if amelie.TitleKey != "amelie" {
		t.Errorf("accented title not folded: %q", amelie.TitleKey)
	}

	untitled := cat.At(3)
	if untitled.HasReleaseDate {
		t.Error("empty release_date should not parse")
	}
	if untitled.Features != "" || untitled.ActorNames != "" {
		t.Errorf("empty text columns should load as empty strings: %+v", untitled)
	}

	if i, ok := cat.IndexOf("JUMANJI"); !ok || i != 1 {
		t.Errorf("IndexOf(JUMANJI) = %d, %v", i, ok)
	}
}

func TestDuckDBStore_ColumnProjection(t *testing.T) {
	store := newTestStore(t, writeFixture(t, "movies.csv", fixtureCSV), false)

	cat, err := store.Load(context.Background(), ColumnTitle, ColumnVoteAverage)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cat.Has(ColumnFeatures) {
		t.Error("features should not be loaded")
	}
	if cat.At(0).Features != "" || cat.At(0).VoteCount != 0 {
		t.Errorf("unrequested fields populated: %+v", cat.At(0))
	}
}

func TestDuckDBStore_SchemaMismatch(t *testing.T) {
	csv := "title,vote_average\nToy Story,7.7\n"
	store := newTestStore(t, writeFixture(t, "narrow.csv", csv), false)

	_, err := store.Load(context.Background(), ColumnTitle, ColumnFeatures)
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("Load() error = %v, want ErrSchemaMismatch", err)
	}

	if _, err := store.Load(context.Background(), ColumnTitle); err != nil {
		t.Errorf("present columns should still load: %v", err)
	}
}

func TestDuckDBStore_DataUnavailable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.parquet")
	store := newTestStore(t, missing, false)

	_, err := store.Load(context.Background(), ColumnTitle)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("Load() error = %v, want ErrDataUnavailable", err)
	}
	if err := store.Ping(context.Background()); !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Ping() error = %v, want ErrDataUnavailable", err)
	}
}

func TestDuckDBStore_CorruptParquet(t *testing.T) {
	store := newTestStore(t, writeFixture(t, "broken.parquet", "this is not parquet"), false)

	_, err := store.Load(context.Background(), ColumnTitle)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("Load() error = %v, want ErrDataUnavailable", err)
	}
}

func TestNewDuckDBStore_UnsupportedFormat(t *testing.T) {
	_, err := NewDuckDBStore(&config.CatalogConfig{Path: "/data/movies.json"})
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("error = %v, want ErrDataUnavailable", err)
	}
}

func TestDuckDBStore_CachesSnapshots(t *testing.T) {
	path := writeFixture(t, "movies.csv", fixtureCSV)
	store := newTestStore(t, path, false)
	ctx := context.Background()

	first, err := store.Load(ctx, ColumnTitle)
	if err != nil {
		t.Fatal(err)
	}

	// The cached snapshot survives the file disappearing.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	second, err := store.Load(ctx, ColumnTitle)
	if err != nil {
		t.Fatalf("cached Load() error = %v", err)
	}
	if first != second {
		t.Error("expected the cached snapshot to be returned")
	}

	store.Invalidate()
	if _, err := store.Load(ctx, ColumnTitle); !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("after Invalidate, Load() error = %v, want ErrDataUnavailable", err)
	}
}

func TestDuckDBStore_ConcurrentLoads(t *testing.T) {
	store := newTestStore(t, writeFixture(t, "movies.csv", fixtureCSV), true)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cat, err := store.Load(context.Background(), ColumnTitle, ColumnVoteCount)
			if err != nil {
				errs <- err
				return
			}
			if cat.Len() != 4 {
				errs <- errors.New("unexpected row count")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestDuckDBStore_LoadCancelled(t *testing.T) {
	store := newTestStore(t, writeFixture(t, "movies.csv", fixtureCSV), true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Load(ctx, ColumnTitle); err == nil {
		t.Error("expected error for cancelled context")
	}
}
