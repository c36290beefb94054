// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// DuckDBStore reads column projections of a Parquet or CSV dataset through
// an in-memory DuckDB instance.
type DuckDBStore struct {
	conn      *sql.DB
	path      string
	source    string
	snapshots *cache.Cache[*Catalog]
	loads     singleflight.Group
	logger    zerolog.Logger
}

// NewDuckDBStore opens an in-memory DuckDB engine for the dataset at
// cfg.Path. The file itself is only touched on Load, so a missing dataset
// surfaces as ErrDataUnavailable at load time rather than here.
func NewDuckDBStore(cfg *config.CatalogConfig) (*DuckDBStore, error) {
	source, err := sourceFor(cfg.Path)
	if err != nil {
		return nil, err
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}

	// preserve_insertion_order keeps file order, which is the row identity.
	connStr := fmt.Sprintf("?threads=%d&max_memory=%s&preserve_insertion_order=true", threads, maxMemory)
	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	conn.SetMaxOpenConns(threads)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	s := &DuckDBStore{
		conn:   conn,
		path:   cfg.Path,
		source: source,
		logger: logging.WithComponent("catalog"),
	}
	if !cfg.CacheDisabled {
		s.snapshots = cache.New[*Catalog](cfg.CacheTTL)
	}
	return s, nil
}

// sourceFor returns the DuckDB table function expression for path.
func sourceFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return fmt.Sprintf("read_parquet(%s)", quoteLiteral(path)), nil
	case ".csv":
		return fmt.Sprintf("read_csv(%s, header = true, auto_detect = true)", quoteLiteral(path)), nil
	default:
		return "", fmt.Errorf("%w: unsupported dataset format %q", ErrDataUnavailable, filepath.Ext(path))
	}
}

// Load implements Store. Concurrent loads of the same column set share one
// read of the file; the result is cached per column set unless caching is
// disabled.
func (s *DuckDBStore) Load(ctx context.Context, columns ...Column) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	cols, err := canonicalColumns(columns)
	if err != nil {
		metrics.RecordCatalogError(errorType(err))
		return nil, err
	}

	key := cache.GenerateKey("catalog", cols)
	if s.snapshots != nil {
		if cat, ok := s.snapshots.Get(key); ok {
			metrics.RecordCatalogLoad("cache", cat.Len(), time.Since(start))
			return cat, nil
		}
	}

	// The shared read must not be aborted because the first caller went away.
	readCtx := context.WithoutCancel(ctx)
	ch := s.loads.DoChan(key, func() (interface{}, error) {
		cat, err := s.read(readCtx, cols)
		if err != nil {
			return nil, err
		}
		if s.snapshots != nil {
			s.snapshots.Set(key, cat)
		}
		return cat, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			metrics.RecordCatalogError(errorType(res.Err))
			return nil, res.Err
		}
		cat, _ := res.Val.(*Catalog)
		metrics.RecordCatalogLoad("file", cat.Len(), time.Since(start))
		return cat, nil
	}
}

func (s *DuckDBStore) read(ctx context.Context, cols []Column) (*Catalog, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	present, err := s.describe(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	exprs := make([]string, len(cols))
	decoders := make([]fieldDecoder, len(cols))
	targets := make([]interface{}, len(cols))
	for i, c := range cols {
		name, ok := present[string(c)]
		if !ok {
			return nil, fmt.Errorf("%w: column %q not present in %s", ErrSchemaMismatch, c, filepath.Base(s.path))
		}
		decoders[i] = decoderFor(c)
		exprs[i] = decoders[i].expr(quoteIdent(name))
		targets[i] = decoders[i].target()
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(exprs, ", "), s.source)
	rows, err := s.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	defer closeWithLog(rows, "catalog rows")

	films := make([]Film, 0, 1024)
	for rows.Next() {
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("%w: scan row %d: %w", ErrDataUnavailable, len(films), err)
		}
		var f Film
		for _, d := range decoders {
			d.apply(&f)
		}
		films = append(films, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	s.logger.Debug().
		Int("rows", len(films)).
		Int("columns", len(cols)).
		Str("path", s.path).
		Msg("Catalog columns loaded")

	return New(films, cols), nil
}

// describe returns the dataset's column names keyed by their lower-cased
// form. DuckDB identifiers are case-insensitive.
func (s *DuckDBStore) describe(ctx context.Context) (map[string]string, error) {
	rows, err := s.conn.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 0", s.source))
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "schema rows")

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	present := make(map[string]string, len(names))
	for _, n := range names {
		present[strings.ToLower(n)] = n
	}
	return present, nil
}

// Ping reports whether the dataset file exists and the engine responds.
func (s *DuckDBStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	return s.conn.PingContext(ctx)
}

// Invalidate drops all cached snapshots.
func (s *DuckDBStore) Invalidate() {
	if s.snapshots != nil {
		s.snapshots.Clear()
	}
}

// Close releases the DuckDB engine.
func (s *DuckDBStore) Close() error {
	return s.conn.Close()
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// fieldDecoder turns one projected column into a Film field.
type fieldDecoder interface {
	expr(ident string) string
	target() interface{}
	apply(f *Film)
}

type textField struct {
	v   sql.NullString
	set func(*Film, string)
}

func (d *textField) expr(ident string) string { return "CAST(" + ident + " AS VARCHAR)" }
func (d *textField) target() interface{}      { return &d.v }
func (d *textField) apply(f *Film) {
	if d.v.Valid {
		d.set(f, d.v.String)
	}
}

type floatField struct {
	v   sql.NullFloat64
	set func(*Film, float64)
}

func (d *floatField) expr(ident string) string { return "TRY_CAST(" + ident + " AS DOUBLE)" }
func (d *floatField) target() interface{}      { return &d.v }
func (d *floatField) apply(f *Film) {
	if d.v.Valid && !math.IsNaN(d.v.Float64) && !math.IsInf(d.v.Float64, 0) {
		d.set(f, d.v.Float64)
	}
}

type intField struct {
	v   sql.NullInt64
	set func(*Film, int64)
}

// Integer columns are often stored as floats (1995.0) by dataframe exports.
func (d *intField) expr(ident string) string {
	return "TRY_CAST(TRY_CAST(" + ident + " AS DOUBLE) AS BIGINT)"
}
func (d *intField) target() interface{} { return &d.v }
func (d *intField) apply(f *Film) {
	if d.v.Valid {
		d.set(f, d.v.Int64)
	}
}

type dateField struct {
	v sql.NullTime
}

func (d *dateField) expr(ident string) string { return "TRY_CAST(" + ident + " AS DATE)" }
func (d *dateField) target() interface{}      { return &d.v }
func (d *dateField) apply(f *Film) {
	if d.v.Valid {
		f.ReleaseDate = d.v.Time.UTC()
		f.HasReleaseDate = true
	}
}

func decoderFor(c Column) fieldDecoder {
	switch c {
	case ColumnTitle:
		return &textField{set: func(f *Film, s string) { f.Title = s }}
	case ColumnActorNames:
		return &textField{set: func(f *Film, s string) { f.ActorNames = s }}
	case ColumnDirectorNames:
		return &textField{set: func(f *Film, s string) { f.DirectorNames = s }}
	case ColumnFeatures:
		return &textField{set: func(f *Film, s string) { f.Features = s }}
	case ColumnReleaseDate:
		return &dateField{}
	case ColumnReleaseYear:
		return &intField{set: func(f *Film, v int64) { f.ReleaseYear = int(v) }}
	case ColumnVoteCount:
		return &intField{set: func(f *Film, v int64) { f.VoteCount = v }}
	case ColumnVoteAverage:
		return &floatField{set: func(f *Film, v float64) { f.VoteAverage = v }}
	case ColumnBudget:
		return &floatField{set: func(f *Film, v float64) { f.Budget = v }}
	case ColumnRevenue:
		return &floatField{set: func(f *Film, v float64) { f.Revenue = v }}
	case ColumnReturn:
		return &floatField{set: func(f *Film, v float64) { f.Return = v }}
	default:
		panic(fmt.Sprintf("catalog: no decoder for column %q", c))
	}
}
