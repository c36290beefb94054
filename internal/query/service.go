// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package query

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/textnorm"
)

// DefaultMinVoteCount is the vote count a title needs before Votes reports it.
const DefaultMinVoteCount int64 = 2000

// Options configures a Service.
type Options struct {
	// MinVoteCount is the Votes threshold. Negative values use the default.
	MinVoteCount int64
}

// Service answers catalog queries. It is safe for concurrent use.
type Service struct {
	store    catalog.Store
	minVotes int64
	logger   zerolog.Logger
}

// NewService creates a query service over store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(store catalog.Store, opts Options, logger zerolog.Logger) *Service {
	minVotes := opts.MinVoteCount
	if minVotes < 0 {
		minVotes = DefaultMinVoteCount
	}
	return &Service{
		store:    store,
		minVotes: minVotes,
		logger:   logger.With().Str("component", "query").Logger(),
	}
}

// MinVoteCount returns the Votes threshold.
func (s *Service) MinVoteCount() int64 {
	return s.minVotes
}

// ReleaseCount is the number of films released in a month or on a weekday.
type ReleaseCount struct {
	// Period is the English month or weekday name.
	Period string `json:"period"`
	// Number is the month (1-12) or weekday (0=Monday..6=Sunday).
	Number int `json:"number"`
	Count  int `json:"count"`
}

// TitleScore is the answer to a score lookup.
type TitleScore struct {
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	VoteAverage float64 `json:"vote_average"`
}

// TitleVotes is the answer to a votes lookup.
type TitleVotes struct {
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	VoteCount   int64   `json:"vote_count"`
	VoteAverage float64 `json:"vote_average"`
}

// ActorStats summarizes the films an actor appears in.
type ActorStats struct {
	Name          string  `json:"name"`
	Films         int     `json:"films"`
	TotalReturn   float64 `json:"total_return"`
	AverageReturn float64 `json:"average_return"`
}

// DirectorFilm is one film in a director report.
type DirectorFilm struct {
	Title          string    `json:"title"`
	ReleaseDate    time.Time `json:"release_date"`
	HasReleaseDate bool      `json:"-"`
	Return         float64   `json:"return"`
	Budget         float64   `json:"budget"`
	Revenue        float64   `json:"revenue"`
	Profit         float64   `json:"profit"`
}

// DirectorReport lists a director's films in catalog order.
type DirectorReport struct {
	Name  string         `json:"name"`
	Films []DirectorFilm `json:"films"`
}

// CountByMonth counts films released in month. Films without a parseable
// release date are not counted.
func (s *Service) CountByMonth(ctx context.Context, month time.Month) (ReleaseCount, error) {
	if month < time.January || month > time.December {
		return ReleaseCount{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	n, err := s.countReleases(ctx, "releases_by_month", func(t time.Time) bool { return t.Month() == month })
	if err != nil {
		return ReleaseCount{}, err
	}
	return ReleaseCount{Period: month.String(), Number: int(month), Count: n}, nil
}

// CountByWeekday counts films released on day. Films without a parseable
// release date are not counted.
func (s *Service) CountByWeekday(ctx context.Context, day Weekday) (ReleaseCount, error) {
	if day < Monday || day > Sunday {
		return ReleaseCount{}, fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	n, err := s.countReleases(ctx, "releases_by_weekday", func(t time.Time) bool { return WeekdayOf(t) == day })
	if err != nil {
		return ReleaseCount{}, err
	}
	return ReleaseCount{Period: day.String(), Number: int(day), Count: n}, nil
}

func (s *Service) countReleases(ctx context.Context, op string, match func(time.Time) bool) (int, error) {
	cat, err := s.load(ctx, op, catalog.ColumnReleaseDate)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, f := range cat.All() {
		if f.HasReleaseDate && match(f.ReleaseDate) {
			n++
		}
	}
	metrics.RecordQuery(op, "found")
	return n, nil
}

// Score looks up a title's release year and vote average.
func (s *Service) Score(ctx context.Context, title string) (Result[TitleScore], error) {
	const op = "score"
	cat, err := s.load(ctx, op, catalog.ColumnTitle, catalog.ColumnReleaseYear, catalog.ColumnVoteAverage)
	if err != nil {
		return Result[TitleScore]{}, err
	}
	idx, ok := cat.IndexOf(title)
	if !ok {
		return titleMiss[TitleScore](s, op, title), nil
	}
	f := cat.At(idx)
	metrics.RecordQuery(op, "found")
	return Found(TitleScore{Title: f.Title, ReleaseYear: f.ReleaseYear, VoteAverage: f.VoteAverage}), nil
}

// Votes looks up a title's vote count and average. Titles with fewer than
// MinVoteCount votes are excluded.
func (s *Service) Votes(ctx context.Context, title string) (Result[TitleVotes], error) {
	const op = "votes"
	cat, err := s.load(ctx, op,
		catalog.ColumnTitle, catalog.ColumnReleaseYear, catalog.ColumnVoteCount, catalog.ColumnVoteAverage)
	if err != nil {
		return Result[TitleVotes]{}, err
	}
	idx, ok := cat.IndexOf(title)
	if !ok {
		return titleMiss[TitleVotes](s, op, title), nil
	}
	f := cat.At(idx)
	if f.VoteCount < s.minVotes {
		metrics.RecordQuery(op, "excluded")
		return Excluded[TitleVotes](fmt.Sprintf(
			"%q has %d votes; at least %d are required", f.Title, f.VoteCount, s.minVotes)), nil
	}
	metrics.RecordQuery(op, "found")
	return Found(TitleVotes{
		Title:       f.Title,
		ReleaseYear: f.ReleaseYear,
		VoteCount:   f.VoteCount,
		VoteAverage: f.VoteAverage,
	}), nil
}

// Actor summarizes the return of every film whose cast contains name.
// People who also appear as a director anywhere in the catalog are
// excluded.
func (s *Service) Actor(ctx context.Context, name string) (Result[ActorStats], error) {
	const op = "actor"
	key := foldName(name)
	if key == "" {
		metrics.RecordQuery(op, "not_found")
		return NotFound[ActorStats]("empty actor name"), nil
	}
	cat, err := s.load(ctx, op, catalog.ColumnActorNames, catalog.ColumnDirectorNames, catalog.ColumnReturn)
	if err != nil {
		return Result[ActorStats]{}, err
	}

	stats := ActorStats{Name: strings.TrimSpace(name)}
	directs := false
	for _, f := range cat.All() {
		if strings.Contains(f.ActorNames, key) {
			stats.Films++
			stats.TotalReturn += f.Return
		}
		if !directs && strings.Contains(f.DirectorNames, key) {
			directs = true
		}
	}

	if stats.Films == 0 {
		metrics.RecordQuery(op, "not_found")
		s.logger.Debug().Str("actor", name).Msg("actor not found")
		return NotFound[ActorStats](fmt.Sprintf("no films with actor %q", stats.Name)), nil
	}
	if directs {
		metrics.RecordQuery(op, "excluded")
		return Excluded[ActorStats](fmt.Sprintf("%q is also credited as a director", stats.Name)), nil
	}
	stats.AverageReturn = stats.TotalReturn / float64(stats.Films)
	metrics.RecordQuery(op, "found")
	return Found(stats), nil
}

// Director lists every film whose directors contain name, with return,
// budget and profit.
func (s *Service) Director(ctx context.Context, name string) (Result[DirectorReport], error) {
	const op = "director"
	key := foldName(name)
	if key == "" {
		metrics.RecordQuery(op, "not_found")
		return NotFound[DirectorReport]("empty director name"), nil
	}
	cat, err := s.load(ctx, op,
		catalog.ColumnDirectorNames, catalog.ColumnTitle, catalog.ColumnReleaseDate,
		catalog.ColumnReturn, catalog.ColumnBudget, catalog.ColumnRevenue)
	if err != nil {
		return Result[DirectorReport]{}, err
	}

	report := DirectorReport{Name: strings.TrimSpace(name), Films: []DirectorFilm{}}
	for _, f := range cat.All() {
		if !strings.Contains(f.DirectorNames, key) {
			continue
		}
		report.Films = append(report.Films, DirectorFilm{
			Title:          f.Title,
			ReleaseDate:    f.ReleaseDate,
			HasReleaseDate: f.HasReleaseDate,
			Return:         f.Return,
			Budget:         f.Budget,
			Revenue:        f.Revenue,
			Profit:         f.Profit(),
		})
	}

	if len(report.Films) == 0 {
		metrics.RecordQuery(op, "not_found")
		s.logger.Debug().Str("director", name).Msg("director not found")
		return NotFound[DirectorReport](fmt.Sprintf("no films directed by %q", report.Name)), nil
	}
	metrics.RecordQuery(op, "found")
	return Found(report), nil
}

func (s *Service) load(ctx context.Context, op string, columns ...catalog.Column) (*catalog.Catalog, error) {
	cat, err := s.store.Load(ctx, columns...)
	if err != nil {
		metrics.RecordQuery(op, "error")
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cat, nil
}

// titleMiss records and logs a title lookup miss.
func titleMiss[T any](s *Service, op, title string) Result[T] {
	metrics.RecordQuery(op, "not_found")
	s.logger.Debug().Str("operation", op).Str("title", title).Msg("title not found")
	return NotFound[T](fmt.Sprintf("title %q not found", strings.TrimSpace(title)))
}

func foldName(name string) string {
	return textnorm.Normalize(strings.TrimSpace(name))
}
