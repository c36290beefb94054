// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

import "time"

// DateLayout formats release dates in responses.
const DateLayout = "2006-01-02"

// RecommendationResponse lists titles similar to Query, best first.
type RecommendationResponse struct {
	Query   string            `json:"query"`
	Titles  []string          `json:"titles"`
	Results []RecommendedFilm `json:"results"`
}

// RecommendedFilm is one ranked title with its blended score.
type RecommendedFilm struct {
	Rank  int     `json:"rank"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// RecommendStatusResponse describes the recommendation model.
type RecommendStatusResponse struct {
	State           string     `json:"state"`
	Ready           bool       `json:"ready"`
	LazyBuild       bool       `json:"lazy_build"`
	Films           int        `json:"films"`
	Vocabulary      int        `json:"vocabulary"`
	BuiltAt         *time.Time `json:"built_at,omitempty"`
	BuildDurationMS int64      `json:"build_duration_ms"`
	Builds          int        `json:"builds"`
	LastError       string     `json:"last_error,omitempty"`

	ResponseCache *CacheStatsResponse `json:"response_cache,omitempty"`
}

// CacheStatsResponse reports API response cache counters.
type CacheStatsResponse struct {
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Evictions int64   `json:"evictions"`
	Entries   int64   `json:"entries"`
	HitRate   float64 `json:"hit_rate_percent"`
}

// ReleaseCountResponse is the number of releases in a month or on a weekday.
type ReleaseCountResponse struct {
	Period  string `json:"period"`
	Number  int    `json:"number"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// ScoreResponse is a title's release year and vote average.
type ScoreResponse struct {
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	VoteAverage float64 `json:"vote_average"`
	Message     string  `json:"message"`
}

// VotesResponse is a title's vote count and average.
type VotesResponse struct {
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	VoteCount   int64   `json:"vote_count"`
	VoteAverage float64 `json:"vote_average"`
	Message     string  `json:"message"`
}

// ActorResponse summarizes an actor's films.
type ActorResponse struct {
	Name          string  `json:"name"`
	Films         int     `json:"films"`
	TotalReturn   float64 `json:"total_return"`
	AverageReturn float64 `json:"average_return"`
	Message       string  `json:"message"`
}

// DirectorResponse lists a director's films.
type DirectorResponse struct {
	Name    string         `json:"name"`
	Films   []DirectorFilm `json:"films"`
	Message string         `json:"message"`
}

// DirectorFilm is one film of a director. ReleaseDate is nil when the
// dataset has no usable date.
type DirectorFilm struct {
	Title       string  `json:"title"`
	ReleaseDate *string `json:"release_date"`
	Return      float64 `json:"return"`
	Budget      float64 `json:"budget"`
	Profit      float64 `json:"profit"`
}

// FormatDate renders t with DateLayout, or nil when ok is false.
func FormatDate(t time.Time, ok bool) *string {
	if !ok {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
