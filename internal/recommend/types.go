// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"time"
)

var (
	// ErrTitleNotFound is returned when no catalog row matches the folded
	// query title. It is an expected, user-triggered condition.
	ErrTitleNotFound = errors.New("title not found")

	// ErrNotBuilt is returned by eager engines queried before Build completes.
	ErrNotBuilt = errors.New("recommendation model not built")
)

// BuildState is the lifecycle state of the engine's model.
type BuildState int

const (
	// StateIdle means no build has been attempted.
	StateIdle BuildState = iota
	// StateBuilding means a build is in progress.
	StateBuilding
	// StateReady means a model is published.
	StateReady
	// StateFailed means the last build failed and no model is published.
	StateFailed
)

// String returns the state name.
func (s BuildState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuilding:
		return "building"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s BuildState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Recommendation is one ranked title.
type Recommendation struct {
	// Title is the display title.
	Title string `json:"title"`

	// Score is the blended similarity to the query film.
	Score float64 `json:"score"`

	// Index is the film's position in the catalog snapshot.
	Index int `json:"-"`
}

// Status describes the engine's build state.
type Status struct {
	State     BuildState `json:"state"`
	LazyBuild bool       `json:"lazy_build"`

	// Films and Vocabulary describe the published model.
	Films      int `json:"films"`
	Vocabulary int `json:"vocabulary"`

	BuiltAt         time.Time `json:"built_at,omitempty"`
	BuildDurationMS int64     `json:"build_duration_ms"`

	// Builds counts completed builds, successful or not.
	Builds    int    `json:"builds"`
	LastError string `json:"last_error,omitempty"`
}
