// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	if got := FormatDate(time.Time{}, false); got != nil {
		t.Errorf("FormatDate(missing) = %q, want nil", *got)
	}
	got := FormatDate(time.Date(1995, time.October, 30, 0, 0, 0, 0, time.UTC), true)
	if got == nil || *got != "1995-10-30" {
		t.Errorf("FormatDate() = %v, want 1995-10-30", got)
	}
}

func TestAPIResponse_OmitsEmptyError(t *testing.T) {
	t.Parallel()

	resp := APIResponse{
		Status:   "success",
		Data:     ScoreResponse{Title: "Heat", ReleaseYear: 1995, VoteAverage: 7.7},
		Metadata: Metadata{Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
	}
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if strings.Contains(s, `"error"`) {
		t.Errorf("success response contains error field: %s", s)
	}
	if !strings.Contains(s, `"release_year":1995`) || !strings.Contains(s, `"timestamp":"2026-01-02T03:04:05Z"`) {
		t.Errorf("unexpected encoding: %s", s)
	}
}

func TestDirectorFilm_NullDate(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(DirectorFilm{Title: "Untitled"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"release_date":null`) {
		t.Errorf("missing date should encode as null: %s", b)
	}
}
