// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/query"
)

// ReleasesByMonth handles GET /api/v1/films/releases/month/{month}.
//
// The month is a Spanish or English name or a number 1-12. Unknown months
// answer 404 INVALID_MONTH.
func (h *Handler) ReleasesByMonth(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := models.PeriodRequest{Value: pathParam(r, "month")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	month, err := query.ParseMonth(req.Value)
	if err != nil {
		respondError(w, http.StatusNotFound, "INVALID_MONTH",
			fmt.Sprintf("%q is not a month; use a name (enero, january) or 1-12", req.Value), nil)
		return
	}

	key := h.responseKey("releases_month", month.String())
	if data, ok := h.cached(key); ok {
		respondSuccess(w, data, start, true)
		return
	}

	rc, err := h.queries.CountByMonth(r.Context(), month)
	if err != nil {
		respondFailure(w, err)
		return
	}
	data := models.ReleaseCountResponse{
		Period:  rc.Period,
		Number:  rc.Number,
		Count:   rc.Count,
		Message: fmt.Sprintf("%d films were released in %s", rc.Count, rc.Period),
	}
	h.remember(key, data)
	respondSuccess(w, data, start, false)
}

// ReleasesByDay handles GET /api/v1/films/releases/day/{day}.
//
// The day is a Spanish or English weekday name or a number 0-6 with 0 for
// Monday. Unknown days answer 404 INVALID_DAY.
func (h *Handler) ReleasesByDay(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := models.PeriodRequest{Value: pathParam(r, "day")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	day, err := query.ParseWeekday(req.Value)
	if err != nil {
		respondError(w, http.StatusNotFound, "INVALID_DAY",
			fmt.Sprintf("%q is not a weekday; use a name (lunes, monday) or 0-6", req.Value), nil)
		return
	}

	key := h.responseKey("releases_day", day.String())
	if data, ok := h.cached(key); ok {
		respondSuccess(w, data, start, true)
		return
	}

	rc, err := h.queries.CountByWeekday(r.Context(), day)
	if err != nil {
		respondFailure(w, err)
		return
	}
	data := models.ReleaseCountResponse{
		Period:  rc.Period,
		Number:  rc.Number,
		Count:   rc.Count,
		Message: fmt.Sprintf("%d films were released on a %s", rc.Count, rc.Period),
	}
	h.remember(key, data)
	respondSuccess(w, data, start, false)
}

// Score handles GET /api/v1/films/score/{title}.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := models.TitleRequest{Title: pathParam(r, "title")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	key := h.responseKey("score", req.Title)
	if data, ok := h.cached(key); ok {
		respondSuccess(w, data, start, true)
		return
	}

	res, err := h.queries.Score(r.Context(), req.Title)
	if err != nil {
		respondFailure(w, err)
		return
	}
	if !res.IsFound() {
		respondError(w, http.StatusNotFound, "TITLE_NOT_FOUND", fmt.Sprintf("Title %q not found", req.Title), nil)
		return
	}

	v := res.Value
	data := models.ScoreResponse{
		Title:       v.Title,
		ReleaseYear: v.ReleaseYear,
		VoteAverage: v.VoteAverage,
		Message:     fmt.Sprintf("%s was released in %d with a score of %.1f", v.Title, v.ReleaseYear, v.VoteAverage),
	}
	h.remember(key, data)
	respondSuccess(w, data, start, false)
}

// Votes handles GET /api/v1/films/votes/{title}.
//
// Titles below the vote threshold answer 400 INSUFFICIENT_VOTES rather
// than their statistics.
func (h *Handler) Votes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := models.TitleRequest{Title: pathParam(r, "title")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	key := h.responseKey("votes", req.Title)
	if data, ok := h.cached(key); ok {
		respondSuccess(w, data, start, true)
		return
	}

	res, err := h.queries.Votes(r.Context(), req.Title)
	if err != nil {
		respondFailure(w, err)
		return
	}
	switch res.Status {
	case query.StatusNotFound:
		respondError(w, http.StatusNotFound, "TITLE_NOT_FOUND", fmt.Sprintf("Title %q not found", req.Title), nil)
		return
	case query.StatusExcluded:
		respondErrorDetails(w, http.StatusBadRequest, "INSUFFICIENT_VOTES", res.Reason,
			map[string]interface{}{"min_vote_count": h.queries.MinVoteCount()}, nil)
		return
	}

	v := res.Value
	data := models.VotesResponse{
		Title:       v.Title,
		ReleaseYear: v.ReleaseYear,
		VoteCount:   v.VoteCount,
		VoteAverage: v.VoteAverage,
		Message: fmt.Sprintf("%s was released in %d and has %d votes averaging %.1f",
			v.Title, v.ReleaseYear, v.VoteCount, v.VoteAverage),
	}
	h.remember(key, data)
	respondSuccess(w, data, start, false)
}
