// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/query"
)

// Actor handles GET /api/v1/actors/{name}.
//
// People also credited as a director answer 422 EXCLUDED_BY_POLICY.
func (h *Handler) Actor(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := models.NameRequest{Name: pathParam(r, "name")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	key := h.responseKey("actor", req.Name)
	stats, hit := cachedAs[query.ActorStats](h, key)
	if !hit {
		res, err := h.queries.Actor(r.Context(), req.Name)
		if err != nil {
			respondFailure(w, err)
			return
		}
		switch res.Status {
		case query.StatusNotFound:
			respondError(w, http.StatusNotFound, "ACTOR_NOT_FOUND", fmt.Sprintf("No films found for actor %q", req.Name), nil)
			return
		case query.StatusExcluded:
			respondError(w, http.StatusUnprocessableEntity, "EXCLUDED_BY_POLICY", res.Reason, nil)
			return
		}
		stats = res.Value
		h.remember(key, stats)
	}

	// The cache key is folded; echo the caller's own spelling.
	stats.Name = strings.TrimSpace(req.Name)
	data := models.ActorResponse{
		Name:          stats.Name,
		Films:         stats.Films,
		TotalReturn:   stats.TotalReturn,
		AverageReturn: stats.AverageReturn,
		Message: fmt.Sprintf("%s appeared in %d films with a total return of %.2f and an average return of %.2f per film",
			stats.Name, stats.Films, stats.TotalReturn, stats.AverageReturn),
	}
	respondSuccess(w, data, start, hit)
}

// Director handles GET /api/v1/directors/{name}.
func (h *Handler) Director(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := models.NameRequest{Name: pathParam(r, "name")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	key := h.responseKey("director", req.Name)
	report, hit := cachedAs[query.DirectorReport](h, key)
	if !hit {
		res, err := h.queries.Director(r.Context(), req.Name)
		if err != nil {
			respondFailure(w, err)
			return
		}
		if !res.IsFound() {
			respondError(w, http.StatusNotFound, "DIRECTOR_NOT_FOUND", fmt.Sprintf("No films found for director %q", req.Name), nil)
			return
		}
		report = res.Value
		h.remember(key, report)
	}

	name := strings.TrimSpace(req.Name)
	films := make([]models.DirectorFilm, len(report.Films))
	for i, f := range report.Films {
		films[i] = models.DirectorFilm{
			Title:       f.Title,
			ReleaseDate: models.FormatDate(f.ReleaseDate, f.HasReleaseDate),
			Return:      f.Return,
			Budget:      f.Budget,
			Profit:      f.Profit,
		}
	}
	data := models.DirectorResponse{
		Name:    name,
		Films:   films,
		Message: fmt.Sprintf("%s directed %d films", name, len(films)),
	}
	respondSuccess(w, data, start, hit)
}
