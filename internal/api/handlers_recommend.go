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
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Recommendations handles GET /api/v1/recommendations/{title}.
//
// Returns up to top_k titles ranked by blended similarity. 404
// TITLE_NOT_FOUND when the title is not in the catalog; 503 MODEL_NOT_READY
// while an eager build is still running.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := models.TitleRequest{Title: pathParam(r, "title")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return
	}

	key := h.responseKey("recommend", req.Title)
	recs, hit := cachedAs[[]recommend.Recommendation](h, key)
	if !hit {
		var err error
		recs, err = h.recommender.RecommendDetailed(r.Context(), req.Title)
		if err != nil {
			if recommend.IsNotFound(err) {
				respondError(w, http.StatusNotFound, "TITLE_NOT_FOUND",
					fmt.Sprintf("Title %q not found", req.Title), nil)
				return
			}
			respondFailure(w, err)
			return
		}
		h.remember(key, recs)
	}

	respondSuccess(w, recommendationResponse(strings.TrimSpace(req.Title), recs), start, hit)
}

func recommendationResponse(q string, recs []recommend.Recommendation) models.RecommendationResponse {
	data := models.RecommendationResponse{
		Query:   q,
		Titles:  make([]string, len(recs)),
		Results: make([]models.RecommendedFilm, len(recs)),
	}
	for i, rec := range recs {
		data.Titles[i] = rec.Title
		data.Results[i] = models.RecommendedFilm{Rank: i + 1, Title: rec.Title, Score: rec.Score}
	}
	return data
}

// RecommendationStatus handles GET /api/v1/status/recommendations.
func (h *Handler) RecommendationStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	st := h.recommender.Status()

	data := models.RecommendStatusResponse{
		State:           st.State.String(),
		Ready:           h.recommender.Ready(),
		LazyBuild:       st.LazyBuild,
		Films:           st.Films,
		Vocabulary:      st.Vocabulary,
		BuildDurationMS: st.BuildDurationMS,
		Builds:          st.Builds,
		LastError:       st.LastError,
	}
	if !st.BuiltAt.IsZero() {
		builtAt := st.BuiltAt
		data.BuiltAt = &builtAt
	}
	if cs, hitRate, ok := h.CacheStats(); ok {
		data.ResponseCache = &models.CacheStatsResponse{
			Hits:      cs.Hits,
			Misses:    cs.Misses,
			Evictions: cs.Evictions,
			Entries:   cs.TotalKeys,
			HitRate:   hitRate,
		}
	}
	respondSuccess(w, data, start, false)
}
