// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinematch/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler    *Handler
	middleware *ChiMiddleware
}

// NewRouter creates a Router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, middleware: mw}
}

// Setup builds the route tree.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(router.middleware.CORS())
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "ROUTE_NOT_FOUND", "No route matches "+r.URL.Path, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method "+r.Method+" is not allowed", nil)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/health", func(r chi.Router) {
			r.Use(router.middleware.RateLimitCustom(RateLimitHealth))
			r.Get("/live", h.HealthLive)
			r.Get("/ready", h.HealthReady)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.middleware.RateLimit())
			r.Use(middleware.PrometheusMetrics)

			r.Get("/status/recommendations", h.RecommendationStatus)
			r.Get("/recommendations/{title}", h.Recommendations)

			r.Route("/films", func(r chi.Router) {
				r.Get("/releases/month/{month}", h.ReleasesByMonth)
				r.Get("/releases/day/{day}", h.ReleasesByDay)
				r.Get("/score/{title}", h.Score)
				r.Get("/votes/{title}", h.Votes)
			})

			r.Get("/actors/{name}", h.Actor)
			r.Get("/directors/{name}", h.Director)
		})
	})

	// First-generation paths.
	r.Group(func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/cantidad_filmaciones_mes/{month}", h.ReleasesByMonth)
		r.Get("/cantidad_filmaciones_dia/{day}", h.ReleasesByDay)
		r.Get("/score_titulo/{title}", h.Score)
		r.Get("/votos_titulo/{title}", h.Votes)
		r.Get("/actor/{name}", h.Actor)
		r.Get("/get_director/{name}", h.Director)
		r.Get("/recomendacion/{title}", h.Recommendations)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
