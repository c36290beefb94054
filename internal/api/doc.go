// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api exposes the recommendation engine and catalog queries over HTTP.

Routes are served by a chi router:

	GET /api/v1/recommendations/{title}
	GET /api/v1/status/recommendations
	GET /api/v1/films/releases/month/{month}
	GET /api/v1/films/releases/day/{day}
	GET /api/v1/films/score/{title}
	GET /api/v1/films/votes/{title}
	GET /api/v1/actors/{name}
	GET /api/v1/directors/{name}
	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /metrics

The first-generation paths (/recomendacion/{title}, /score_titulo/{title},
/cantidad_filmaciones_mes/{month} and friends) are kept as aliases of the
corresponding v1 handlers.

Every response uses the models.APIResponse envelope. Path parameters are
validated with package validation; lookups that find nothing answer 404 with
a specific code, and policy exclusions answer 400 (vote threshold) or 422
(actor also directs).

Middleware order: request ID, real IP, panic recovery, access log, CORS and
compression globally; rate limiting (go-chi/httprate) and Prometheus
instrumentation on the data routes.

Successful query responses are cached in memory for a configurable TTL,
keyed by operation and folded parameter.
*/
package api
