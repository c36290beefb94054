// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics provides Prometheus metrics for Cinematch.

All collectors are registered with the default registry through promauto
and exposed by the HTTP server at /metrics:

	curl http://localhost:8000/metrics

# Available Metrics

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Catalog:
  - catalog_load_duration_seconds{source}   source is "file" or "cache"
  - catalog_load_errors_total{error_type}
  - catalog_rows

Recommendation engine:
  - recommend_build_stage_duration_seconds{stage}
  - recommend_model_films, recommend_model_vocabulary
  - recommend_requests_total{outcome}
  - recommend_request_duration_seconds

Query service:
  - query_requests_total{operation,outcome}
*/
package metrics
