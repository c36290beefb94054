// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

import (
	"time"
)

// APIResponse is the envelope of every HTTP response.
//
// Status is "success" with Data populated, or "error" with Error populated.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how a response was produced.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is a structured error.
//
// Codes used by the API:
//   - VALIDATION_ERROR: malformed path parameter
//   - INVALID_MONTH, INVALID_DAY: unknown month or weekday
//   - TITLE_NOT_FOUND, ACTOR_NOT_FOUND, DIRECTOR_NOT_FOUND
//   - INSUFFICIENT_VOTES: title below the vote threshold
//   - EXCLUDED_BY_POLICY: actor also credited as a director
//   - MODEL_NOT_READY: recommendation model not built
//   - DATA_UNAVAILABLE, SCHEMA_MISMATCH: dataset problems
//   - RATE_LIMIT_EXCEEDED, INTERNAL_ERROR
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version,omitempty"`
	Uptime    float64           `json:"uptime_seconds"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}
