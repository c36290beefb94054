// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package middleware provides HTTP middleware shared by the API router:
// request IDs, Prometheus instrumentation and structured access logs.
//
// All middleware has the func(http.Handler) http.Handler shape used by chi.
package middleware
