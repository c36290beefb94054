// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Command server runs the Cinematch HTTP API.
//
// The server initializes components in order:
//
//  1. Configuration: defaults, config.yaml, .env and environment (koanf v2)
//  2. Logging: zerolog with an optional rotated file
//  3. Dataset: a DuckDB-backed catalog store over a Parquet or CSV file
//  4. Recommendation engine and query service, sharing the store
//  5. Supervisor tree: build service (data layer) and HTTP server (API layer)
//
// # Configuration
//
// The only required setting is the dataset:
//
//	export CATALOG_PATH=/data/movies.parquet
//	./server
//
// Commonly tuned variables: HTTP_PORT (default 8000), RECOMMEND_LAZY_BUILD,
// RECOMMEND_BLEND_WEIGHT, RECOMMEND_TOP_K, RECOMMEND_REFRESH_INTERVAL,
// QUERY_MIN_VOTE_COUNT, LOG_LEVEL and LOG_FORMAT.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
// in-flight requests for up to 10s, then the dataset store is closed.
package main
