// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config provides layered configuration for Cinematch.

Configuration is loaded with Koanf v2 from three sources, each overriding
the previous one:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, or the first of DefaultConfigPaths
    that exists
 3. Environment variables, optionally seeded from a .env file

# Environment Variables

	CATALOG_PATH              dataset file (.parquet or .csv)
	CATALOG_THREADS           DuckDB worker threads (0 = NumCPU)
	CATALOG_MAX_MEMORY        DuckDB memory limit (e.g. "1GB")
	CATALOG_CACHE_TTL         lifetime of cached catalog snapshots (0 = forever)

	RECOMMEND_BLEND_WEIGHT    weight of text similarity vs. score proximity (0..1)
	RECOMMEND_TOP_K           number of titles returned per recommendation
	RECOMMEND_KERNEL          cosine or linear
	RECOMMEND_MAX_FEATURES    vocabulary cap (0 = unlimited)
	RECOMMEND_STOP_WORDS      drop English stop words before weighting
	RECOMMEND_LAZY_BUILD      build the model on first request instead of at startup
	RECOMMEND_WORKERS         parallel workers for the similarity build (0 = NumCPU)

	QUERY_MIN_VOTE_COUNT      votes required by the votes-by-title query

	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, ENVIRONMENT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER, LOG_FILE
	RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS

Unmapped environment variables are ignored.
*/
package config
