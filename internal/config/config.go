// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Query     QueryConfig     `koanf:"query"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// CatalogConfig describes the dataset file and the embedded DuckDB engine
// used to read it.
type CatalogConfig struct {
	// Path to a Parquet or CSV file holding one row per film.
	Path string `koanf:"path"`

	// Threads is the DuckDB thread count. 0 uses runtime.NumCPU().
	Threads int `koanf:"threads"`

	// MaxMemory is the DuckDB memory limit, e.g. "1GB".
	MaxMemory string `koanf:"max_memory"`

	// CacheTTL is how long a loaded column projection is reused.
	// 0 keeps snapshots for the lifetime of the process.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// CacheDisabled re-reads the file on every load.
	CacheDisabled bool `koanf:"cache_disabled"`
}

// RecommendConfig tunes the similar-title recommendation engine.
type RecommendConfig struct {
	// BlendWeight is the share of text similarity in the blended score;
	// the remainder goes to vote-average proximity.
	BlendWeight float64 `koanf:"blend_weight"`

	// TopK is the number of titles returned per recommendation.
	TopK int `koanf:"top_k"`

	// Kernel selects the similarity measure: cosine or linear.
	Kernel string `koanf:"kernel"`

	// MaxFeatures caps the vocabulary to the most frequent terms. 0 = no cap.
	MaxFeatures int `koanf:"max_features"`

	// StopWords removes a fixed English stop-word list before weighting.
	StopWords bool `koanf:"stop_words"`

	// LazyBuild defers the model build to the first recommendation request.
	LazyBuild bool `koanf:"lazy_build"`

	// Workers bounds the goroutines used for the pairwise similarity build.
	// 0 uses runtime.NumCPU().
	Workers int `koanf:"workers"`

	// RefreshInterval re-reads the dataset and rebuilds the model on a
	// schedule. 0 builds once.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// QueryConfig holds descriptive query settings.
type QueryConfig struct {
	// MinVoteCount is the number of votes a film needs before the
	// votes-by-title query reports on it.
	MinVoteCount int64 `koanf:"min_vote_count"`
}

// SecurityConfig holds request throttling and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`

	// File enables a rotated log file in addition to stderr.
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// IsProduction reports whether the server runs in production mode.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}
