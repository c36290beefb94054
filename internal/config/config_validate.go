// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

var (
	validLogLevels  = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"json": true, "console": true}
	validKernels    = map[string]bool{"cosine": true, "linear": true}
	validDatasetExt = map[string]bool{".parquet": true, ".csv": true}
	validEnvs       = map[string]bool{"development": true, "staging": true, "production": true}
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if c.Query.MinVoteCount < 0 {
		return fmt.Errorf("QUERY_MIN_VOTE_COUNT must not be negative")
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.Environment != "" && !validEnvs[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	ext := strings.ToLower(filepath.Ext(c.Catalog.Path))
	if !validDatasetExt[ext] {
		return fmt.Errorf("CATALOG_PATH must point to a .parquet or .csv file, got %q", ext)
	}
	if c.Catalog.Threads < 0 {
		return fmt.Errorf("CATALOG_THREADS must not be negative")
	}
	if c.Catalog.CacheTTL < 0 {
		return fmt.Errorf("CATALOG_CACHE_TTL must not be negative")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.BlendWeight < 0 || r.BlendWeight > 1 {
		return fmt.Errorf("RECOMMEND_BLEND_WEIGHT must be between 0 and 1, got %v", r.BlendWeight)
	}
	if r.TopK < 1 || r.TopK > 100 {
		return fmt.Errorf("RECOMMEND_TOP_K must be between 1 and 100, got %d", r.TopK)
	}
	if !validKernels[r.Kernel] {
		return fmt.Errorf("RECOMMEND_KERNEL must be one of: cosine, linear")
	}
	if r.MaxFeatures < 0 {
		return fmt.Errorf("RECOMMEND_MAX_FEATURES must not be negative")
	}
	if r.Workers < 0 {
		return fmt.Errorf("RECOMMEND_WORKERS must not be negative")
	}
	if r.RefreshInterval < 0 {
		return fmt.Errorf("RECOMMEND_REFRESH_INTERVAL must not be negative")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
