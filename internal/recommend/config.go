// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/recommend/similarity"
)

// DefaultTopK is the number of titles returned per recommendation.
const DefaultTopK = 5

// MaxTopK bounds TopK.
const MaxTopK = 100

// Config contains the recommendation engine parameters.
type Config struct {
	// BlendWeight is the share of text similarity in the blended score.
	BlendWeight float64 `json:"blend_weight"`

	// TopK is the maximum number of titles per recommendation.
	TopK int `json:"top_k"`

	// Kernel selects the pairwise similarity function.
	Kernel similarity.Kernel `json:"kernel"`

	// MaxFeatures caps the vocabulary size. 0 keeps every term.
	MaxFeatures int `json:"max_features"`

	// StopWords drops common English words before vectorizing.
	StopWords bool `json:"stop_words"`

	// LazyBuild defers the build to the first Recommend call.
	LazyBuild bool `json:"lazy_build"`

	// Workers is the build parallelism. 0 uses every CPU.
	Workers int `json:"workers"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		BlendWeight: similarity.DefaultBlendWeight,
		TopK:        DefaultTopK,
		Kernel:      similarity.KernelCosine,
	}
}

// ConfigFrom converts the application configuration section.
func ConfigFrom(rc *config.RecommendConfig) (*Config, error) {
	kernel, err := similarity.ParseKernel(rc.Kernel)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		BlendWeight: rc.BlendWeight,
		TopK:        rc.TopK,
		Kernel:      kernel,
		MaxFeatures: rc.MaxFeatures,
		StopWords:   rc.StopWords,
		LazyBuild:   rc.LazyBuild,
		Workers:     rc.Workers,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.BlendWeight < 0 || c.BlendWeight > 1 {
		return fmt.Errorf("blend_weight must be in [0, 1], got %v", c.BlendWeight)
	}
	if c.TopK < 1 || c.TopK > MaxTopK {
		return fmt.Errorf("top_k must be between 1 and %d, got %d", MaxTopK, c.TopK)
	}
	if _, err := similarity.ParseKernel(string(c.Kernel)); err != nil {
		return err
	}
	if c.MaxFeatures < 0 {
		return fmt.Errorf("max_features must be non-negative, got %d", c.MaxFeatures)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
