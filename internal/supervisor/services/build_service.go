// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ModelBuilder is the part of recommend.Engine the build service drives.
type ModelBuilder interface {
	Build(ctx context.Context) error
	Rebuild(ctx context.Context) error
}

// Invalidator drops cached state derived from a dataset snapshot.
// catalog.DuckDBStore and api.Handler satisfy it.
type Invalidator interface {
	Invalidate()
}

// BuildServiceConfig configures BuildService.
type BuildServiceConfig struct {
	// BuildOnStartup runs Build as soon as the service starts. It is false
	// when the engine builds lazily on the first request.
	BuildOnStartup bool

	// RefreshInterval rebuilds the model on a schedule. 0 disables refresh.
	RefreshInterval time.Duration

	// BuildTimeout bounds a single build. Default: 30m.
	BuildTimeout time.Duration

	// Derived are invalidated after each successful refresh, once the new
	// model is published. The API response cache goes here.
	Derived []Invalidator
}

// BuildService owns the recommendation model lifecycle: the eager build at
// startup and optional periodic refresh.
//
// Build failures are logged, not returned. The engine remembers a failed
// eager build and reports it through its status; restarting the service
// would not retry it.
type BuildService struct {
	engine ModelBuilder
	store  Invalidator
	config BuildServiceConfig
	logger zerolog.Logger
	name   string
}

// NewBuildService creates a build service. store may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBuildService(engine ModelBuilder, store Invalidator, cfg BuildServiceConfig, logger zerolog.Logger) *BuildService {
	if cfg.BuildTimeout <= 0 {
		cfg.BuildTimeout = 30 * time.Minute
	}
	return &BuildService{
		engine: engine,
		store:  store,
		config: cfg,
		logger: logger.With().Str("service", "build").Logger(),
		name:   "build-service",
	}
}

// Serve implements suture.Service.
func (s *BuildService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("build_on_startup", s.config.BuildOnStartup).
		Dur("refresh_interval", s.config.RefreshInterval).
		Msg("build service starting")

	if s.config.BuildOnStartup {
		s.run(ctx, "initial", s.engine.Build)
	}

	if s.config.RefreshInterval <= 0 {
		<-ctx.Done()
		s.logger.Info().Msg("build service shutting down")
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("build service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if s.store != nil {
				s.store.Invalidate()
			}
			if s.run(ctx, "refresh", s.engine.Rebuild) {
				for _, d := range s.config.Derived {
					d.Invalidate()
				}
			}
		}
	}
}

// run executes one build and reports whether it succeeded.
func (s *BuildService) run(ctx context.Context, kind string, fn func(context.Context) error) bool {
	buildCtx, cancel := context.WithTimeout(ctx, s.config.BuildTimeout)
	defer cancel()

	start := time.Now()
	if err := fn(buildCtx); err != nil {
		if ctx.Err() != nil {
			return false
		}
		s.logger.Error().Err(err).Str("kind", kind).Msg("model build failed")
		return false
	}
	s.logger.Info().
		Str("kind", kind).
		Dur("duration", time.Since(start)).
		Msg("model build complete")
	return true
}

// String names the service in supervisor logs.
func (s *BuildService) String() string {
	return s.name
}
