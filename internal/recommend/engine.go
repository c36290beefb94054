// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend/similarity"
	"github.com/tomtom215/cinematch/internal/recommend/tfidf"
)

// buildColumns are the catalog columns a build needs.
var buildColumns = []catalog.Column{
	catalog.ColumnTitle,
	catalog.ColumnVoteAverage,
	catalog.ColumnFeatures,
}

// model is an immutable build result. blended rows are indexed by the
// positions of catalog.
type model struct {
	catalog    *catalog.Catalog
	keys       []string
	blended    *similarity.Matrix
	vocabulary []string
}

// Engine builds and serves the similar-title model.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	store  catalog.Store
	logger zerolog.Logger

	// buildMu serializes builds and guards built and buildErr.
	buildMu  sync.Mutex
	built    bool
	buildErr error

	current atomic.Pointer[model]

	statusMu sync.RWMutex
	status   Status
}

// NewEngine creates an engine over store. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(store catalog.Store, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("catalog store is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		store:  store,
		logger: logger.With().Str("component", "recommend").Logger(),
		status: Status{State: StateIdle, LazyBuild: cfg.LazyBuild},
	}, nil
}

// Build loads the catalog and publishes a model. It runs at most once:
// later calls return the first build's result without rebuilding. A build
// interrupted by ctx is not remembered and may be retried.
func (e *Engine) Build(ctx context.Context) error {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	if e.built {
		return e.buildErr
	}
	return e.buildLocked(ctx)
}

// Rebuild builds a fresh model from the store even if one exists. The
// previous model keeps serving until the new one is published; on failure
// it stays in place.
func (e *Engine) Rebuild(ctx context.Context) error {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	return e.buildLocked(ctx)
}

// buildLocked must be called with buildMu held.
func (e *Engine) buildLocked(ctx context.Context) error {
	e.setState(StateBuilding)
	e.logger.Info().Msg("building recommendation model")

	start := time.Now()
	m, err := e.build(ctx)
	elapsed := time.Since(start)

	if err != nil {
		interrupted := ctx.Err() != nil
		if !interrupted {
			e.built = true
			e.buildErr = err
		}
		e.finishBuild(nil, elapsed, err, interrupted)
		e.logger.Error().Err(err).Dur("duration", elapsed).Bool("interrupted", interrupted).
			Msg("recommendation model build failed")
		return err
	}

	e.current.Store(m)
	e.built = true
	e.buildErr = nil
	e.finishBuild(m, elapsed, nil, false)
	metrics.SetModelSize(m.catalog.Len(), len(m.vocabulary))

	e.logger.Info().
		Int("films", m.catalog.Len()).
		Int("vocabulary", len(m.vocabulary)).
		Dur("duration", elapsed).
		Msg("recommendation model ready")
	return nil
}

// build runs the pipeline without touching engine state.
func (e *Engine) build(ctx context.Context) (*model, error) {
	var (
		cat     *catalog.Catalog
		vectors []tfidf.Vector
		vocab   []string
		blended *similarity.Matrix
	)

	err := e.stage("load", func() error {
		var err error
		cat, err = e.store.Load(ctx, buildColumns...)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = e.stage("vectorize", func() error {
		corpus := make([]string, cat.Len())
		for i, f := range cat.All() {
			corpus[i] = f.Features
		}
		vectorizer := tfidf.New(tfidf.Options{
			MaxFeatures: e.config.MaxFeatures,
			StopWords:   e.config.StopWords,
		})
		var err error
		vectors, err = vectorizer.FitTransform(ctx, corpus)
		if err != nil {
			return fmt.Errorf("vectorize features: %w", err)
		}
		vocab = vectorizer.Vocabulary()
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = e.stage("similarity", func() error {
		var err error
		blended, err = similarity.Pairwise(ctx, vectors, e.config.Kernel, e.config.Workers)
		if err != nil {
			return fmt.Errorf("pairwise similarity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = e.stage("blend", func() error {
		votes := make([]float64, cat.Len())
		for i, f := range cat.All() {
			votes[i] = f.VoteAverage
		}
		scaled := similarity.MinMaxScale(votes)
		if err := similarity.Blend(ctx, blended, scaled, e.config.BlendWeight, e.config.Workers); err != nil {
			return fmt.Errorf("blend scores: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, cat.Len())
	for i, f := range cat.All() {
		keys[i] = f.TitleKey
	}

	return &model{catalog: cat, keys: keys, blended: blended, vocabulary: vocab}, nil
}

func (e *Engine) stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	metrics.RecordBuildStage(name, elapsed)
	e.logger.Debug().Str("stage", name).Dur("duration", elapsed).Err(err).Msg("build stage finished")
	return err
}

// Recommend returns up to TopK display titles most similar to title.
func (e *Engine) Recommend(ctx context.Context, title string) ([]string, error) {
	recs, err := e.RecommendDetailed(ctx, title)
	if err != nil {
		return nil, err
	}
	titles := make([]string, len(recs))
	for i, r := range recs {
		titles[i] = r.Title
	}
	return titles, nil
}

// RecommendDetailed is Recommend with blended scores.
func (e *Engine) RecommendDetailed(ctx context.Context, title string) ([]Recommendation, error) {
	start := time.Now()

	m, err := e.model(ctx)
	if err != nil {
		metrics.RecordRecommendation("not_built", time.Since(start))
		return nil, err
	}

	idx, ok := m.catalog.IndexOf(title)
	if !ok {
		metrics.RecordRecommendation("not_found", time.Since(start))
		e.logger.Debug().Str("title", title).Msg("recommendation title not found")
		return nil, fmt.Errorf("%w: %q", ErrTitleNotFound, title)
	}

	recs := m.rank(idx, e.config.TopK)
	metrics.RecordRecommendation("ok", time.Since(start))
	return recs, nil
}

// model returns the published model, building it first in lazy mode.
func (e *Engine) model(ctx context.Context) (*model, error) {
	if m := e.current.Load(); m != nil {
		return m, nil
	}

	if !e.config.LazyBuild {
		e.statusMu.RLock()
		lastErr := e.status.LastError
		e.statusMu.RUnlock()
		if lastErr != "" {
			return nil, fmt.Errorf("%w: last build failed: %s", ErrNotBuilt, lastErr)
		}
		return nil, ErrNotBuilt
	}

	// A client going away must not abort a build other callers wait on.
	if err := e.Build(context.WithoutCancel(ctx)); err != nil {
		return nil, err
	}
	if m := e.current.Load(); m != nil {
		return m, nil
	}
	return nil, ErrNotBuilt
}

// rank orders every row except those sharing the query's folded title by
// descending blended score, keeping catalog order on ties.
func (m *model) rank(idx, k int) []Recommendation {
	row := m.blended.Row(idx)
	key := m.keys[idx]

	candidates := make([]int, 0, len(row))
	for j := range row {
		if m.keys[j] != key {
			candidates = append(candidates, j)
		}
	}
	slices.SortStableFunc(candidates, func(a, b int) int {
		return cmp.Compare(row[b], row[a])
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	recs := make([]Recommendation, len(candidates))
	for i, j := range candidates {
		recs[i] = Recommendation{
			Title: m.catalog.At(j).Title,
			Score: row[j],
			Index: j,
		}
	}
	return recs
}

// Vocabulary returns the published model's vocabulary, or nil before a
// successful build.
func (e *Engine) Vocabulary() []string {
	m := e.current.Load()
	if m == nil {
		return nil
	}
	return slices.Clone(m.vocabulary)
}

// Status returns the current build status.
func (e *Engine) Status() Status {
	e.statusMu.RLock()
	defer e.statusMu.RUnlock()
	return e.status
}

// Ready reports whether Recommend can serve requests: a model is published,
// or lazy builds are enabled and no build has failed.
func (e *Engine) Ready() bool {
	if e.current.Load() != nil {
		return true
	}
	st := e.Status()
	return e.config.LazyBuild && st.State != StateFailed
}

func (e *Engine) setState(state BuildState) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()
	e.status.State = state
}

func (e *Engine) finishBuild(m *model, elapsed time.Duration, err error, interrupted bool) {
	e.statusMu.Lock()
	defer e.statusMu.Unlock()

	e.status.BuildDurationMS = elapsed.Milliseconds()
	if !interrupted {
		e.status.Builds++
	}

	switch {
	case err == nil:
		e.status.State = StateReady
		e.status.LastError = ""
		e.status.Films = m.catalog.Len()
		e.status.Vocabulary = len(m.vocabulary)
		e.status.BuiltAt = time.Now()
	case e.current.Load() != nil:
		// A failed rebuild leaves the previous model serving.
		e.status.State = StateReady
		e.status.LastError = err.Error()
	case interrupted:
		e.status.State = StateIdle
		e.status.LastError = err.Error()
	default:
		e.status.State = StateFailed
		e.status.LastError = err.Error()
	}
}

// IsNotFound reports whether err means the title has no catalog match.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTitleNotFound)
}
