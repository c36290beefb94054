// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/query"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Recommender is the part of recommend.Engine the API uses.
type Recommender interface {
	RecommendDetailed(ctx context.Context, title string) ([]recommend.Recommendation, error)
	Status() recommend.Status
	Ready() bool
}

// Querier is the part of query.Service the API uses.
type Querier interface {
	CountByMonth(ctx context.Context, month time.Month) (query.ReleaseCount, error)
	CountByWeekday(ctx context.Context, day query.Weekday) (query.ReleaseCount, error)
	Score(ctx context.Context, title string) (query.Result[query.TitleScore], error)
	Votes(ctx context.Context, title string) (query.Result[query.TitleVotes], error)
	Actor(ctx context.Context, name string) (query.Result[query.ActorStats], error)
	Director(ctx context.Context, name string) (query.Result[query.DirectorReport], error)
	MinVoteCount() int64
}

// Pinger checks that the dataset can still be read.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandlerOptions configures optional Handler behavior.
type HandlerOptions struct {
	// Store is pinged by the readiness probe when set.
	Store Pinger

	// CacheTTL is how long successful responses are reused. 0 disables
	// the response cache.
	CacheTTL time.Duration

	// Version is reported by the health endpoints.
	Version string
}

// Handler serves the API endpoints.
type Handler struct {
	recommender Recommender
	queries     Querier
	pinger      Pinger
	responses   *cache.Cache[interface{}]
	generation  atomic.Uint64
	version     string
	startTime   time.Time
}

// NewHandler creates a Handler.
func NewHandler(rec Recommender, queries Querier, opts HandlerOptions) *Handler {
	h := &Handler{
		recommender: rec,
		queries:     queries,
		pinger:      opts.Store,
		version:     opts.Version,
		startTime:   time.Now(),
	}
	if opts.CacheTTL > 0 {
		h.responses = cache.New[interface{}](opts.CacheTTL)
	}
	return h
}

// responseKey builds a cache key from an operation and its folded argument.
// Keys carry the cache generation, so a payload computed before Invalidate
// is never served after it.
func (h *Handler) responseKey(op, arg string) string {
	return foldedKey(op+":"+strconv.FormatUint(h.generation.Load(), 10), arg)
}

// Invalidate drops every cached response. It is called after the model is
// rebuilt from a fresh dataset snapshot.
func (h *Handler) Invalidate() {
	h.generation.Add(1)
	if h.responses != nil {
		h.responses.Clear()
	}
}

// cached returns a stored response payload.
func (h *Handler) cached(key string) (interface{}, bool) {
	if h.responses == nil {
		return nil, false
	}
	return h.responses.Get(key)
}

// cachedAs returns a stored payload of type T.
func cachedAs[T any](h *Handler, key string) (T, bool) {
	var zero T
	v, ok := h.cached(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// remember stores a response payload.
func (h *Handler) remember(key string, data interface{}) {
	if h.responses != nil {
		h.responses.Set(key, data)
	}
}

// CacheStats reports response cache effectiveness. ok is false when
// caching is disabled.
func (h *Handler) CacheStats() (stats cache.Stats, hitRate float64, ok bool) {
	if h.responses == nil {
		return cache.Stats{}, 0, false
	}
	return h.responses.GetStats(), h.responses.HitRate(), true
}
