// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/query"
	"github.com/tomtom215/cinematch/internal/recommend"
)

type rootFlags struct {
	config  string
	dataset string
	json    bool
}

// datasetStore is a catalog store the CLI closes on exit.
type datasetStore interface {
	catalog.Store
	Close() error
}

type storeOpener func(cfg *config.CatalogConfig) (datasetStore, error)

func openDuckDB(cfg *config.CatalogConfig) (datasetStore, error) {
	return catalog.NewDuckDBStore(cfg)
}

// commandContext loads configuration and the dataset once per invocation.
type commandContext struct {
	flags rootFlags
	open  storeOpener

	once    sync.Once
	err     error
	config  *config.Config
	store   datasetStore
	engine  *recommend.Engine
	queries *query.Service
}

func newCommandContext(open storeOpener) *commandContext {
	return &commandContext{open: open}
}

func (c *commandContext) ensure() error {
	c.once.Do(func() {
		if ds := strings.TrimSpace(c.flags.dataset); ds != "" {
			if err := os.Setenv("CATALOG_PATH", ds); err != nil {
				c.err = err
				return
			}
		}

		cfg, err := config.LoadWithKoanfPath(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.err = err
			return
		}
		c.config = cfg

		// The CLI writes results to stdout; only warnings reach stderr.
		logging.Init(logging.Config{Level: "warn", Format: "console", Timestamp: false})

		store, err := c.open(&cfg.Catalog)
		if err != nil {
			c.err = fmt.Errorf("open dataset: %w", err)
			return
		}
		c.store = store

		recCfg, err := recommend.ConfigFrom(&cfg.Recommend)
		if err != nil {
			c.err = err
			return
		}
		// A one-shot process builds on demand.
		recCfg.LazyBuild = true
		engine, err := recommend.NewEngine(store, recCfg, logging.WithComponent("recommend"))
		if err != nil {
			c.err = err
			return
		}
		c.engine = engine
		c.queries = query.NewService(store, query.Options{MinVoteCount: cfg.Query.MinVoteCount}, logging.WithComponent("query"))
	})
	return c.err
}

func (c *commandContext) recommender() (*recommend.Engine, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	return c.engine, nil
}

func (c *commandContext) queryService() (*query.Service, error) {
	if err := c.ensure(); err != nil {
		return nil, err
	}
	return c.queries, nil
}

func (c *commandContext) close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}
