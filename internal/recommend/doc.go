// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend produces similar-title recommendations for films in
// the catalog.
//
// # Pipeline
//
// A build runs once per process over a single catalog snapshot:
//
//   - Load: title, vote_average and features from the catalog store
//   - Vectorize: TF-IDF over the features text (package tfidf)
//   - Similarity: pairwise cosine or linear kernel (package similarity)
//   - Blend: mix text similarity with vote-average proximity
//
// The resulting model (catalog snapshot plus blended matrix) is immutable
// and published atomically. Matrix rows are only meaningful against the
// snapshot they were built from, so both live in the same value.
//
// # Ranking
//
// Recommend folds the query title, resolves the first catalog row with the
// same folded title, and ranks every other row by descending blended score.
// Ties keep catalog order. Rows sharing the query's folded title are never
// returned.
//
// # Build Modes
//
// With eager builds the caller (normally the supervisor's build service)
// invokes Build at startup and Recommend returns ErrNotBuilt until it
// completes. With lazy builds the first Recommend call builds the model;
// concurrent callers wait for that single build. A failed build is kept and
// returned to later callers until Rebuild succeeds.
//
// # Usage
//
//	engine, err := recommend.NewEngine(store, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	if err := engine.Build(ctx); err != nil {
//	    return err
//	}
//	titles, err := engine.Recommend(ctx, "Toy Story")
//
// # Thread Safety
//
// Engine is safe for concurrent use. Reads after a build are lock-free.
package recommend
