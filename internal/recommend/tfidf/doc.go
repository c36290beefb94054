// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package tfidf turns free-text documents into sparse TF-IDF vectors.
//
// The weighting follows the usual smoothed formulation:
//
//	idf(t)      = ln((1 + n) / (1 + df(t))) + 1
//	w(t, d)     = count(t, d) * idf(t)
//	row(d)      = w(., d) / ||w(., d)||_2
//
// Tokens are lower-cased runs of two or more letters, digits or
// underscores. The vocabulary is sorted alphabetically, so the same corpus
// always produces the same term indices. A document with no tokens yields
// the zero vector.
package tfidf
