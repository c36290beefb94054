// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package similarity computes the dense pairwise similarity matrix over a
// set of sparse TF-IDF rows and blends it with score proximity.
//
// Pairwise walks an inverted index so each pair only pays for the terms it
// shares. Only the upper triangle is computed; the lower triangle is a copy,
// which makes the matrix exactly symmetric. Rows are spread across a bounded
// number of goroutines with errgroup.
//
// The blended score for films i and j is
//
//	blend = w*sim(i,j) + (1-w)*(1 - |s_i - s_j|)
//
// where s is the min-max scaled vote average and w defaults to
// DefaultBlendWeight.
package similarity
