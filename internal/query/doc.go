// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package query answers descriptive questions about the film catalog:
// release counts per month or weekday, title score and vote lookups, and
// actor and director summaries.
//
// Every operation loads only the columns it needs from the catalog store.
// Lookups return a Result that distinguishes a found value, a miss, and a
// value withheld by policy (for example, a title below the vote threshold
// or an actor who also directs). Store failures are returned as errors.
//
// All text inputs are folded with textnorm before matching, so lookups are
// case and accent insensitive.
package query
