// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package catalog loads the film dataset and exposes it as an ordered,
immutable Catalog.

A Store reads only the columns a caller asks for. DuckDBStore projects them
straight out of a Parquet or CSV file through an embedded DuckDB engine
(read_parquet / read_csv_auto), so a query that needs two columns never
materializes the free-text feature blob:

	store, err := catalog.NewDuckDBStore(&cfg.Catalog)
	if err != nil {
	    return err
	}
	defer store.Close()

	cat, err := store.Load(ctx, catalog.ColumnTitle, catalog.ColumnVoteAverage)

Title, actor and director columns are folded with textnorm.Normalize on
load. The original title is kept for display in Film.Title and the folded
form in Film.TitleKey.

# Errors

  - ErrDataUnavailable: the dataset file is missing, unreadable or corrupt
  - ErrSchemaMismatch: a requested column is absent from the dataset

Both are returned wrapped; match them with errors.Is.

# Row Order

Rows keep their file order. The row index is the identity that aligns a
Catalog with anything derived from it, so derived data is only valid for
the snapshot it was computed from.
*/
package catalog
