// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Command cinematch queries a film dataset from the terminal.
//
//	cinematch --dataset movies.parquet recommend "Toy Story"
//	cinematch score Jumanji
//	cinematch releases month enero
//	cinematch --json director "Sofia Coppola"
//
// Configuration is loaded the same way as the server (config.yaml, .env,
// environment); --dataset overrides CATALOG_PATH.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cc := newCommandContext(openDuckDB)
	err := newRootCommand(cc).Execute()
	if cerr := cc.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
