// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package cache provides a thread-safe in-memory cache with TTL support.

The catalog store uses it to keep loaded catalog snapshots keyed by the
column set they were projected with, so repeated queries over the same
columns do not re-read the dataset file.

# Usage

	c := cache.New[*catalog.Catalog](10 * time.Minute)
	key := cache.GenerateKey("catalog", columns)
	if snap, ok := c.Get(key); ok {
	    return snap, nil
	}
	c.Set(key, snap)

A TTL of zero or less keeps entries until they are deleted or cleared.
Expiration is checked lazily on Get; there is no background goroutine.
*/
package cache
