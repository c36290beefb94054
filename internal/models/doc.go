// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package models defines the request and response structures of the HTTP API.

Every endpoint answers with an APIResponse envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "2026-01-02T15:04:05Z", "query_time_ms": 3}
	}

Errors carry a machine-readable code:

	{
	  "status": "error",
	  "data": null,
	  "metadata": {"timestamp": "2026-01-02T15:04:05Z"},
	  "error": {"code": "TITLE_NOT_FOUND", "message": "title \"Heat 2\" not found"}
	}

Request structs carry validate tags checked by package validation before
handlers touch the catalog.
*/
package models
