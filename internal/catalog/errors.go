// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"io"

	"github.com/tomtom215/cinematch/internal/logging"
)

var (
	// ErrDataUnavailable means the dataset could not be read.
	ErrDataUnavailable = errors.New("catalog data unavailable")

	// ErrSchemaMismatch means a requested column is missing from the dataset.
	ErrSchemaMismatch = errors.New("catalog schema mismatch")
)

// errorType maps a load error to a metrics label.
func errorType(err error) string {
	switch {
	case errors.Is(err, ErrSchemaMismatch):
		return "schema_mismatch"
	case errors.Is(err, ErrDataUnavailable):
		return "data_unavailable"
	default:
		return "other"
	}
}

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}
