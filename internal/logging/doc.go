// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package logging provides centralized zerolog-based structured logging for Cinematch.
//
// A single global logger is configured once at startup and shared by the
// catalog store, the recommendation engine, the query service and the HTTP
// layer. Output is JSON for production and a console writer for development,
// optionally teed into a size-rotated log file.
//
// # Quick Start
//
//	import "github.com/tomtom215/cinematch/internal/logging"
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//	defer logging.Close()
//
//	logging.Info().Int("films", n).Msg("Catalog loaded")
//	logging.Ctx(ctx).Debug().Str("title", title).Msg("Title not in catalog")
//
// # File Output
//
// When Config.File is set, every event is also written to that path through
// lumberjack, which rotates the file once it exceeds MaxSizeMB and keeps at
// most MaxBackups old files for MaxAgeDays days.
//
// # Suture Integration
//
// NewSlogLogger returns an slog.Logger backed by the global zerolog logger so
// that sutureslog can report supervisor events through the same pipeline.
package logging
