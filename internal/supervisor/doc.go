// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor runs the long-lived parts of the server under a suture
supervisor tree.

	cinematch (root)
	├── data-layer   services.BuildService (model build and refresh)
	└── api-layer    services.HTTPServerService

A service that returns an error is restarted with suture's backoff. The
layers are separate supervisors, so a crash-looping build service never
takes the HTTP server down with it; the API keeps answering catalog queries
and reports MODEL_NOT_READY for recommendations.

Supervisor events are logged through sutureslog on top of the zerolog-backed
slog handler from package logging.
*/
package supervisor
