// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package services adapts server components to suture.Service.
//
// Each wrapper turns a component's own lifecycle (http.Server's blocking
// ListenAndServe, the engine's one-shot Build) into Serve(ctx) that returns
// when ctx is canceled. Returning ctx.Err() on shutdown tells suture the
// stop was requested; any other error triggers a restart.
package services
