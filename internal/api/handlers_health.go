// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/models"
)

// readyPingTimeout bounds the dataset check in the readiness probe.
const readyPingTimeout = 2 * time.Second

// HealthLive handles liveness probes. It answers 200 while the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthResponse{
			Status:    "alive",
			Version:   h.version,
			Uptime:    time.Since(h.startTime).Seconds(),
			Timestamp: time.Now(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady handles readiness probes. It answers 200 once recommendations
// can be served (model built, or lazy build pending) and the dataset is
// readable, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"model": "ok"}
	ready := true

	if !h.recommender.Ready() {
		ready = false
		checks["model"] = h.recommender.Status().State.String()
	}

	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
		defer cancel()
		if err := h.pinger.Ping(ctx); err != nil {
			ready = false
			checks["dataset"] = "unavailable"
		} else {
			checks["dataset"] = "ok"
		}
	}

	health := models.HealthResponse{
		Status:    "ready",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Checks:    checks,
		Timestamp: time.Now(),
	}
	if ready {
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status:   "success",
			Data:     health,
			Metadata: models.Metadata{Timestamp: time.Now()},
		})
		return
	}

	health.Status = "not_ready"
	respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
		Status:   "error",
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    &models.APIError{Code: "NOT_READY", Message: "Service is not ready"},
	})
}
