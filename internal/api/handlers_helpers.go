// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"errors"
	"hash/fnv"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/middleware"
	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/textnorm"
	"github.com/tomtom215/cinematch/internal/validation"
)

// respondJSON writes response with status. Successful responses carry an
// ETag and are cacheable by clients for a minute.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	if response.Metadata.RequestID == "" {
		response.Metadata.RequestID = w.Header().Get(middleware.RequestIDHeader)
	}

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if status < http.StatusBadRequest {
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Header().Set("ETag", generateETag(data))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func generateETag(data []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(data)
	return `"` + strconv.FormatUint(uint64(h.Sum32()), 16) + `"`
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time, cached bool) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Cached:      cached,
		},
	})
}

// respondError writes an error envelope. A non-nil err is logged; expected
// conditions such as misses pass nil.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	respondErrorDetails(w, status, code, message, nil, err)
}

func respondErrorDetails(w http.ResponseWriter, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		logging.Error().
			Str("code", code).
			Str("request_id", w.Header().Get(middleware.RequestIDHeader)).
			Str("error", logging.SanitizeValue(err.Error())).
			Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondFailure maps infrastructure errors to status codes.
func respondFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotBuilt):
		respondError(w, http.StatusServiceUnavailable, "MODEL_NOT_READY",
			"The recommendation model is not ready yet", nil)
	case errors.Is(err, catalog.ErrDataUnavailable):
		respondError(w, http.StatusServiceUnavailable, "DATA_UNAVAILABLE",
			"The film dataset is unavailable", err)
	case errors.Is(err, catalog.ErrSchemaMismatch):
		respondError(w, http.StatusInternalServerError, "SCHEMA_MISMATCH",
			"The film dataset is missing required columns", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusServiceUnavailable, "REQUEST_CANCELLED",
			"The request was cancelled or timed out", nil)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"An internal error occurred", err)
	}
}

// validateRequest runs the struct validator and converts failures to an
// APIError with code VALIDATION_ERROR.
func validateRequest(v interface{}) *models.APIError {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}
	apiErr := verr.ToAPIError()
	return &models.APIError{Code: apiErr.Code, Message: apiErr.Message, Details: apiErr.Details}
}

func respondValidation(w http.ResponseWriter, apiErr *models.APIError) {
	respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
}

// pathParam returns a decoded chi URL parameter. chi matches on the raw
// path when the request contains reserved escapes, leaving them encoded.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if strings.Contains(v, "%") {
		if decoded, err := url.PathUnescape(v); err == nil {
			return decoded
		}
	}
	return v
}

// foldedKey builds a cache key from an operation and its folded argument.
func foldedKey(op, arg string) string {
	return cache.GenerateKey(op, map[string]string{"arg": textnorm.Normalize(strings.TrimSpace(arg))})
}
