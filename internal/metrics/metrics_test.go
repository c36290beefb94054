// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations/{title}", "200"))

	RecordAPIRequest("GET", "/api/v1/recommendations/{title}", "200", 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations/{title}", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v", got, before)
	}
}

func TestRecordCatalogLoad(t *testing.T) {
	RecordCatalogLoad("file", 42, 20*time.Millisecond)
	if got := testutil.ToFloat64(CatalogRows); got != 42 {
		t.Errorf("catalog_rows = %v, want 42", got)
	}

	RecordCatalogLoad("cache", 7, time.Microsecond)
	if got := testutil.ToFloat64(CatalogRows); got != 42 {
		t.Errorf("cache hits must not change catalog_rows, got %v", got)
	}

	before := testutil.ToFloat64(CatalogLoadErrors.WithLabelValues("schema_mismatch"))
	RecordCatalogError("schema_mismatch")
	if got := testutil.ToFloat64(CatalogLoadErrors.WithLabelValues("schema_mismatch")); got-before != 1 {
		t.Errorf("catalog_load_errors_total delta = %v, want 1", got-before)
	}
}

func TestRecommendMetrics(t *testing.T) {
	SetModelSize(100, 2500)
	if got := testutil.ToFloat64(RecommendModelFilms); got != 100 {
		t.Errorf("recommend_model_films = %v, want 100", got)
	}
	if got := testutil.ToFloat64(RecommendModelVocabulary); got != 2500 {
		t.Errorf("recommend_model_vocabulary = %v, want 2500", got)
	}

	before := testutil.ToFloat64(RecommendRequests.WithLabelValues("not_found"))
	RecordRecommendation("not_found", time.Millisecond)
	if got := testutil.ToFloat64(RecommendRequests.WithLabelValues("not_found")); got-before != 1 {
		t.Errorf("recommend_requests_total delta = %v, want 1", got-before)
	}

	RecordBuildStage("vectorize", 2*time.Second)
	if n := testutil.CollectAndCount(RecommendBuildStageDuration); n == 0 {
		t.Error("expected build stage histogram to have series")
	}
}

func TestRecordQuery(t *testing.T) {
	before := testutil.ToFloat64(QueryRequests.WithLabelValues("votes_by_title", "excluded"))
	RecordQuery("votes_by_title", "excluded")
	if got := testutil.ToFloat64(QueryRequests.WithLabelValues("votes_by_title", "excluded")); got-before != 1 {
		t.Errorf("query_requests_total delta = %v, want 1", got-before)
	}
}
