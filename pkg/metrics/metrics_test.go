package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Counters(t *testing.T) {
	m := NewManager(WithNamespace("test"), WithSubsystem("unit"))

	m.RecordRPC("/rating.v1.RatingService/SubmitRatings", "OK", 20*time.Millisecond)
	m.RecordRPC("/rating.v1.RatingService/SubmitRatings", "OK", 30*time.Millisecond)
	m.RecordRPC("/rating.v1.RatingService/SubmitRatings", "InvalidArgument", time.Millisecond)
	m.AddRatingsSubmitted(3)
	m.AddRatingsSubmitted(0)
	m.IncTemplateMiss()
	m.RecordCacheLookup(true)
	m.RecordCacheLookup(false)
	m.RecordCacheLookup(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("/rating.v1.RatingService/SubmitRatings", "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rpcRequests.WithLabelValues("/rating.v1.RatingService/SubmitRatings", "InvalidArgument")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ratingsSubmitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.templateMisses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.rpcDuration, "test_unit_rpc_duration_seconds"))
}

func TestManager_NilIsNoop(t *testing.T) {
	var m *Manager

	assert.NotPanics(t, func() {
		m.RecordRPC("m", "OK", time.Second)
		m.AddRatingsSubmitted(1)
		m.IncTemplateMiss()
		m.RecordCacheLookup(true)
	})
}

func TestManager_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewManager()
		NewManager()
	})

	reg := prometheus.NewRegistry()
	m := NewManager(WithRegistry(reg))
	assert.Same(t, reg, m.Registry())
}

func TestManager_Handler(t *testing.T) {
	m := NewManager()
	m.AddRatingsSubmitted(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "collab_rating_ratings_submitted_total 2")
	assert.Contains(t, string(body), "go_goroutines")
}
