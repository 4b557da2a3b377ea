package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCounters(t *testing.T) {
	m := New()
	m.MovementRecorded("out")
	m.MovementRecorded("out")
	m.MovementRecorded("in")
	m.MovementRejected("invalid_input")
	m.LowStockReached("item-1")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.movements.WithLabelValues("out")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.movements.WithLabelValues("in")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.movementsRejected.WithLabelValues("invalid_input")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lowStock))
}

func TestHandlerExposesHTTPMetrics(t *testing.T) {
	m := New()
	m.ObserveHTTP("GET", "/api/patients/:id", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `hnsm_http_requests_total{method="GET",route="/api/patients/:id",status="200"} 1`)
	assert.Contains(t, string(body), "hnsm_http_request_duration_seconds_bucket")
	assert.Contains(t, string(body), "go_goroutines")
}
