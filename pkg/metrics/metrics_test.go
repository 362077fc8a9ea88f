package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("studio-service", reg)

	m.RecordHTTPRequest("GET", "/api/v1/stats", 200, 15*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/stats", 200, 5*time.Millisecond)
	m.RecordStoreRequest("agendamentos", "GET", "ok", 3*time.Millisecond)
	m.RecordStoreRequest("agendamentos", "GET", "not_found", time.Millisecond)
	m.SetSnapshotSize(12)
	m.IncStaleResponses()
	m.IncChartRebuilds()
	m.IncChartRebuilds()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/stats", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeRequestsTotal.WithLabelValues("agendamentos", "GET", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeRequestsTotal.WithLabelValues("agendamentos", "GET", "not_found")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.snapshotBookings))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.staleResponsesTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.chartsRebuiltTotal))
}
