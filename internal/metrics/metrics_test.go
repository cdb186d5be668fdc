package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"cidgate/internal/metrics"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.RequestStarted()
		m.RequestFinished("/upload", "POST", "200", 0.1)
		m.UploadCompleted(metrics.OutcomeSuccess, 10)
	})
}

func TestMetrics_UploadCompleted(t *testing.T) {
	m := metrics.New()
	m.UploadCompleted(metrics.OutcomeSuccess, 100)
	m.UploadCompleted(metrics.OutcomeStoreFailed, 50)

	expected := `
# HELP cidgate_gateway_uploaded_bytes_total Bytes forwarded to the object store by successful uploads.
# TYPE cidgate_gateway_uploaded_bytes_total counter
cidgate_gateway_uploaded_bytes_total 100
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"cidgate_gateway_uploaded_bytes_total"))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.RequestStarted()
	m.RequestFinished("/", "GET", "200", 0.01)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `cidgate_http_requests_total{code="200",method="GET",route="/"} 1`)
}

func TestMetrics_RegistryIsServed(t *testing.T) {
	m := metrics.New()
	m.Registry().MustRegister(collectors.NewGoCollector())

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
