package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"optitrack/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(metrics.Middleware("/metrics"))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", metrics.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	metrics.PunchesRecorded.WithLabelValues("IN").Inc()

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `optitrack_http_requests_total{method="GET",route="/ping",status="204"}`))
	assert.True(t, strings.Contains(body, `optitrack_punches_recorded_total{type="IN"}`))
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(metrics.OvertimeTransitions.WithLabelValues("APPROVED"))
	metrics.OvertimeTransitions.WithLabelValues("APPROVED").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.OvertimeTransitions.WithLabelValues("APPROVED")))
}
