package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PunchesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "optitrack_punches_recorded_total",
		Help: "Punches persisted, by punch type.",
	}, []string{"type"})

	PunchConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "optitrack_punch_conflicts_total",
		Help: "Punches rejected because they would break IN/OUT alternation.",
	}, []string{"type"})

	OvertimeTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "optitrack_overtime_transitions_total",
		Help: "Overtime requests moved out of PENDING, by resulting status.",
	}, []string{"status"})

	EmailsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "optitrack_emails_delivered_total",
		Help: "Email delivery attempts by the consumer, by result.",
	}, []string{"result"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "optitrack_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "optitrack_http_request_duration_seconds",
		Help:    "HTTP request latency by route and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// Middleware records request count and latency per matched route.
func Middleware(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
