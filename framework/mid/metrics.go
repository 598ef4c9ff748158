package mid

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/internal"
)

// RequestMetrics holds the http collectors registered for the api.
type RequestMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewRequestMetrics registers the request collectors on reg.
func NewRequestMetrics(reg prometheus.Registerer) *RequestMetrics {
	m := &RequestMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "erp",
			Name:      "http_requests_total",
			Help:      "Handled api requests by route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "erp",
			Name:      "http_request_duration_seconds",
			Help:      "Api request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(m.requests, m.latency)

	return m
}

// Metrics counts every request and observes its latency, keyed by the route template.
func Metrics(m *RequestMetrics) web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			err := before(ctx)

			route := ctx.FullPath()
			status := ctx.Writer.Status()

			if v, ok := internal.DataFromContext(ctx); ok {
				if v.StatusCode != 0 {
					status = v.StatusCode
				}

				m.latency.WithLabelValues(ctx.Request.Method, route).Observe(time.Since(v.Now).Seconds())
			}

			m.requests.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(status)).Inc()

			return err
		}

		return h
	}

	return f
}
