// Package metrics exposes prometheus collectors for capacity computations
// and the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"capplan/internal/domain/capacity"
	"capplan/internal/infrastructure/storage/postgres"
)

const namespace = "capplan"

var _ capacity.Metrics = (*Metrics)(nil)

// Metrics holds all service collectors.
type Metrics struct {
	registry *prometheus.Registry

	gaps         *prometheus.CounterVec
	computations *prometheus.HistogramVec
	rows         *prometheus.HistogramVec
	failures     *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates collectors on a private registry with Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		gaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requirement_gaps_total",
			Help:      "Demand lines skipped while computing requirements, by reason.",
		}, []string{"reason"}),
		computations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "computation_duration_seconds",
			Help:      "Duration of capacity computations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		rows: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "computation_rows",
			Help:      "Rows returned by capacity computations.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "computation_failures_total",
			Help:      "Capacity computations that returned an error.",
		}, []string{"operation"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	reg.MustRegister(m.gaps, m.computations, m.rows, m.failures, m.httpRequests, m.httpDuration)
	return m
}

// RecordGap counts a skipped demand line.
func (m *Metrics) RecordGap(reason string) {
	m.gaps.WithLabelValues(reason).Inc()
}

// ObserveComputation records duration and size of one computation.
func (m *Metrics) ObserveComputation(op string, elapsed time.Duration, rows int, err error) {
	m.computations.WithLabelValues(op).Observe(elapsed.Seconds())
	if err != nil {
		m.failures.WithLabelValues(op).Inc()
		return
	}
	m.rows.WithLabelValues(op).Observe(float64(rows))
}

// Middleware records request count and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// PoolSource reports connection pool usage.
type PoolSource interface {
	Stats() postgres.PoolStats
}

// WatchPool exports pool usage gauges read at scrape time.
func (m *Metrics) WatchPool(p PoolSource) {
	m.registry.MustRegister(newPoolCollector(p))
}

type poolCollector struct {
	src      PoolSource
	conns    *prometheus.Desc
	maxConns *prometheus.Desc
	acquires *prometheus.Desc
}

func newPoolCollector(src PoolSource) *poolCollector {
	return &poolCollector{
		src: src,
		conns: prometheus.NewDesc(prometheus.BuildFQName(namespace, "db_pool", "conns"),
			"Pool connections by state.", []string{"state"}, nil),
		maxConns: prometheus.NewDesc(prometheus.BuildFQName(namespace, "db_pool", "max_conns"),
			"Configured pool size.", nil, nil),
		acquires: prometheus.NewDesc(prometheus.BuildFQName(namespace, "db_pool", "acquires_total"),
			"Connections acquired from the pool.", nil, nil),
	}
}

func (c *poolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.conns
	ch <- c.maxConns
	ch <- c.acquires
}

func (c *poolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.conns, prometheus.GaugeValue, float64(s.AcquiredConns), "acquired")
	ch <- prometheus.MustNewConstMetric(c.conns, prometheus.GaugeValue, float64(s.IdleConns), "idle")
	ch <- prometheus.MustNewConstMetric(c.maxConns, prometheus.GaugeValue, float64(s.MaxConns))
	ch <- prometheus.MustNewConstMetric(c.acquires, prometheus.CounterValue, float64(s.AcquireCount))
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
