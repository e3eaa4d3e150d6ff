// Package observability provides the Prometheus metrics collector for the
// pipeline parser service.
package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Global collector instance for singleton pattern
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	PipelinesParsed  prometheus.Counter
	PipelinesAcyclic prometheus.Counter
	PipelinesCyclic  prometheus.Counter
	GraphSize        prometheus.Histogram
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	// Use singleton pattern to avoid duplicate registration in tests
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	if globalCollector != nil {
		return globalCollector
	}

	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	pipelinesParsed := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipelines_parsed_total",
			Help:      "Total number of pipelines analyzed",
		},
	)

	pipelinesAcyclic := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipelines_acyclic_total",
			Help:      "Total number of analyzed pipelines that were a DAG",
		},
	)

	pipelinesCyclic := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipelines_cyclic_total",
			Help:      "Total number of analyzed pipelines that contained a cycle",
		},
	)

	graphSize := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_graph_vertices",
			Help:      "Number of vertices per analyzed pipeline graph",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		pipelinesParsed,
		pipelinesAcyclic,
		pipelinesCyclic,
		graphSize,
	)

	globalCollector = &Collector{
		registry:         registry,
		HTTPRequests:     httpRequests,
		HTTPDuration:     httpDuration,
		PipelinesParsed:  pipelinesParsed,
		PipelinesAcyclic: pipelinesAcyclic,
		PipelinesCyclic:  pipelinesCyclic,
		GraphSize:        graphSize,
	}

	return globalCollector
}

// Registry returns the Prometheus registry backing this collector
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordAnalysis records the outcome of a single pipeline analysis
func (c *Collector) RecordAnalysis(vertices int, isDAG bool) {
	c.PipelinesParsed.Inc()
	c.GraphSize.Observe(float64(vertices))
	if isDAG {
		c.PipelinesAcyclic.Inc()
	} else {
		c.PipelinesCyclic.Inc()
	}
}
