// Package monitoring provides Prometheus metrics for the engine-core API.
//
// Usage:
//
//  1. Wire the metrics endpoint and HTTP middleware once at startup:
//     router := gin.New()
//     monitoring.SetupPrometheusMetrics(router)
//     router.Use(monitoring.HTTPMetricsMiddleware())
//
//  2. Record engine, cache, and persistence operations from the
//     orchestrator and storage packages:
//     monitoring.RecordEngineRun("numerology", duration, true)
//     monitoring.RecordCacheOperation("get", "hit")
//     monitoring.RecordPersistenceOperation("insert", "numerology", true)
package monitoring

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const httpClientErrorThreshold = 400

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "witnessos_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "witnessos_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	engineRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "witnessos_engine_runs_total",
			Help: "Total number of engine Run invocations",
		},
		[]string{"engine", "status"},
	)

	engineRunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "witnessos_engine_run_duration_seconds",
			Help:    "Engine calculation_time_seconds distribution",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"engine"},
	)

	orchestratorBatchSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "witnessos_orchestrator_batch_size",
			Help:    "Number of engines submitted to RunMany",
			Buckets: []float64{1, 2, 3, 5, 8, 13},
		},
		[]string{"mode"},
	)

	cacheOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "witnessos_cache_operations_total",
			Help: "Total number of result-cache operations",
		},
		[]string{"operation", "result"},
	)

	persistenceOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "witnessos_persistence_operations_total",
			Help: "Total number of reading-persistence operations",
		},
		[]string{"operation", "engine", "status"},
	)

	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "witnessos_errors_total",
			Help: "Total number of errors by component and kind",
		},
		[]string{"component", "kind"},
	)
)

// SetupPrometheusMetrics registers all metrics on the default registry and
// exposes the scrape endpoint.
func SetupPrometheusMetrics(router gin.IRoutes) {
	_ = prometheus.Register(httpRequestsTotal)         //nolint:errcheck
	_ = prometheus.Register(httpRequestDuration)       //nolint:errcheck
	_ = prometheus.Register(engineRunsTotal)           //nolint:errcheck
	_ = prometheus.Register(engineRunDuration)         //nolint:errcheck
	_ = prometheus.Register(orchestratorBatchSize)     //nolint:errcheck
	_ = prometheus.Register(cacheOperationsTotal)      //nolint:errcheck
	_ = prometheus.Register(persistenceOperationsTotal) //nolint:errcheck
	_ = prometheus.Register(errorsTotal)                //nolint:errcheck

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// HTTPMetricsMiddleware records request counts and latency per route.
func HTTPMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		endpoint := normalizeEndpoint(c.Request.URL.Path)

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		httpRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
		httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration)

		if c.Writer.Status() >= httpClientErrorThreshold {
			errorsTotal.WithLabelValues("http", endpoint).Inc()
		}
	}
}

// RecordEngineRun records one Engine.Run invocation.
func RecordEngineRun(engine string, duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	engineRunsTotal.WithLabelValues(engine, status).Inc()
	engineRunDuration.WithLabelValues(engine).Observe(duration.Seconds())
}

// RecordOrchestratorBatch records the fan-out width of one RunMany call.
func RecordOrchestratorBatch(mode string, size int) {
	orchestratorBatchSize.WithLabelValues(mode).Observe(float64(size))
}

// RecordCacheOperation records one cache Get/Set/Delete outcome.
func RecordCacheOperation(operation, result string) {
	cacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordPersistenceOperation records one reading-store outcome.
func RecordPersistenceOperation(operation, engine string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	persistenceOperationsTotal.WithLabelValues(operation, engine, status).Inc()
}

// RecordError increments the error counter for a component/kind pair.
func RecordError(component, kind string) {
	errorsTotal.WithLabelValues(component, kind).Inc()
}

func normalizeEndpoint(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if isNumeric(p) {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
