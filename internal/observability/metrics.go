// Package observability holds the Prometheus collectors and the OpenTelemetry tracer setup.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aura_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aura_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	catalogQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aura_catalog_query_duration_seconds",
		Help:    "Product aggregation latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"result"})

	catalogQueryResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "aura_catalog_query_results",
		Help:    "Product views returned per aggregation",
		Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
	})

	virtualVariants = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aura_catalog_virtual_variants_total",
		Help: "Variants synthesized from legacy product fields",
	})

	unavailableCartLines = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aura_cart_unavailable_lines_total",
		Help: "Cart lines whose variant and product could not be resolved",
	})

	cartProductFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aura_cart_product_fallback_total",
		Help: "Cart lines resolved by reading variantId as a product id",
	})
)

// ObserveHTTP records one served request
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveCatalogQuery records one aggregation run
func ObserveCatalogQuery(elapsed time.Duration, results int, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	catalogQueryDuration.WithLabelValues(result).Observe(elapsed.Seconds())
	if err == nil {
		catalogQueryResults.Observe(float64(results))
	}
}

func VirtualVariantSynthesized() { virtualVariants.Inc() }

func CartLineUnavailable() { unavailableCartLines.Inc() }

func CartProductFallback() { cartProductFallbacks.Inc() }

// MetricsHandler exposes the default registry
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
