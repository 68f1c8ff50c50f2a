package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for searches and worker messages.
const (
	OutcomeOK      = "ok"
	OutcomeCached  = "cached"
	OutcomeError   = "error"
	OutcomeInvalid = "invalid"
)

// Collector bundles the service's Prometheus metrics. A nil *Collector is
// valid and records nothing, so components can take it as optional.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	Searches      *prometheus.CounterVec
	SearchResults *prometheus.HistogramVec

	WorkerMessages *prometheus.CounterVec
}

// NewCollector registers metrics against reg, defaulting to the global
// registry when nil. Registering twice against the same registry reuses the
// existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	httpRequests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"}))
	if err != nil {
		return nil, err
	}

	httpDurations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route"}))
	if err != nil {
		return nil, err
	}

	searches, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "match_searches_total",
		Help: "Proximity searches by category and outcome.",
	}, []string{"category", "outcome"}))
	if err != nil {
		return nil, err
	}

	results, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "match_search_results",
		Help:    "Number of ranked candidates returned per search.",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	}, []string{"category"}))
	if err != nil {
		return nil, err
	}

	workerMessages, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "worker_messages_total",
		Help: "Stream messages handled by workers, by worker and outcome.",
	}, []string{"worker", "outcome"}))
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:       gatherer,
		HTTPRequests:   httpRequests,
		HTTPDurations:  httpDurations,
		Searches:       searches,
		SearchResults:  results,
		WorkerMessages: workerMessages,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveHTTP records one handled request.
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDurations.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveSearch records a search outcome; results are only observed for successful searches.
func (c *Collector) ObserveSearch(category, outcome string, results int) {
	if c == nil {
		return
	}
	c.Searches.WithLabelValues(category, outcome).Inc()
	if outcome != OutcomeError {
		c.SearchResults.WithLabelValues(category).Observe(float64(results))
	}
}

// ObserveWorkerMessage records one processed stream message.
func (c *Collector) ObserveWorkerMessage(worker, outcome string) {
	if c == nil {
		return
	}
	c.WorkerMessages.WithLabelValues(worker, outcome).Inc()
}

func register[T prometheus.Collector](reg prometheus.Registerer, collector T) (T, error) {
	if err := reg.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector already registered with incompatible type: %w", err)
		}
		var zero T
		return zero, err
	}
	return collector, nil
}
