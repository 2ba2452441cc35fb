package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ProviderRequests counts upstream provider calls by provider name and
// outcome ("success", "empty", "error").
var ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tripcraft",
	Name:      "provider_requests_total",
	Help:      "Upstream provider requests by provider and outcome.",
}, []string{"provider", "outcome"})

// LLMRequestDuration observes completion latency per operation
// ("extract", "generate").
var LLMRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "tripcraft",
	Name:      "llm_request_duration_seconds",
	Help:      "LLM completion latency by operation.",
	Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
}, []string{"operation"})

// CacheLookups counts cache hits and misses per cache name.
var CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tripcraft",
	Name:      "cache_lookups_total",
	Help:      "Cache lookups by cache and result.",
}, []string{"cache", "result"})

// ItinerariesGenerated counts completed itinerary generations by outcome.
var ItinerariesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tripcraft",
	Name:      "itineraries_generated_total",
	Help:      "Itinerary generation attempts by outcome.",
}, []string{"outcome"})
