package metrics

import "github.com/prometheus/client_golang/prometheus"

// Aggregation and protection metrics.
var (
	CampaignQueryFallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "redrelief",
			Name:      "campaign_query_fallback_total",
			Help:      "Campaign listings served by a full scan instead of the compound query",
		},
		[]string{"variant"}, // "list" / "blood_bank" / "city"
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "redrelief",
			Name:      "search_results",
			Help:      "Number of banks returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
		[]string{"kind"},
	)

	RateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "redrelief",
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the per-client rate limit",
		},
	)

	RateLimitErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "redrelief",
			Name:      "rate_limit_store_errors_total",
			Help:      "Rate limit checks that failed open because the counter store errored",
		},
	)
)

func init() {
	prometheus.MustRegister(CampaignQueryFallbackTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(RateLimitedTotal)
	prometheus.MustRegister(RateLimitErrorsTotal)
}

// Recorder adapts the package metrics to the usecase observer interfaces.
type Recorder struct{}

// IncFallback counts a campaign listing served by the scan path.
func (Recorder) IncFallback(variant string) {
	CampaignQueryFallbackTotal.WithLabelValues(variant).Inc()
}

// ObserveResults records the size of a search result.
func (Recorder) ObserveResults(kind string, n int) {
	SearchResults.WithLabelValues(kind).Observe(float64(n))
}
