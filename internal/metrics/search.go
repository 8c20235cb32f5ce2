package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search-domain metrics. Registered explicitly from the composition root
// (no init()) so embedding this package in tools that never serve search
// does not pollute their registries.
var (
	// SearchRequestsTotal counts aggregations by consumer ("search" or
	// "chatbot") and outcome ("ok", "empty", "error").
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geoportal",
			Name:      "search_requests_total",
			Help:      "Total number of global search aggregations",
		},
		[]string{"consumer", "outcome"},
	)

	// SearchResultCards observes how many cards one aggregation produced.
	SearchResultCards = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "geoportal",
			Name:      "search_result_cards",
			Help:      "Result cards returned per aggregation",
			Buckets:   []float64{0, 1, 3, 5, 10, 20, 40, 80},
		},
	)

	// ChatbotFallbackTotal counts chatbot answers that fell back to the
	// localized contact message, by language.
	ChatbotFallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geoportal",
			Name:      "chatbot_fallback_total",
			Help:      "Chatbot responses with no matching content",
		},
		[]string{"lang"},
	)
)

// RegisterSearchMetrics registers the search-domain collectors.
func RegisterSearchMetrics() {
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchResultCards)
	prometheus.MustRegister(ChatbotFallbackTotal)
}
