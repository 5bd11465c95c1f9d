package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opensea_upstream_requests_total",
		Help: "Requests sent to the marketplace API, by outcome",
	}, []string{"method", "status"})

	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "opensea_upstream_latency_seconds",
		Help:    "Marketplace API round trip latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opensea_order_lookups_total",
		Help: "Order lookups served, by operation and result",
	}, []string{"operation", "result"})

	CacheEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opensea_order_cache_events_total",
		Help: "Order cache hits, misses and errors",
	}, []string{"event"})
)
