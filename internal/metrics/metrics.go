// Package metrics defines Prometheus metrics for dealer-catalog.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dealer"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the last liveness probe succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the last readiness probe succeeded.",
	})

	RateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Requests rejected by the per-client rate limiter.",
	}, []string{"path"})
)

// Catalog metrics.
var (
	// CatalogLoadsTotal counts loader tier attempts by source and outcome
	// (success, error, empty, skipped).
	CatalogLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_loads_total",
		Help:      "Catalog source attempts by source and outcome.",
	}, []string{"source", "outcome"})

	CatalogLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_load_duration_seconds",
		Help:      "Duration of full catalog loads in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	CatalogVehicles = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_vehicles",
		Help:      "Vehicles in the applied catalog by category.",
	}, []string{"category"})

	CatalogRentals = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_rentals",
		Help:      "Rental cars in the applied catalog.",
	})

	CatalogGeneration = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_generation",
		Help:      "Generation of the applied catalog snapshot.",
	})

	CatalogStaleDiscardsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_stale_discards_total",
		Help:      "Completed loads discarded because a newer load was already applied.",
	})

	CatalogRecordsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_records_skipped_total",
		Help:      "Snapshot array elements skipped because they were not objects.",
	})

	CatalogLastRefreshTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_last_refresh_timestamp_seconds",
		Help:      "Unix timestamp of the last applied catalog refresh.",
	})
)

// Settings metrics.
var (
	SettingsCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settings_cache_hits_total",
		Help:      "Settings reads served from the cache.",
	})

	SettingsCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settings_cache_misses_total",
		Help:      "Settings reads that went to the store.",
	})
)

// Customer interaction metrics.
var (
	ContactLinksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_links_total",
		Help:      "Contact link sets built, by kind (vehicle, rental) and locale.",
	}, []string{"kind", "locale"})

	FinanceCalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "finance_calculations_total",
		Help:      "Financing calculations by outcome (ok, invalid).",
	}, []string{"outcome"})
)

// Notification metrics.
var (
	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of webhook notification deliveries in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	NotificationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Failed webhook notification deliveries by kind.",
	}, []string{"kind"})
)
