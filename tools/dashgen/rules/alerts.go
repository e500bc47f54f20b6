package rules

// AlertRules returns the operational alerts for the dealer catalog.
func AlertRules() PrometheusRule {
	return newPrometheusRule("dealer-alerts", "dealer-alerts", []Rule{
		alert("DealerCatalogDown",
			`absent(up{job="dealer-catalog"})`, "2m", SeverityCritical,
			"Dealer catalog is down",
			"The dealer-catalog job has been absent for more than 2 minutes."),
		alert("DealerReadinessDown",
			`dealer_readyz_up == 0`, "5m", SeverityCritical,
			"Dealer catalog has no catalog loaded",
			"The readiness probe has reported no loaded catalog for more than 5 minutes."),
		alert("DealerHighErrorRate",
			`dealer:http_errors:rate5m / dealer:http_requests:rate5m > 0.05`, "5m", SeverityWarning,
			"High HTTP error rate on the dealer catalog",
			"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
		alert("DealerCatalogStale",
			`time() - dealer_catalog_last_refresh_timestamp_seconds > 3600`, "10m", SeverityWarning,
			"Served catalog has not been refreshed for an hour",
			"No catalog load has been applied in the last hour. Check the scheduler and upstream sources."),
		alert("DealerSourceErrors",
			`dealer:catalog_load_errors:rate5m > 0`, "15m", SeverityWarning,
			"A catalog source keeps failing",
			"Catalog loads from {{ $labels.source }} have been failing for 15 minutes."),
		alert("DealerServingFallback",
			`increase(dealer_catalog_loads_total{source="fallback",outcome="success"}[15m]) > 0`, "0m", SeverityCritical,
			"Dealer catalog is serving the bundled fallback inventory",
			"Every configured source failed or returned nothing; visitors see the built-in demo vehicles."),
		alert("DealerNotificationFailures",
			`increase(dealer_notification_failures_total[15m]) > 0`, "1m", SeverityWarning,
			"Dealer notification delivery failures detected",
			"One or more Discord webhook notifications ({{ $labels.kind }}) have failed to send."),
		alert("DealerRateLimiting",
			`sum(rate(dealer_http_rate_limited_total[5m])) > 1`, "10m", SeverityInfo,
			"Clients are being rate limited",
			"More than one request per second has been rejected with 429 for 10 minutes."),
	})
}
