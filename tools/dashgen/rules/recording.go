package rules

// RecordingRules returns the pre-computed rates used by the dashboard and
// the alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("dealer-recording-rules", "dealer-recording", []Rule{
		record("dealer:http_requests:rate5m",
			`sum(rate(dealer_http_requests_total[5m]))`),
		record("dealer:http_errors:rate5m",
			`sum(rate(dealer_http_requests_total{status=~"5.."}[5m]))`),
		record("dealer:catalog_load_errors:rate5m",
			`sum(rate(dealer_catalog_loads_total{outcome="error"}[5m])) by (source)`),
		record("dealer:contact_links:rate5m",
			`sum(rate(dealer_contact_links_total[5m])) by (kind, locale)`),
		record("dealer:settings_cache_hit_ratio:rate5m",
			`sum(rate(dealer_settings_cache_hits_total[5m])) / `+
				`(sum(rate(dealer_settings_cache_hits_total[5m])) + sum(rate(dealer_settings_cache_misses_total[5m])))`),
	})
}
