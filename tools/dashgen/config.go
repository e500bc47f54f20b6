package main

import "errors"

// KnownMetrics is the set of metric names exported by dealer-catalog
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"dealer_http_request_duration_seconds":        true,
	"dealer_http_request_duration_seconds_bucket": true,
	"dealer_http_requests_total":                  true,
	"dealer_http_rate_limited_total":              true,

	// Health metrics.
	"dealer_healthz_up": true,
	"dealer_readyz_up":  true,

	// Catalog metrics.
	"dealer_catalog_loads_total":                    true,
	"dealer_catalog_load_duration_seconds_bucket":   true,
	"dealer_catalog_vehicles":                       true,
	"dealer_catalog_rentals":                        true,
	"dealer_catalog_generation":                     true,
	"dealer_catalog_stale_discards_total":           true,
	"dealer_catalog_records_skipped_total":          true,
	"dealer_catalog_last_refresh_timestamp_seconds": true,

	// Settings and customer metrics.
	"dealer_settings_cache_hits_total":   true,
	"dealer_settings_cache_misses_total": true,
	"dealer_contact_links_total":         true,
	"dealer_finance_calculations_total":  true,

	// Notification metrics.
	"dealer_notification_duration_seconds_bucket": true,
	"dealer_notification_failures_total":          true,

	// Recording rules.
	"dealer:http_requests:rate5m":            true,
	"dealer:http_errors:rate5m":              true,
	"dealer:catalog_load_errors:rate5m":      true,
	"dealer:contact_links:rate5m":            true,
	"dealer:settings_cache_hit_ratio:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
